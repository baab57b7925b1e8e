package app

import "context"

type App interface {
	Run(ctx context.Context)
	StopApp(ctx context.Context) error
}
