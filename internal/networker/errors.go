package networker

import "errors"

var (
	ErrConnection = errors.New("connection failed")
	ErrStatus     = errors.New("unexpected status")
	ErrDecode     = errors.New("decoding body failed")
)
