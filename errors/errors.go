package errors

import "fmt"

var (
	ErrInvalidUsername   = fmt.Errorf("invalid username")
	ErrNotRegistered     = fmt.Errorf("connection is not registered")
	ErrUnknownConnection = fmt.Errorf("unknown connection")
	ErrStorageTimeout    = fmt.Errorf("storage call timed out")
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrOnlyCensoredFiles = fmt.Errorf("censored directory contains directories")
	ErrEmptyWords        = fmt.Errorf("no words have been found")
)
