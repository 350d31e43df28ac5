package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrAlreadyDone    = errors.New("task is already marked as done")
	ErrLoadFailed     = errors.New("load task list")
	ErrSaveFailed     = errors.New("save task list")
	ErrMalformedInput = errors.New("malformed input")
	ErrInputClosed    = errors.New("input closed")
	ErrConfigExists   = errors.New("config file already exists")
)
