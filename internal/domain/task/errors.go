package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("external task not found")
	ErrTaskNotApprovable = errors.New("external task cannot be approved in its current status")
)
