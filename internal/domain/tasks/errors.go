package tasks

import "errors"

var (
	ErrInvalidInput      = errors.New("task requires a title and an assignee")
	ErrInvalidTransition = errors.New("task status transition not allowed")
	ErrForbidden         = errors.New("only the assignee or the creator may update a task")
	ErrNotFound          = errors.New("task not found")
)
