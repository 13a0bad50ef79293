package employee

import "errors"

var (
	ErrNotFound      = errors.New("employee not found")
	ErrNameRequired  = errors.New("employee name is required")
	ErrDuplicateName = errors.New("employee with this name already exists")
)
