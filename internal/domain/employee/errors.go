package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("Employee record not found")
	ErrEmailExists      = errors.New("Email already exists")
)
