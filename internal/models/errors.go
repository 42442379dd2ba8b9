package models

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUserNotFound    = errors.New("user not found")
	ErrMealNotFound    = errors.New("meal not found")
)
