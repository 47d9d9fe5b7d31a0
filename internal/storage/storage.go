package storage

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrRegistrationFailed   = errors.New("registration failed")
)
