package service

import "errors"

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrNotFound           = errors.New("not found")           // 404
	ErrConflict           = errors.New("conflict")            // 409
	ErrInsufficientStock  = errors.New("insufficient stock")  // 400
	ErrInvalidTransition  = errors.New("invalid transition")  // 400
)
