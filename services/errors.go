package services

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMemberNotFound     = errors.New("member not found")
	ErrAdminExists        = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
