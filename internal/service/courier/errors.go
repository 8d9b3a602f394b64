package courier

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidLocation  = errors.New("invalid location")

	ErrCourierNotFound = errors.New("courier not found")
)
