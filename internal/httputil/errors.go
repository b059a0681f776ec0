package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrNoSession        = errors.New("you need to be logged in for this endpoint")
	ErrNotAdmin         = errors.New("this endpoint is restricted to administrators")
)
