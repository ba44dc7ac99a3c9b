package server

import "errors"

var (
	errNoHandlersAreCreated = errors.New("no handlers are created")
	errNoConfigProvided     = errors.New("no server config provided")
)
