package handler

import "errors"

var errNoServicesAreCreated = errors.New("no services are created")
