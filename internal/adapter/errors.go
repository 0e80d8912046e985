package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrTransport means the request never produced an HTTP response.
	ErrTransport = errors.New("transport failure")
	// ErrEmptyResponse means a 2xx response carried no body.
	ErrEmptyResponse = errors.New("empty response body")
	// ErrMalformedResponse means a 2xx body could not be decoded.
	ErrMalformedResponse = errors.New("malformed response body")
)
