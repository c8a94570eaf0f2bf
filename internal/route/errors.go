package route

import "errors"

var (
	ErrRouteCollision = errors.New("route already registered")
	ErrInvalidPrefix  = errors.New("invalid mount prefix")
	ErrInvalidPath    = errors.New("invalid route path")
	ErrInvalidMethod  = errors.New("invalid route method")
	ErrNilHandler     = errors.New("route handler is nil")
	ErrTableSealed    = errors.New("route table is sealed")
)
