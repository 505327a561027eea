/*
httphandler exposes the toolkit over a REST API, with endpoints for
listing tools, fetching tool metadata and running a tool.
*/
package httphandler

import (
	"errors"
	"net/http"

	// Packages
	server "github.com/mutablelogic/go-server"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	weather "github.com/mutablelogic/go-weather"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Router interface {
	RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) error
}

func RegisterHandlers(toolkit *tool.Toolkit, router server.HTTPRouter, middleware bool) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, router.(Router).RegisterFunc(path, handler, middleware, spec))
	}

	// Register handlers
	register(ToolListHandler(toolkit))
	register(ToolGetHandler(toolkit))
	register(HealthHandler())

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts a weather.Err to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var werr weather.Err
	if !errors.As(err, &werr) {
		return err
	}
	switch werr {
	case weather.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case weather.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case weather.ErrConflict:
		return httpresponse.ErrConflict.With(err)
	case weather.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case weather.ErrInternalServerError:
		return httpresponse.ErrInternalError.With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
