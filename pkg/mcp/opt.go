package mcp

import (
	// Packages
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Server) error

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (server *Server) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(server); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithToolkit sets the toolkit served by the server
func WithToolkit(v *tool.Toolkit) Opt {
	return func(server *Server) error {
		server.toolkit = v
		return nil
	}
}

// WithLogger sets an advisory logging callback for tool calls
func WithLogger(v LogFn) Opt {
	return func(server *Server) error {
		server.log = v
		return nil
	}
}
