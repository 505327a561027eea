package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	// Packages
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	httphandler "github.com/mutablelogic/go-weather/pkg/httphandler"
	mcp "github.com/mutablelogic/go-weather/pkg/mcp"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	version "github.com/mutablelogic/go-weather/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	// Commands
	RunServer RunServer `cmd:"" name:"run" help:"Run the weather server." group:"SERVER"`
}

type RunServer struct {
	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunServer) Run(ctx *Globals) error {
	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}
	return cmd.Serve(ctx, toolkit, version.Version())
}

// Serve creates the httpserver instance, logs the startup banner, and
// blocks until context cancellation (e.g. SIGINT).
func (cmd *RunServer) Serve(ctx *Globals, toolkit *tool.Toolkit, versionTag string) error {
	// Create middleware
	middleware := []httprouter.HTTPMiddlewareFunc{
		ctx.logger.WrapFunc,
	}

	// Create the TLS config if TLS options are provided
	var tlsConfig *tls.Config
	if cmd.TLS.CertFile != "" || cmd.TLS.KeyFile != "" {
		var pemData [][]byte
		if cmd.TLS.CertFile != "" {
			certData, err := os.ReadFile(cmd.TLS.CertFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS certificate: %w", err)
			}
			pemData = append(pemData, certData)
		}
		if cmd.TLS.KeyFile != "" {
			keyData, err := os.ReadFile(cmd.TLS.KeyFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS key: %w", err)
			}
			pemData = append(pemData, keyData)
		}
		var err error
		tlsConfig, err = httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	// Create the MCP server, which shares the toolkit with the REST API
	mcpserver, err := mcp.New(ctx.execName, versionTag,
		mcp.WithToolkit(toolkit),
		mcp.WithLogger(ctx.logger.Printf),
	)
	if err != nil {
		return err
	}

	// Create the HTTP router
	router, err := httprouter.NewRouter(ctx.ctx, ctx.HTTP.Prefix, ctx.HTTP.Origin, "Weather Server", versionTag, middleware...)
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(toolkit, router, true); err != nil {
		return err
	}

	// Serve MCP on /mcp and the REST API on the prefix
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpserver.Handler())
	mux.Handle("/", router)

	// Create the server
	httpserver, err := httpserver.New(ctx.HTTP.Addr, mux, tlsConfig)
	if err != nil {
		return err
	}

	// Run the server
	ctx.logger.Printf(ctx.ctx, "%s@%s started on %s", ctx.execName, versionTag, ctx.HTTP.Addr)
	if err := httpserver.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.logger.Printf(ctx.ctx, "%s@%s stopped", ctx.execName, versionTag)
	return nil
}
