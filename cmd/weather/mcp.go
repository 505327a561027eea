package main

import (
	"strings"

	// Packages
	mcp "github.com/mutablelogic/go-weather/pkg/mcp"
	version "github.com/mutablelogic/go-weather/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type MCPCommands struct {
	Server MCPServerCommand `cmd:"" name:"mcp" help:"Start an MCP server on stdio." group:"SERVER"`
}

type MCPServerCommand struct {
	// No additional options needed - uses the global API key
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *MCPServerCommand) Run(ctx *Globals) error {
	// Create toolkit with the AccuWeather tools
	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}

	// Log tools that will be exposed via MCP
	var toolNames []string
	for _, t := range toolkit.Tools() {
		toolNames = append(toolNames, t.Name())
	}
	ctx.logger.Print(ctx.ctx, "Starting MCP server with tools: ", strings.Join(toolNames, ", "))

	// Create MCP server
	server, err := mcp.New(ctx.execName, version.Version(),
		mcp.WithToolkit(toolkit),
		mcp.WithLogger(ctx.logger.Printf),
	)
	if err != nil {
		return err
	}

	// Run the server on stdio
	return server.RunStdio(ctx.ctx)
}
