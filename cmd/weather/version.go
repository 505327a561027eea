package main

import (
	"encoding/json"
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-weather/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommands struct {
	Version VersionCommand `cmd:"" name:"version" help:"Print version information."`
}

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(ctx *Globals) error {
	data, err := json.MarshalIndent(version.Map(ctx.execName), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
