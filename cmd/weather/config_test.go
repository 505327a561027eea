package main

import (
	"strings"
	"testing"

	// Packages
	kong "github.com/alecthomas/kong"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_config_001(t *testing.T) {
	assert := assert.New(t)

	// Nested mappings resolve dotted flag names, scalars resolve plain ones
	resolver, err := yamlResolver(strings.NewReader("debug: true\nhttp:\n  addr: \":9000\"\n"))
	assert.NoError(err)
	assert.NotNil(resolver)

	var flags struct {
		Debug bool `name:"debug"`
		HTTP  struct {
			Addr    string `name:"addr" default:":8000"`
			Timeout string `name:"timeout" default:"10s"`
		} `embed:"" prefix:"http."`
	}
	parser, err := kong.New(&flags, kong.Resolvers(resolver))
	assert.NoError(err)

	_, err = parser.Parse(nil)
	assert.NoError(err)
	assert.True(flags.Debug)
	assert.Equal(":9000", flags.HTTP.Addr)

	// A flag absent from the file keeps its default
	assert.Equal("10s", flags.HTTP.Timeout)
}

func Test_config_002(t *testing.T) {
	assert := assert.New(t)

	// Command line arguments win over the file
	resolver, err := yamlResolver(strings.NewReader("http:\n  addr: \":9000\"\n"))
	assert.NoError(err)

	var flags struct {
		HTTP struct {
			Addr string `name:"addr" default:":8000"`
		} `embed:"" prefix:"http."`
	}
	parser, err := kong.New(&flags, kong.Resolvers(resolver))
	assert.NoError(err)

	_, err = parser.Parse([]string{"--http.addr", ":7000"})
	assert.NoError(err)
	assert.Equal(":7000", flags.HTTP.Addr)
}

func Test_config_003(t *testing.T) {
	assert := assert.New(t)

	// An empty document resolves nothing
	resolver, err := yamlResolver(strings.NewReader(""))
	assert.NoError(err)
	assert.NotNil(resolver)

	var flags struct {
		Debug bool `name:"debug"`
	}
	parser, err := kong.New(&flags, kong.Resolvers(resolver))
	assert.NoError(err)

	_, err = parser.Parse(nil)
	assert.NoError(err)
	assert.False(flags.Debug)
}

func Test_config_004(t *testing.T) {
	assert := assert.New(t)

	// Malformed YAML is an error
	_, err := yamlResolver(strings.NewReader("debug: [unclosed"))
	assert.Error(err)
}
