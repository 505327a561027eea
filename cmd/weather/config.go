package main

import (
	"errors"
	"io"

	// Packages
	kong "github.com/alecthomas/kong"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// yamlResolver loads flag values from a YAML document. Nested mappings are
// flattened with dot notation, so "http: {addr: ...}" resolves --http.addr.
func yamlResolver(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	flattened := map[string]any{}
	flatten("", values, flattened)

	var resolver kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if value, exists := flattened[flag.Name]; exists {
			return value, nil
		}
		return nil, nil
	}
	return resolver, nil
}

func flatten(prefix string, values, into map[string]any) {
	for key, value := range values {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flatten(key, nested, into)
		} else {
			into[key] = value
		}
	}
}
