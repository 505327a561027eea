/*
schema defines the request and response types for the REST API.
*/
package schema

import (
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolMeta represents a tool's metadata
type ToolMeta struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema,omitempty"`
}

// GetToolRequest represents a request to get a tool by name
type GetToolRequest struct {
	Name string `json:"name" help:"Tool name"`
}

// ListToolRequest represents a request to list tools
type ListToolRequest struct {
	Limit  *uint `json:"limit,omitempty" help:"Maximum number of tools to return"`
	Offset uint  `json:"offset,omitempty" help:"Offset for pagination"`
}

// ListToolResponse represents a response containing a list of tools
type ListToolResponse struct {
	Count  uint       `json:"count"`
	Offset uint       `json:"offset,omitzero"`
	Limit  *uint      `json:"limit,omitzero"`
	Body   []ToolMeta `json:"body,omitzero"`
}

// CallToolResponse represents the result of running a tool
type CallToolResponse struct {
	Tool   string          `json:"tool"`
	Result json.RawMessage `json:"result,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolMeta creates tool metadata from a name, description and input schema.
func NewToolMeta(name, description string, s *jsonschema.Schema) (ToolMeta, error) {
	meta := ToolMeta{Name: name, Description: description}
	if s != nil {
		data, err := json.Marshal(s)
		if err != nil {
			return meta, err
		}
		meta.Schema = data
	}
	return meta, nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ToolMeta) String() string {
	return types.Stringify(r)
}

func (r GetToolRequest) String() string {
	return types.Stringify(r)
}

func (r ListToolRequest) String() string {
	return types.Stringify(r)
}

func (r ListToolResponse) String() string {
	return types.Stringify(r)
}

func (r CallToolResponse) String() string {
	return types.Stringify(r)
}
