package httphandler

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /tool
func ToolListHandler(toolkit *tool.Toolkit) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/tool", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				var req schema.ListToolRequest
				if err := httprequest.Query(r.URL.Query(), &req); err != nil {
					_ = httpresponse.Error(w, err)
					return
				}
				resp, err := listTools(toolkit, req)
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "List all tools",
			},
		})
}

// Path: /tool/{name}
func ToolGetHandler(toolkit *tool.Toolkit) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/tool/{name}", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				resp, err := getTool(toolkit, r.PathValue("name"))
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
			case http.MethodPost:
				body, err := io.ReadAll(r.Body)
				if err != nil {
					_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
					return
				}
				resp, err := callTool(r, toolkit, r.PathValue("name"), body)
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Get a tool by name",
			},
			Post: &openapi.Operation{
				Description: "Run a tool by name with JSON arguments",
			},
		})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// listTools returns paginated tool metadata, ordered by name.
func listTools(toolkit *tool.Toolkit, req schema.ListToolRequest) (*schema.ListToolResponse, error) {
	// Tools are already ordered by name
	tools := toolkit.Tools()

	// Build metadata
	all := make([]schema.ToolMeta, 0, len(tools))
	for _, t := range tools {
		meta, err := toolMeta(t)
		if err != nil {
			return nil, err
		}
		all = append(all, meta)
	}

	// Paginate
	total := uint(len(all))
	start := req.Offset
	if start > total {
		start = total
	}
	end := start + types.Value(req.Limit)
	if req.Limit == nil || end > total {
		end = total
	}

	return &schema.ListToolResponse{
		Count:  total,
		Offset: req.Offset,
		Limit:  req.Limit,
		Body:   all[start:end],
	}, nil
}

// getTool returns tool metadata by name.
func getTool(toolkit *tool.Toolkit, name string) (*schema.ToolMeta, error) {
	t := toolkit.Lookup(name)
	if t == nil {
		return nil, weather.ErrNotFound.Withf("tool %q", name)
	}
	meta, err := toolMeta(t)
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// callTool runs a tool by name with the given JSON input and wraps the result.
func callTool(r *http.Request, toolkit *tool.Toolkit, name string, input []byte) (*schema.CallToolResponse, error) {
	if len(input) == 0 {
		input = []byte(`{}`)
	}
	result, err := toolkit.Run(r.Context(), name, json.RawMessage(input))
	if err != nil {
		return nil, err
	}

	// Marshal the result to JSON
	data, err := json.Marshal(result)
	if err != nil {
		return nil, weather.ErrInternalServerError.Withf("marshalling tool result: %v", err)
	}

	return &schema.CallToolResponse{
		Tool:   name,
		Result: data,
	}, nil
}

func toolMeta(t tool.Tool) (schema.ToolMeta, error) {
	s, err := t.Schema()
	if err != nil {
		return schema.ToolMeta{}, err
	}
	return schema.NewToolMeta(t.Name(), t.Description(), s)
}
