package openapi

// Document represents a minimal OpenAPI document.
type Document struct {
	OpenAPI    string
	Info       Info
	Paths      map[string]map[string]Operation
	Components Components
	Extensions map[string]any
}

// Info captures OpenAPI metadata.
type Info struct {
	Title   string
	Version string
}

// Components aggregates schema components.
type Components struct {
	Schemas map[string]any
}

// Operation describes one method on a path.
type Operation struct {
	Summary     string
	OperationID string
	Parameters  []Parameter
	RequestRef  string
	Responses   map[string]Response
}

type Parameter struct {
	Name     string
	In       string
	Required bool
	Schema   map[string]any
}

// Response points at a component schema; an empty Ref means no body.
type Response struct {
	Description string
	Ref         string
	Array       bool
}

// NewDocument constructs a minimal OpenAPI document.
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:   title,
			Version: version,
		},
		Paths:      map[string]map[string]Operation{},
		Components: Components{Schemas: map[string]any{}},
		Extensions: map[string]any{},
	}
}

// AddSchema registers a component schema.
func (d *Document) AddSchema(name string, schema map[string]any) {
	if d == nil || name == "" || schema == nil {
		return
	}
	if d.Components.Schemas == nil {
		d.Components.Schemas = map[string]any{}
	}
	d.Components.Schemas[name] = schema
}

// AddOperation registers op under path and a lower-case method.
func (d *Document) AddOperation(path, method string, op Operation) {
	if d == nil || path == "" || method == "" {
		return
	}
	if d.Paths == nil {
		d.Paths = map[string]map[string]Operation{}
	}
	if d.Paths[path] == nil {
		d.Paths[path] = map[string]Operation{}
	}
	d.Paths[path][method] = op
}

// SetExtension sets a vendor extension on the document.
func (d *Document) SetExtension(key string, value any) {
	if d == nil || key == "" {
		return
	}
	if d.Extensions == nil {
		d.Extensions = map[string]any{}
	}
	d.Extensions[key] = value
}

// AsMap returns the document in its JSON shape.
func (d *Document) AsMap() map[string]any {
	if d == nil {
		return nil
	}
	paths := make(map[string]any, len(d.Paths))
	for path, methods := range d.Paths {
		entry := make(map[string]any, len(methods))
		for method, op := range methods {
			entry[method] = op.asMap()
		}
		paths[path] = entry
	}
	out := map[string]any{
		"openapi": d.OpenAPI,
		"info": map[string]any{
			"title":   d.Info.Title,
			"version": d.Info.Version,
		},
		"paths": paths,
	}
	if len(d.Components.Schemas) > 0 {
		out["components"] = map[string]any{
			"schemas": d.Components.Schemas,
		}
	}
	for key, value := range d.Extensions {
		out[key] = value
	}
	return out
}

func (op Operation) asMap() map[string]any {
	out := map[string]any{}
	if op.Summary != "" {
		out["summary"] = op.Summary
	}
	if op.OperationID != "" {
		out["operationId"] = op.OperationID
	}
	if len(op.Parameters) > 0 {
		params := make([]any, 0, len(op.Parameters))
		for _, p := range op.Parameters {
			params = append(params, map[string]any{
				"name":     p.Name,
				"in":       p.In,
				"required": p.Required,
				"schema":   p.Schema,
			})
		}
		out["parameters"] = params
	}
	if op.RequestRef != "" {
		out["requestBody"] = map[string]any{
			"required": true,
			"content":  jsonContent(ref(op.RequestRef)),
		}
	}
	responses := map[string]any{}
	for status, resp := range op.Responses {
		entry := map[string]any{"description": resp.Description}
		if resp.Ref != "" {
			schema := ref(resp.Ref)
			if resp.Array {
				schema = map[string]any{"type": "array", "items": schema}
			}
			entry["content"] = jsonContent(schema)
		}
		responses[status] = entry
	}
	out["responses"] = responses
	return out
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}

func jsonContent(schema map[string]any) map[string]any {
	return map[string]any{"application/json": map[string]any{"schema": schema}}
}
