package openapi

import (
	"strings"

	"github.com/goliatone/go-showcase/internal/domain"
)

var (
	uuidSchema   = map[string]any{"type": "string", "format": "uuid"}
	stringSchema = map[string]any{"type": "string"}
)

// AdminDocument describes the slide administration API mounted at basePath.
func AdminDocument(basePath string) *Document {
	base := "/" + strings.Trim(strings.TrimSpace(basePath), "/")
	if base == "/" {
		base = ""
	}
	doc := NewDocument("Showcase hero admin API", "1.0.0")
	addAdminSchemas(doc)

	idParam := Parameter{Name: "id", In: "path", Required: true, Schema: uuidSchema}
	kindParam := Parameter{Name: "kind", In: "path", Required: true, Schema: map[string]any{
		"type": "string",
		"enum": []string{"import", "contracting"},
	}}
	activeParam := Parameter{Name: "active", In: "query", Schema: map[string]any{"type": "boolean"}}
	actorParam := Parameter{Name: "actor_id", In: "query", Schema: uuidSchema}

	sections := base + "/hero-sections"
	doc.AddOperation(sections, "get", Operation{
		Summary: "List hero sections", OperationID: "listHeroSections",
		Responses: map[string]Response{"200": {Description: "sections", Ref: "HeroSection", Array: true}},
	})
	doc.AddOperation(sections, "post", Operation{
		Summary: "Create a hero section", OperationID: "createHeroSection", RequestRef: "SectionInput",
		Responses: map[string]Response{
			"201": {Description: "created", Ref: "HeroSection"},
			"409": {Description: "code taken", Ref: "Error"},
			"422": {Description: "invalid input", Ref: "Error"},
		},
	})
	doc.AddOperation(sections+"/{id}", "get", Operation{
		Summary: "Get a hero section", OperationID: "getHeroSection", Parameters: []Parameter{idParam},
		Responses: map[string]Response{
			"200": {Description: "section", Ref: "HeroSection"},
			"404": {Description: "missing", Ref: "Error"},
		},
	})
	doc.AddOperation(sections+"/{id}/slides", "get", Operation{
		Summary: "List the slides of a section", OperationID: "listSectionSlides", Parameters: []Parameter{idParam, activeParam},
		Responses: map[string]Response{"200": {Description: "slides in display order", Ref: "Slide", Array: true}},
	})
	doc.AddOperation(sections+"/{id}/slides/order", "put", Operation{
		Summary: "Reorder the slides of a section", OperationID: "reorderSectionSlides", Parameters: []Parameter{idParam}, RequestRef: "Reorder",
		Responses: map[string]Response{
			"200": {Description: "reordered slides", Ref: "Slide", Array: true},
			"422": {Description: "ids do not match the region", Ref: "Error"},
		},
	})

	services := base + "/services/{kind}/{id}/slides"
	doc.AddOperation(services, "get", Operation{
		Summary: "List the slides of a service", OperationID: "listServiceSlides", Parameters: []Parameter{kindParam, idParam, activeParam},
		Responses: map[string]Response{"200": {Description: "slides in display order", Ref: "Slide", Array: true}},
	})
	doc.AddOperation(services+"/order", "put", Operation{
		Summary: "Reorder the slides of a service", OperationID: "reorderServiceSlides", Parameters: []Parameter{kindParam, idParam}, RequestRef: "Reorder",
		Responses: map[string]Response{
			"200": {Description: "reordered slides", Ref: "Slide", Array: true},
			"422": {Description: "ids do not match the region", Ref: "Error"},
		},
	})

	slides := base + "/slides"
	doc.AddOperation(slides, "post", Operation{
		Summary: "Create a slide", OperationID: "createSlide", RequestRef: "SlideInput",
		Responses: map[string]Response{
			"201": {Description: "created", Ref: "Slide"},
			"400": {Description: "placement or content rules broken", Ref: "Error"},
			"422": {Description: "invalid input", Ref: "Error"},
		},
	})
	doc.AddOperation(slides+"/{id}", "get", Operation{
		Summary: "Get a slide", OperationID: "getSlide", Parameters: []Parameter{idParam},
		Responses: map[string]Response{
			"200": {Description: "slide", Ref: "Slide"},
			"404": {Description: "missing", Ref: "Error"},
		},
	})
	doc.AddOperation(slides+"/{id}", "put", Operation{
		Summary: "Update a slide; omitted fields keep their value", OperationID: "updateSlide", Parameters: []Parameter{idParam}, RequestRef: "SlideInput",
		Responses: map[string]Response{
			"200": {Description: "updated", Ref: "Slide"},
			"404": {Description: "missing", Ref: "Error"},
		},
	})
	doc.AddOperation(slides+"/{id}", "delete", Operation{
		Summary: "Delete a slide", OperationID: "deleteSlide", Parameters: []Parameter{idParam, actorParam},
		Responses: map[string]Response{
			"204": {Description: "deleted"},
			"404": {Description: "missing", Ref: "Error"},
		},
	})
	return doc
}

func addAdminSchemas(doc *Document) {
	types := []string{string(domain.SlideTypeCustom)}
	for _, t := range domain.ReferenceTypes {
		types = append(types, string(t))
	}
	nullableUUID := map[string]any{"type": "string", "format": "uuid", "nullable": true}

	slideProps := map[string]any{
		"id":                            uuidSchema,
		"slide_type":                    map[string]any{"type": "string", "enum": types},
		"hero_section_id":               nullableUUID,
		"parent_import_service_id":      nullableUUID,
		"parent_contracting_service_id": nullableUUID,
		"reference_id":                  nullableUUID,
		"title":                         localizedSchema(),
		"subtitle":                      localizedSchema(),
		"background_image_id":           nullableUUID,
		"background_color":              map[string]any{"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$", "nullable": true},
		"overlay_opacity":               map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"cta_enabled":                   map[string]any{"type": "boolean"},
		"cta_text":                      localizedSchema(),
		"cta_href":                      map[string]any{"type": "string", "nullable": true},
		"is_active":                     map[string]any{"type": "boolean"},
		"sort_order":                    map[string]any{"type": "integer"},
		"actor_id":                      nullableUUID,
	}
	doc.AddSchema("SlideInput", map[string]any{
		"type":       "object",
		"required":   []string{"slide_type"},
		"properties": slideProps,
	})

	slide := make(map[string]any, len(slideProps)+2)
	for key, value := range slideProps {
		if key != "actor_id" {
			slide[key] = value
		}
	}
	slide["created_at"] = map[string]any{"type": "string", "format": "date-time"}
	slide["updated_at"] = map[string]any{"type": "string", "format": "date-time"}
	doc.AddSchema("Slide", map[string]any{"type": "object", "properties": slide})

	section := map[string]any{
		"id":   uuidSchema,
		"code": stringSchema,
		"name": stringSchema,
	}
	doc.AddSchema("SectionInput", map[string]any{
		"type":       "object",
		"required":   []string{"code", "name"},
		"properties": section,
	})
	doc.AddSchema("HeroSection", map[string]any{"type": "object", "properties": section})
	doc.AddSchema("Reorder", map[string]any{
		"type":     "object",
		"required": []string{"slide_ids"},
		"properties": map[string]any{
			"slide_ids": map[string]any{"type": "array", "items": uuidSchema},
			"actor_id":  nullableUUID,
		},
	})
	doc.AddSchema("Error", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"error":   stringSchema,
			"message": stringSchema,
			"issues":  map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
		},
	})
}

func localizedSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"en": stringSchema,
			"ar": stringSchema,
		},
	}
}
