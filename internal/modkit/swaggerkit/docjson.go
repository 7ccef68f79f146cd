package swaggerkit

import (
	"encoding/json"
	"net/http"
)

// SpecMutator lets modules tweak the served spec before it goes out
type SpecMutator func(map[string]any)

// mutators is the in process registry for spec mutators
var mutators []SpecMutator

// Register adds a spec mutator for the served JSON
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// baseSpec is the hand maintained OpenAPI document for the service.
// Keep it in sync with the mounted routes; modules add detail via Register
func baseSpec() map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "webcompat metrics API",
			"version": "1.0.0",
		},
		"servers": []any{
			map[string]any{"url": "/api/v1"},
		},
		"paths": map[string]any{},
		"components": map[string]any{
			"schemas": map[string]any{
				"ErrorResponse": map[string]any{
					"type":        "object",
					"description": "Standard error response",
					"properties": map[string]any{
						"status_code": map[string]any{"type": "integer", "format": "int32"},
						"status":      map[string]any{"type": "string"},
						"code":        map[string]any{"type": "integer", "format": "int32"},
						"error":       map[string]any{"type": "string"},
						"request_id":  map[string]any{"type": "string"},
					},
					"required": []any{"status_code", "status"},
				},
			},
		},
	}
}

// serveDocJSON serves the spec and lets modules adjust details
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec := baseSpec()
		for _, m := range mutators {
			m(spec)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}
