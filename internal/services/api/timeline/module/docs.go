package module

import (
	"github.com/gr00nd/webcompat-metrics-server/internal/modkit/swaggerkit"
)

// keep the served spec in sync with Register in the http package
func init() {
	swaggerkit.Register(func(spec map[string]any) {
		paths, ok := spec["paths"].(map[string]any)
		if !ok {
			return
		}

		dateParam := func(name string) map[string]any {
			return map[string]any{
				"name":     name,
				"in":       "query",
				"required": true,
				"schema":   map[string]any{"type": "string", "format": "date"},
			}
		}
		timelineResp := map[string]any{
			"200": map[string]any{
				"description": "Timeline envelope",
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{"type": "object"},
					},
				},
			},
		}

		paths["/timeline/{category}"] = map[string]any{
			"get": map[string]any{
				"tags":    []any{"Timeline"},
				"summary": "Hourly issue counts for a category",
				"parameters": []any{
					map[string]any{
						"name":     "category",
						"in":       "path",
						"required": true,
						"schema":   map[string]any{"type": "string"},
					},
					dateParam("from"),
					dateParam("to"),
				},
				"responses": timelineResp,
			},
		}
		paths["/timeline/weekly"] = map[string]any{
			"get": map[string]any{
				"tags":       []any{"Timeline"},
				"summary":    "Weekly issue totals",
				"parameters": []any{dateParam("from"), dateParam("to")},
				"responses":  timelineResp,
			},
		}
		paths["/timeline/slice"] = map[string]any{
			"post": map[string]any{
				"tags":    []any{"Timeline"},
				"summary": "Slice a timeline envelope to a window",
				"requestBody": map[string]any{
					"required": true,
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{"type": "object"},
						},
					},
				},
				"responses": timelineResp,
			},
		}
	})
}
