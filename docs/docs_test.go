package docs

import (
	"encoding/json"
	"strings"
	"testing"
)

// The swagger document is rendered from docTemplate through swag.Spec.ReadDoc,
// which falls back to the raw template when rendering fails. Parsing the
// output as JSON catches both a broken template and a Spec that no longer
// renders it.
func TestSwaggerInfoRendersValidDocument(t *testing.T) {
	doc := SwaggerInfo.ReadDoc()

	if strings.Contains(doc, "{{") {
		t.Fatalf("swagger document contains unrendered template directives")
	}

	var parsed struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("swagger document is not valid JSON: %v", err)
	}

	if parsed.Swagger != "2.0" {
		t.Errorf("swagger version = %q, want %q", parsed.Swagger, "2.0")
	}
	if parsed.Info.Title != "LLM Personal Assistant API" {
		t.Errorf("title = %q, want %q", parsed.Info.Title, "LLM Personal Assistant API")
	}
	for _, path := range []string{"/api/v1/prompts/respond", "/api/v1/tasks", "/health"} {
		if _, ok := parsed.Paths[path]; !ok {
			t.Errorf("swagger document missing path %q", path)
		}
	}
}
