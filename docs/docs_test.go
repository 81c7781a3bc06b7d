package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	if parsed.Info.Title != "Student Records API" {
		t.Fatalf("title = %q", parsed.Info.Title)
	}
	for _, path := range []string{"/students/", "/students/{id}/", "/academic-records/", "/medical-information/{id}/", "/exports/students/"} {
		if _, ok := parsed.Paths[path]; !ok {
			t.Errorf("path %s missing", path)
		}
	}
}
