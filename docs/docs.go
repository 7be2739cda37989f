// Package docs serves the API documentation: a static OpenAPI 3
// document and an interactive viewer page rendering it.
package docs

import (
	_ "embed"
	"net/http"
)

// Spec is the machine-readable route and schema description.
//
//go:embed openapi.json
var Spec []byte

const viewerPage = `<!DOCTYPE html>
<html>
<head>
  <title>Blog API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/api-docs/openapi.json",
      dom_id: "#swagger-ui"
    });
  </script>
</body>
</html>
`

// SpecHandler serves the raw OpenAPI document
func SpecHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(Spec)
}

// UIHandler serves the interactive documentation viewer
func UIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(viewerPage))
}
