package handlers

import (
	_ "embed"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openAPIDoc []byte

const DocsPath = "/swagger/doc.json"

// OpenAPI serves the embedded API description.
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(openAPIDoc)
}

// SwaggerUI serves the docs UI pointed at DocsPath.
func SwaggerUI() http.HandlerFunc {
	return httpSwagger.Handler(httpSwagger.URL(DocsPath))
}
