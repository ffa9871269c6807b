package http

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	spec       = mustLoadSpec()
	specRouter = mustRouter(spec)
)

func mustLoadSpec() *openapi3.T {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		panic(fmt.Sprintf("http: embedded openapi.yaml: %v", err))
	}
	if err := doc.Validate(loader.Context); err != nil {
		panic(fmt.Sprintf("http: embedded openapi.yaml: %v", err))
	}
	return doc
}

func mustRouter(doc *openapi3.T) routers.Router {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		panic(fmt.Sprintf("http: openapi router: %v", err))
	}
	return router
}

// Spec returns the embedded OpenAPI document.
func Spec() []byte {
	return rawSpec
}

// APIVersion is the version declared by the embedded OpenAPI document.
func APIVersion() string {
	if spec.Info == nil {
		return "unknown"
	}
	return spec.Info.Version
}

// validateRequests checks requests against the OpenAPI contract. Paths the
// contract does not describe (metrics, docs) pass through untouched.
func (s *Server) validateRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := specRouter.FindRoute(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
		}
		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			s.logger.Warn("Request rejected by contract", "path", r.URL.Path, "error", err)
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}
