package http

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var rawOpenAPI []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document served at /openapi.yaml.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawOpenAPI)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading openapi document: %w", err)
			return
		}
		if err := doc.Validate(loader.Context); err != nil {
			swaggerErr = fmt.Errorf("invalid openapi document: %w", err)
			return
		}
		swagger = doc
	})
	return swagger, swaggerErr
}

// GetSolveParams holds the query parameters of GET /solve.
type GetSolveParams struct {
	Equation string `form:"equation" json:"equation"`
}

// SolveRequest is the body of POST /solve.
type SolveRequest struct {
	Equation string `json:"equation"`
}

// ServerInterface lists one method per operation in openapi.yaml.
type ServerInterface interface {
	GetSolve(w http.ResponseWriter, r *http.Request, params GetSolveParams)
	PostSolve(w http.ResponseWriter, r *http.Request)
	GetHealth(w http.ResponseWriter, r *http.Request)
	GetInfo(w http.ResponseWriter, r *http.Request)
}

// serverInterfaceWrapper binds request parameters before calling into ServerInterface.
type serverInterfaceWrapper struct {
	handler ServerInterface
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *serverInterfaceWrapper) GetSolve(w http.ResponseWriter, r *http.Request) {
	var params GetSolveParams
	if err := runtime.BindQueryParameter("form", true, true, "equation", r.URL.Query(), &params.Equation); err != nil {
		siw.onError(w, r, fmt.Errorf("invalid format for parameter equation: %w", err))
		return
	}
	siw.handler.GetSolve(w, r, params)
}

// HandlerFromMux registers every operation of si on r.
func HandlerFromMux(si ServerInterface, r chi.Router, onError func(w http.ResponseWriter, r *http.Request, err error)) http.Handler {
	wrapper := &serverInterfaceWrapper{handler: si, onError: onError}
	r.Get("/solve", wrapper.GetSolve)
	r.Post("/solve", si.PostSolve)
	r.Get("/health", si.GetHealth)
	r.Get("/info", si.GetInfo)
	return r
}
