package http

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// swaggerDoc serves the OpenAPI document to swag's registry.
type swaggerDoc struct {
	json atomic.Pointer[string]
}

func (d *swaggerDoc) ReadDoc() string {
	if s := d.json.Load(); s != nil {
		return *s
	}
	return "{}"
}

var (
	apiDoc       = &swaggerDoc{}
	registerOnce sync.Once
)

// SwaggerHandler publishes doc under swag.Name and returns the UI handler
// that reads it back.
func SwaggerHandler(doc *openapi3.T) (echo.HandlerFunc, error) {
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	s := string(data)
	apiDoc.json.Store(&s)
	registerOnce.Do(func() {
		swag.Register(swag.Name, apiDoc)
	})

	return echoSwagger.WrapHandler, nil
}
