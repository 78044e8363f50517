package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerInstance = "fastfeet"

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var registerSwagger sync.Once

// SwaggerHandler serves Swagger UI for doc. The document is registered with
// swag on first use; later calls reuse it.
func SwaggerHandler(doc *openapi3.T) (echo.HandlerFunc, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	registerSwagger.Do(func() {
		swag.Register(swaggerInstance, swaggerDoc{doc: string(payload)})
	})

	return echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)), nil
}
