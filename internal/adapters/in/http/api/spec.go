// Package api holds the HTTP contract of the restaurant service: the OpenAPI
// document, its request and response models, and the route table binding
// them to a ServerInterface.
package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// InstanceName identifies the document in the swag registry.
const InstanceName = "restaurant"

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return doc, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterSwaggerDoc makes the document available to the swagger UI under
// InstanceName. Subsequent calls are no-ops.
func RegisterSwaggerDoc() error {
	registerOnce.Do(func() {
		doc, err := GetSwagger()
		if err != nil {
			registerErr = err
			return
		}
		data, err := doc.MarshalJSON()
		if err != nil {
			registerErr = fmt.Errorf("error encoding OpenAPI document: %w", err)
			return
		}
		swag.Register(InstanceName, swaggerDoc{json: string(data)})
	})
	return registerErr
}
