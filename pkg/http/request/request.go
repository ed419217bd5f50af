// Package request decodes JSON request bodies after validating them against a
// compiled JSON schema.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

const maxBodyBytes = 1 << 20

// Schema is a compiled request body schema.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Compile parses and compiles a JSON schema document.
func Compile(name string, raw []byte) (*Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile is Compile for package-level schemas.
func MustCompile(name string, raw []byte) *Schema {
	s, err := Compile(name, raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Error reports a body that is not JSON or does not satisfy its schema.
type Error struct {
	Schema string
	Field  string
	Err    error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s request: field %q: %v", e.Schema, e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s request: %v", e.Schema, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Decode reads the request body, validates it against schema and unmarshals it into dst.
func Decode(r *http.Request, schema *Schema, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return &Error{Schema: schema.name, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return &Error{Schema: schema.name, Err: errors.New("body too large")}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return &Error{Schema: schema.name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := schema.compiled.Validate(doc); err != nil {
		return &Error{Schema: schema.name, Field: fieldOf(err), Err: err}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &Error{Schema: schema.name, Err: err}
	}
	return nil
}

// fieldOf names the first property the validator complained about.
func fieldOf(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return ""
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	path := leaf.InstanceLocation
	if req, ok := leaf.ErrorKind.(*kind.Required); ok && len(req.Missing) > 0 {
		path = append(append([]string{}, path...), req.Missing[0])
	}
	return strings.Join(path, ".")
}
