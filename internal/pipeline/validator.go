package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/kurochkinivan/doc_generator/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const recipientPattern = `^$|^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]+$`

// Validator checks rows of one source against a schema compiled from its
// headers. Every declared column but the reason column must be filled; the
// recipient may be empty but must be well formed when present.
type Validator struct {
	columns domain.Columns
	headers []string
	schema  *jsonschema.Schema
	fields  map[string]string
}

func NewValidator(columns domain.Columns, headers []string) (*Validator, error) {
	v := &Validator{
		columns: columns,
		fields:  make(map[string]string, len(headers)),
	}

	properties := make(map[string]any, len(headers))
	for _, h := range headers {
		if h == columns.Reason || h == "" {
			continue
		}

		v.headers = append(v.headers, h)
		v.fields["/"+escapePointer(h)] = h
		v.fields["/"+rawPointer(h)] = h

		if h == columns.Recipient {
			properties[h] = map[string]any{"type": "string", "pattern": recipientPattern}
			continue
		}
		properties[h] = map[string]any{"type": "string", "minLength": 1}
	}

	schema, err := compileSchema(map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": properties,
	})
	if err != nil {
		return nil, err
	}
	v.schema = schema

	return v, nil
}

func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal row schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("row.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("failed to add row schema: %w", err)
	}

	schema, err := compiler.Compile("row.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile row schema: %w", err)
	}

	return schema, nil
}

// Validate returns every violated rule, in order: required fields, template
// name, recipient format, duplicate identity. seen is the job scoped set of
// identities; the first occurrence of an identity is recorded in it.
func (v *Validator) Validate(row domain.RowRecord, seen map[string]struct{}) []string {
	invalid := v.invalidFields(row)

	var (
		violations []string
		missing    []string
	)

	for _, h := range v.headers {
		if _, ok := invalid[h]; !ok || h == v.columns.Template || h == v.columns.Recipient {
			continue
		}
		missing = append(missing, h)
	}

	if len(missing) > 0 {
		violations = append(violations, "Missing required fields: "+strings.Join(missing, ", "))
	}

	if row.Value(v.columns.Template) == "" {
		violations = append(violations, fmt.Sprintf("Missing %s for Employee %s", v.columns.Template, row.Key))
	}

	if _, ok := invalid[v.columns.Recipient]; ok && v.columns.Recipient != "" {
		violations = append(violations, fmt.Sprintf("Invalid email format for Employee %s: %s",
			row.Key, row.Value(v.columns.Recipient)))
	}

	if id := row.Value(v.columns.EmployeeNumber); id != "" {
		if _, dup := seen[id]; dup {
			violations = append(violations, fmt.Sprintf("Duplicate %s: %s", v.columns.EmployeeNumber, id))
		} else {
			seen[id] = struct{}{}
		}
	}

	return violations
}

func (v *Validator) invalidFields(row domain.RowRecord) map[string]struct{} {
	instance := make(map[string]any, len(v.headers))
	for _, h := range v.headers {
		instance[h] = row.Value(h)
	}

	invalid := make(map[string]struct{})

	err := v.schema.Validate(instance)
	if err == nil {
		return invalid
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return invalid
	}

	v.collect(verr, invalid)

	return invalid
}

func (v *Validator) collect(verr *jsonschema.ValidationError, invalid map[string]struct{}) {
	if len(verr.Causes) == 0 {
		if field, ok := v.fields[verr.InstanceLocation]; ok {
			invalid[field] = struct{}{}
		}
		return
	}

	for _, cause := range verr.Causes {
		v.collect(cause, invalid)
	}
}

func rawPointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func escapePointer(token string) string {
	return url.PathEscape(rawPointer(token))
}
