// Package validate checks decoded JSON payloads against a declared shape.
//
// A Shape lists the fields a payload may carry, their kind and whether they are
// required. Unknown keys are ignored. The result is binary: callers only learn
// whether a payload is valid, although Check reports the first offending field
// for logs and tests.
package validate

import (
	"encoding/json"
	"fmt"
	"time"
)

// Payload is a request body decoded into a generic JSON object.
type Payload map[string]any

// Has reports whether key is present in the payload, even with an empty value.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Decode copies the payload into dst using its json tags.
func (p Payload) Decode(dst any) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Kind is the expected type of a field value.
type Kind int

const (
	KindString Kind = iota
	KindDate
	KindStringList
)

// Field describes one key of a Shape.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
}

func String(name string) Field     { return Field{Name: name, Kind: KindString} }
func Date(name string) Field       { return Field{Name: name, Kind: KindDate} }
func StringList(name string) Field { return Field{Name: name, Kind: KindStringList} }

// Require marks the field as mandatory.
func (f Field) Require() Field {
	f.Required = true
	return f
}

// Shape is an ordered set of fields.
type Shape struct {
	fields []Field
}

func Object(fields ...Field) Shape {
	return Shape{fields: fields}
}

// Optional returns a copy of the shape in which no field is required. Update
// payloads are checked against the optional form of the create shape.
func (s Shape) Optional() Shape {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		f.Required = false
		out[i] = f
	}
	return Shape{fields: out}
}

// Fields returns the declared fields in order.
func (s Shape) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Check returns nil when p satisfies s, otherwise an error naming the first
// failing field.
func (s Shape) Check(p Payload) error {
	for _, f := range s.fields {
		v, ok := p[f.Name]
		if !ok {
			if f.Required {
				return fmt.Errorf("%s is required", f.Name)
			}
			continue
		}
		if v == nil {
			return fmt.Errorf("%s must not be null", f.Name)
		}
		if err := f.check(v); err != nil {
			return err
		}
	}
	return nil
}

func (f Field) check(v any) error {
	switch f.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", f.Name)
		}
		if f.Required && s == "" {
			return fmt.Errorf("%s is required", f.Name)
		}
	case KindDate:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s must be a date string", f.Name)
		}
		if _, err := ParseDate(s); err != nil {
			return fmt.Errorf("%s must be a date: %w", f.Name, err)
		}
	case KindStringList:
		items, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s must be a list", f.Name)
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("%s[%d] must be a string", f.Name, i)
			}
		}
	default:
		return fmt.Errorf("%s has unknown kind %d", f.Name, f.Kind)
	}
	return nil
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps and plain calendar dates.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Validator is the pass/fail shape check injected into services.
type Validator interface {
	IsValid(shape Shape, payload Payload) bool
}

type validator struct{}

func (validator) IsValid(shape Shape, payload Payload) bool {
	return shape.Check(payload) == nil
}

// Default is the Validator backed by Shape.Check.
var Default Validator = validator{}
