package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

// Violation names the first field that broke its constraint. Field is a path
// such as "dailyPlans[0].activities[2].googleMapsUrl"; it is empty for the root.
type Violation struct {
	Field      string
	Constraint string
}

func (v *Violation) Error() string {
	if v.Field == "" {
		return v.Constraint
	}
	return fmt.Sprintf("field %q %s", v.Field, v.Constraint)
}

// ValidateJSON checks a raw JSON document against the schema. The document is
// never modified, so validating twice yields the same answer.
func (s *Schema) ValidateJSON(raw []byte) *Violation {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return &Violation{Constraint: "must be valid JSON"}
	}
	if _, err := dec.Token(); err != io.EOF {
		return &Violation{Constraint: "must contain a single JSON value"}
	}
	return s.validate("", doc)
}

// ValidateValue marshals a Go value and validates its JSON form.
func (s *Schema) ValidateValue(v any) *Violation {
	raw, err := json.Marshal(v)
	if err != nil {
		return &Violation{Constraint: "must be JSON encodable"}
	}
	return s.ValidateJSON(raw)
}

func (s *Schema) validate(path string, v any) *Violation {
	if v == nil {
		if s.Nullable {
			return nil
		}
		return &Violation{Field: path, Constraint: "must not be null"}
	}

	switch s.Kind {
	case KindString:
		str, ok := v.(string)
		if !ok {
			return &Violation{Field: path, Constraint: "must be a string"}
		}
		return s.validateString(path, str)
	case KindInteger:
		n, ok := v.(json.Number)
		if !ok {
			return &Violation{Field: path, Constraint: "must be an integer"}
		}
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return &Violation{Field: path, Constraint: "must be an integer"}
		}
		if s.Minimum != nil && float64(i) < *s.Minimum {
			return &Violation{Field: path, Constraint: fmt.Sprintf("must be >= %g", *s.Minimum)}
		}
	case KindNumber:
		n, ok := v.(json.Number)
		if !ok {
			return &Violation{Field: path, Constraint: "must be a number"}
		}
		f, err := n.Float64()
		if err != nil {
			return &Violation{Field: path, Constraint: "must be a number"}
		}
		if s.Minimum != nil && f < *s.Minimum {
			return &Violation{Field: path, Constraint: fmt.Sprintf("must be >= %g", *s.Minimum)}
		}
	case KindBoolean:
		if _, ok := v.(bool); !ok {
			return &Violation{Field: path, Constraint: "must be a boolean"}
		}
	case KindArray:
		items, ok := v.([]any)
		if !ok {
			return &Violation{Field: path, Constraint: "must be an array"}
		}
		if s.Items == nil {
			return nil
		}
		for i, item := range items {
			if vio := s.Items.validate(fmt.Sprintf("%s[%d]", path, i), item); vio != nil {
				return vio
			}
		}
	case KindObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return &Violation{Field: path, Constraint: "must be an object"}
		}
		for _, f := range s.Fields {
			fieldPath := joinPath(path, f.Name)
			val, present := obj[f.Name]
			if !present {
				if f.Required {
					return &Violation{Field: fieldPath, Constraint: "is required"}
				}
				continue
			}
			if vio := f.Schema.validate(fieldPath, val); vio != nil {
				return vio
			}
		}
	default:
		return &Violation{Field: path, Constraint: fmt.Sprintf("has unsupported schema kind %q", s.Kind)}
	}
	return nil
}

func (s *Schema) validateString(path, str string) *Violation {
	if s.NonBlank && strings.TrimSpace(str) == "" {
		return &Violation{Field: path, Constraint: "must not be blank"}
	}
	if len(s.Enum) > 0 {
		for _, allowed := range s.Enum {
			if str == allowed {
				return nil
			}
		}
		return &Violation{Field: path, Constraint: fmt.Sprintf("must be one of [%s]", strings.Join(s.Enum, ", "))}
	}
	if s.Format == FormatURL && !isWellFormedURL(str) {
		return &Violation{Field: path, Constraint: "must be a well-formed URL"}
	}
	if s.Prefix != "" && (!strings.HasPrefix(str, s.Prefix) || len(str) == len(s.Prefix)) {
		return &Violation{Field: path, Constraint: fmt.Sprintf("must start with %q followed by a query", s.Prefix)}
	}
	return nil
}

// isWellFormedURL checks shape only; reachability is never probed.
func isWellFormedURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
