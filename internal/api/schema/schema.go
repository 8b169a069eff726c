// Package schema describes the shape of flow inputs, flow outputs and tool
// payloads as explicit descriptors. The same descriptor validates candidate
// objects and is rendered for the model runtimes (Gemini schema, JSON Schema).
package schema

type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// FormatURL marks strings that must be well-formed absolute URLs.
const FormatURL = "uri"

// Schema is an immutable structural descriptor. Modifier methods return copies.
type Schema struct {
	Kind        Kind
	Description string
	Format      string
	Enum        []string
	Prefix      string
	NonBlank    bool
	Minimum     *float64
	Nullable    bool
	Items       *Schema
	Fields      []Field
}

// Field is a named member of an object schema.
type Field struct {
	Name     string
	Schema   *Schema
	Required bool
}

func String(description string) *Schema {
	return &Schema{Kind: KindString, Description: description}
}

func Integer(description string) *Schema {
	return &Schema{Kind: KindInteger, Description: description}
}

func Number(description string) *Schema {
	return &Schema{Kind: KindNumber, Description: description}
}

func Boolean(description string) *Schema {
	return &Schema{Kind: KindBoolean, Description: description}
}

func Array(description string, items *Schema) *Schema {
	return &Schema{Kind: KindArray, Description: description, Items: items}
}

func Object(description string, fields ...Field) *Schema {
	return &Schema{Kind: KindObject, Description: description, Fields: fields}
}

func Required(name string, s *Schema) Field {
	return Field{Name: name, Schema: s, Required: true}
}

func Optional(name string, s *Schema) Field {
	return Field{Name: name, Schema: s}
}

func (s *Schema) clone() *Schema {
	c := *s
	return &c
}

// URL requires the string to be a well-formed absolute URL.
func (s *Schema) URL() *Schema {
	c := s.clone()
	c.Format = FormatURL
	return c
}

// WithPrefix requires the string to start with prefix and continue past it.
func (s *Schema) WithPrefix(prefix string) *Schema {
	c := s.clone()
	c.Prefix = prefix
	return c
}

// NotBlank rejects empty and whitespace-only strings.
func (s *Schema) NotBlank() *Schema {
	c := s.clone()
	c.NonBlank = true
	return c
}

// OneOf restricts the string to a closed, case-sensitive set.
func (s *Schema) OneOf(values ...string) *Schema {
	c := s.clone()
	c.Enum = append([]string(nil), values...)
	return c
}

// AtLeast sets an inclusive lower bound for numbers and integers.
func (s *Schema) AtLeast(min float64) *Schema {
	c := s.clone()
	c.Minimum = &min
	return c
}

// OrNull accepts an explicit JSON null in place of the value.
func (s *Schema) OrNull() *Schema {
	c := s.clone()
	c.Nullable = true
	return c
}

// Describe replaces the human-readable description used to steer the model.
func (s *Schema) Describe(description string) *Schema {
	c := s.clone()
	c.Description = description
	return c
}

// Field returns the named member of an object schema.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredNames lists required member names in declaration order.
func (s *Schema) RequiredNames() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}
