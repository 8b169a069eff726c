package schema

import (
	"regexp"

	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/genai"
)

// ToGenAI renders the descriptor as a Gemini schema for structured decoding
// and function declarations.
func (s *Schema) ToGenAI() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Description: s.Description,
		Format:      s.Format,
	}
	if s.Nullable {
		out.Nullable = genai.Ptr(true)
	}
	switch s.Kind {
	case KindString:
		out.Type = genai.TypeString
		out.Enum = append([]string(nil), s.Enum...)
		if len(out.Enum) > 0 {
			out.Format = "enum"
		}
		out.Pattern = prefixPattern(s.Prefix)
	case KindInteger:
		out.Type = genai.TypeInteger
		out.Minimum = s.Minimum
	case KindNumber:
		out.Type = genai.TypeNumber
		out.Minimum = s.Minimum
	case KindBoolean:
		out.Type = genai.TypeBoolean
	case KindArray:
		out.Type = genai.TypeArray
		out.Items = s.Items.ToGenAI()
	case KindObject:
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(s.Fields))
		for _, f := range s.Fields {
			out.Properties[f.Name] = f.Schema.ToGenAI()
			out.PropertyOrdering = append(out.PropertyOrdering, f.Name)
		}
		out.Required = s.RequiredNames()
	}
	return out
}

// ToJSONSchema renders the descriptor as a JSON Schema document, used for
// OpenAI tool parameters, MCP tools and the schema endpoint.
func (s *Schema) ToJSONSchema() *jsonschema.Schema {
	if s == nil {
		return nil
	}
	out := &jsonschema.Schema{
		Description: s.Description,
		Format:      s.Format,
	}
	if s.Nullable {
		out.Types = []string{string(s.Kind), "null"}
	} else {
		out.Type = string(s.Kind)
	}
	for _, e := range s.Enum {
		out.Enum = append(out.Enum, e)
	}
	if s.NonBlank {
		minLen := 1
		out.MinLength = &minLen
	}
	if s.Minimum != nil {
		min := *s.Minimum
		out.Minimum = &min
	}
	out.Pattern = prefixPattern(s.Prefix)
	switch s.Kind {
	case KindArray:
		out.Items = s.Items.ToJSONSchema()
	case KindObject:
		out.Properties = make(map[string]*jsonschema.Schema, len(s.Fields))
		for _, f := range s.Fields {
			out.Properties[f.Name] = f.Schema.ToJSONSchema()
		}
		out.Required = s.RequiredNames()
	}
	return out
}

func prefixPattern(prefix string) string {
	if prefix == "" {
		return ""
	}
	return "^" + regexp.QuoteMeta(prefix) + ".+$"
}
