package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes a structured-extraction task for the model.
type ExtractionSchema struct {
	Name        string        // schema name, e.g. "Entities"
	Description string        // task preamble
	Fields      []SchemaField // expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // type hint shown to the model
	Description string
	Required    bool
}

// BuildExtractionPrompt constructs the prompt from a schema and the input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s", field.Name, typeHint))
		if field.Required {
			sb.WriteString(" (required)")
		}
		if field.Description != "" {
			sb.WriteString(" // " + field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Only report text that appears verbatim in the input.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// EntitySchema asks for named entities tagged ORG, PRODUCT or LANGUAGE, the labels
// that carry company, tool and programming-language names in resumes.
func EntitySchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "Entities",
		Description: `You are a named-entity tagger for resumes and job descriptions.
Tag organizations (ORG), products, tools and technologies (PRODUCT), and programming or natural languages (LANGUAGE).
Ignore people, places, dates and quantities.`,
		Fields: []SchemaField{
			{
				Name:        "entities",
				Type:        `[{"text": "string", "label": "ORG|PRODUCT|LANGUAGE"}]`,
				Description: "one object per distinct entity mention, text copied exactly",
				Required:    true,
			},
		},
	}
}
