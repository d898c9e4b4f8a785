// Package schema provides table-schema file parsing and validation for the
// dataengg platform.
//
// A schema file declares the columns of the BigQuery staging table. The
// validator checks field name format and that every type is a BigQuery
// type the loader supports, catching configuration errors before a load
// job is submitted.
//
// Supports both YAML (.yaml, .yml) and JSON (.json) schema files.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"cloud.google.com/go/bigquery"
	"gopkg.in/yaml.v3"
)

// Schema represents the schema file structure
type Schema struct {
	Fields []Field `yaml:"fields" json:"fields"`
}

// Field represents a single table column
type Field struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// fieldTypes maps the schema file type names to BigQuery field types.
var fieldTypes = map[string]bigquery.FieldType{
	"STRING":    bigquery.StringFieldType,
	"BYTES":     bigquery.BytesFieldType,
	"INTEGER":   bigquery.IntegerFieldType,
	"FLOAT":     bigquery.FloatFieldType,
	"NUMERIC":   bigquery.NumericFieldType,
	"BOOLEAN":   bigquery.BooleanFieldType,
	"TIMESTAMP": bigquery.TimestampFieldType,
	"DATE":      bigquery.DateFieldType,
	"TIME":      bigquery.TimeFieldType,
	"DATETIME":  bigquery.DateTimeFieldType,
}

var fieldNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Load loads and parses a schema file (supports .yaml, .yml, and .json)
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var s Schema

	// Detect format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
		}
	default:
		// Try YAML as fallback
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse schema (unknown extension %s, tried YAML): %w", ext, err)
		}
	}

	return &s, nil
}

// Save saves a schema to file (format determined by file extension)
func Save(s *Schema, path string) error {
	var data []byte
	var err error

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		data, err = json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema JSON: %w", err)
		}
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal schema YAML: %w", err)
		}
	default:
		// Default to YAML
		data, err = yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal schema YAML: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	return nil
}

// ValidationResult collects validation errors for a schema
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func (r *ValidationResult) addError(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Validate checks field names and types
func (s *Schema) Validate() *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(s.Fields) == 0 {
		result.addError("schema has no fields")
		return result
	}

	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if err := validateFieldName(f.Name); err != nil {
			result.addError("field %d: %v", i, err)
		} else if seen[f.Name] {
			result.addError("field %d: duplicate name %q", i, f.Name)
		}
		seen[f.Name] = true

		if err := validateFieldType(f.Type); err != nil {
			result.addError("field %q: %v", f.Name, err)
		}
	}

	return result
}

func validateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("field name must not be empty")
	}
	if !fieldNameRe.MatchString(name) {
		return fmt.Errorf("invalid field name %q (letters, digits, and underscores only, must not start with a digit)", name)
	}
	return nil
}

func validateFieldType(typ string) error {
	if typ == "" {
		return fmt.Errorf("field type must not be empty")
	}
	if _, ok := fieldTypes[strings.ToUpper(typ)]; !ok {
		return fmt.Errorf("unsupported field type %q", typ)
	}
	return nil
}

// BigQuery converts the schema into the loader's bigquery.Schema.
// The schema must validate first.
func (s *Schema) BigQuery() (bigquery.Schema, error) {
	if result := s.Validate(); !result.Valid {
		return nil, fmt.Errorf("invalid schema: %s", strings.Join(result.Errors, "; "))
	}

	out := make(bigquery.Schema, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, &bigquery.FieldSchema{
			Name:        f.Name,
			Type:        fieldTypes[strings.ToUpper(f.Type)],
			Description: f.Description,
		})
	}
	return out, nil
}
