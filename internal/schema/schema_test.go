package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFieldName(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr bool
	}{
		{
			name:    "valid name",
			field:   "order_id",
			wantErr: false,
		},
		{
			name:    "valid name with digits",
			field:   "product_weight_g2",
			wantErr: false,
		},
		{
			name:    "valid leading underscore",
			field:   "_internal",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			field:   "",
			wantErr: true,
		},
		{
			name:    "invalid - leading digit",
			field:   "1price",
			wantErr: true,
		},
		{
			name:    "invalid - hyphen",
			field:   "order-id",
			wantErr: true,
		},
		{
			name:    "invalid - space",
			field:   "order id",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldName(tt.field)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldName(%q) error = %v, wantErr %v", tt.field, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFieldType(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		wantErr bool
	}{
		{
			name:    "valid string",
			typ:     "STRING",
			wantErr: false,
		},
		{
			name:    "valid timestamp",
			typ:     "TIMESTAMP",
			wantErr: false,
		},
		{
			name:    "valid lowercase",
			typ:     "float",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			typ:     "",
			wantErr: true,
		},
		{
			name:    "invalid - unknown type",
			typ:     "VARCHAR",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldType(tt.typ)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldType(%q) error = %v, wantErr %v", tt.typ, err, tt.wantErr)
			}
		})
	}
}

func TestValidationResult(t *testing.T) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if !result.Valid {
		t.Error("New ValidationResult should be valid initially")
	}

	result.addError("test error")

	if result.Valid {
		t.Error("ValidationResult should be invalid after adding error")
	}

	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}

	if result.Errors[0] != "test error" {
		t.Errorf("Expected 'test error', got %q", result.Errors[0])
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		valid  bool
	}{
		{
			name: "valid schema",
			schema: Schema{Fields: []Field{
				{Name: "order_id", Type: "STRING"},
				{Name: "price", Type: "FLOAT"},
			}},
			valid: true,
		},
		{
			name:   "empty schema",
			schema: Schema{},
			valid:  false,
		},
		{
			name: "duplicate field",
			schema: Schema{Fields: []Field{
				{Name: "order_id", Type: "STRING"},
				{Name: "order_id", Type: "STRING"},
			}},
			valid: false,
		},
		{
			name: "bad type",
			schema: Schema{Fields: []Field{
				{Name: "order_id", Type: "TEXT"},
			}},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.schema.Validate()
			if result.Valid != tt.valid {
				t.Errorf("Validate() valid = %v, want %v (errors: %v)", result.Valid, tt.valid, result.Errors)
			}
		})
	}
}

func TestOrdersSchema(t *testing.T) {
	orders := Orders()

	if len(orders.Fields) != 23 {
		t.Errorf("Orders() has %d fields, want 23", len(orders.Fields))
	}

	if result := orders.Validate(); !result.Valid {
		t.Errorf("Orders() should validate, got: %v", result.Errors)
	}

	bq, err := orders.BigQuery()
	if err != nil {
		t.Fatalf("Orders().BigQuery() error = %v", err)
	}
	if len(bq) != len(orders.Fields) {
		t.Errorf("BigQuery() has %d fields, want %d", len(bq), len(orders.Fields))
	}
	if bq[0].Name != "order_id" {
		t.Errorf("first BigQuery field = %q, want order_id", bq[0].Name)
	}
}

func TestLoadYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "schema.yaml")
	yamlData := "fields:\n  - name: order_id\n    type: STRING\n  - name: price\n    type: FLOAT\n"
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0644); err != nil {
		t.Fatal(err)
	}

	jsonPath := filepath.Join(dir, "schema.json")
	jsonData := `{"fields": [{"name": "order_id", "type": "STRING"}, {"name": "price", "type": "FLOAT"}]}`
	if err := os.WriteFile(jsonPath, []byte(jsonData), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{yamlPath, jsonPath} {
		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", path, err)
		}
		if len(s.Fields) != 2 {
			t.Errorf("Load(%q) has %d fields, want 2", path, len(s.Fields))
		}
		if s.Fields[0].Name != "order_id" || s.Fields[1].Type != "FLOAT" {
			t.Errorf("Load(%q) parsed unexpected fields: %+v", path, s.Fields)
		}
	}
}

func TestLoadUnknownExtensionFallsBackToYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.conf")
	data := "fields:\n  - name: order_id\n    type: STRING\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Fields) != 1 {
		t.Errorf("Load() has %d fields, want 1", len(s.Fields))
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.yaml")

	if err := Save(Orders(), path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Fields) != 23 {
		t.Errorf("round-tripped schema has %d fields, want 23", len(loaded.Fields))
	}
}
