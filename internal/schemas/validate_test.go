package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LAWSA07/ProFel/internal/types"
)

func TestValidateProfileRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  types.RawRecord
		wantErr bool
	}{
		{
			name: "minimal with name",
			record: types.RawRecord{
				"name": "Grace Hopper",
			},
		},
		{
			name: "minimal with username",
			record: types.RawRecord{
				"username": "ghopper",
			},
		},
		{
			name: "full profile with mixed skill shapes",
			record: types.RawRecord{
				"name": "Grace Hopper",
				"bio":  "Compiler pioneer",
				"skills": []any{
					"COBOL",
					map[string]any{"name": "FORTRAN", "level": "expert"},
					map[string]any{"name": "Math", "weight": 0.9},
				},
				"repositories": []any{
					map[string]any{"name": "flow-matic", "language": "COBOL"},
				},
			},
		},
		{
			name:    "missing both name and username",
			record:  types.RawRecord{"bio": "anonymous"},
			wantErr: true,
		},
		{
			name: "skills must be an array",
			record: types.RawRecord{
				"name":   "Grace",
				"skills": "COBOL",
			},
			wantErr: true,
		},
		{
			name: "skill object requires a name",
			record: types.RawRecord{
				"name":   "Grace",
				"skills": []any{map[string]any{"level": "expert"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfileRecord(tt.record)
			if tt.wantErr {
				var ve *ValidationError
				require.Error(t, err)
				assert.True(t, errors.As(err, &ve), "expected a ValidationError, got %T", err)
				assert.NotEmpty(t, ve.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJobRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  types.RawRecord
		wantErr bool
	}{
		{
			name:   "minimal job",
			record: types.RawRecord{"title": "Backend Engineer"},
		},
		{
			name: "job with weighted requirements",
			record: types.RawRecord{
				"title":   "Backend Engineer",
				"company": "Acme",
				"requirements": []any{
					"Python",
					map[string]any{"name": "Go", "importance": 0.8},
				},
			},
		},
		{
			name:    "missing title",
			record:  types.RawRecord{"company": "Acme"},
			wantErr: true,
		},
		{
			name: "importance out of range",
			record: types.RawRecord{
				"title": "Backend Engineer",
				"requirements": []any{
					map[string]any{"name": "Go", "importance": 1.5},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJobRecord(tt.record)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJSONString(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {"count": {"type": "integer"}},
		"required": ["count"]
	}`

	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, ValidateJSONString(schema, `{"count": 3}`, "test.schema.json"))
	})

	t.Run("violation carries field path", func(t *testing.T) {
		err := ValidateJSONString(schema, `{"count": "three"}`, "test.schema.json")
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		require.Len(t, ve.Errors, 1)
		assert.Equal(t, "count", ve.Errors[0].Field)
	})

	t.Run("bad schema content", func(t *testing.T) {
		err := ValidateJSONString(`{`, `{}`, "broken.schema.json")
		var le *SchemaLoadError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, "broken.schema.json", le.Name)
	})
}
