package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "string", input: `"abc-123"`, want: ID("abc-123")},
		{name: "integer", input: `42`, want: ID("42")},
		{name: "large integer stays exact", input: `9007199254740993`, want: ID("9007199254740993")},
		{name: "null", input: `null`, want: ID("")},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestID_InsideEntity(t *testing.T) {
	// numeric wire id must come out as a string id on the entity
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "title": "t"}`), &task))
	assert.Equal(t, ID("7"), task.ID)
}
