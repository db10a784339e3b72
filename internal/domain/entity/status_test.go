package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  Status
		valid bool
	}{
		{name: "empty defaults to active", raw: "", want: StatusActive, valid: true},
		{name: "active", raw: "Active", want: StatusActive, valid: true},
		{name: "inactive", raw: "Inactive", want: StatusInactive, valid: true},
		{name: "lowercase rejected", raw: "active", valid: false},
		{name: "unknown rejected", raw: "Suspended", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusInactive.IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("Deleted").IsValid())
}
