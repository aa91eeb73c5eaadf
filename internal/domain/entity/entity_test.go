package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestQuestion_TableNames(t *testing.T) {
	assert.Equal(t, "questions", Question{}.TableName())
	assert.Equal(t, "answers", Answer{}.TableName())
}

func TestQuestion_HasURL(t *testing.T) {
	tests := []struct {
		name string
		url  *string
		want bool
	}{
		{name: "nil", url: nil, want: false},
		{name: "empty", url: strPtr(""), want: false},
		{name: "set", url: strPtr("https://example.com/q.png"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{URL: tt.url}
			assert.Equal(t, tt.want, q.HasURL())
		})
	}
}

