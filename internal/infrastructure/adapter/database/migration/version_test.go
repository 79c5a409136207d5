package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionBefore(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "1.1.0", true},
		{"0.9", "1.1.0", true},
		{"1.1.0", "1.1.0", false},
		{"1.2.0", "1.1.0", false},
		{"1.10.0", "1.9.0", false},
		{"1.1", "1.1.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"<"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, versionBefore(tt.a, tt.b))
		})
	}
}
