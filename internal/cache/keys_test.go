package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "prefix only", parts: nil, expected: "lingua"},
		{name: "single part", parts: []string{"progress"}, expected: "lingua:progress"},
		{name: "several parts", parts: []string{"progress", "lock", "user", "7"}, expected: "lingua:progress:lock:user:7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.parts...))
		})
	}
}

func TestUserLockKey(t *testing.T) {
	assert.Equal(t, "lingua:progress:lock:user:42", UserLockKey(42))
}
