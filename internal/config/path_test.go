package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("PLANNER_TEST_DIR", "/data/planner")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty path", "", ""},
		{"absolute path unchanged", "/var/lib/planner.db", "/var/lib/planner.db"},
		{"tilde expansion", "~/planner.db", filepath.Join(home, "planner.db")},
		{"bare tilde", "~", home},
		{"env var expansion", "$PLANNER_TEST_DIR/planner.db", "/data/planner/planner.db"},
		{"tilde mid-path not expanded", "/tmp/~planner", "/tmp/~planner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
