package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://api", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api"},
		},
		{
			name:    "equals form",
			args:    []string{"-seal=true", "-a", "http://api"},
			allowed: []string{"-seal"},
			want:    []string{"-seal=true"},
		},
		{
			name:    "order preserved across flags",
			args:    []string{"-t", "5", "-c", "cfg.json", "-a", "http://api"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-t", "5", "-a", "http://api"},
		},
		{
			name:    "flag followed by flag has no value",
			args:    []string{"-seal", "-a", "http://api"},
			allowed: []string{"-seal", "-a"},
			want:    []string{"-seal", "-a", "http://api"},
		},
		{
			name:    "trailing flag kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-x", "1", "positional"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.args, tt.allowed...))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "a.json", ConfigPath([]string{"-a", "http://api", "-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigPath([]string{"-config=b.json"}))
	assert.Equal(t, "c.json", ConfigPath([]string{"--config", "c.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-a", "http://api"}))
	assert.Equal(t, "", ConfigPath(nil))
}
