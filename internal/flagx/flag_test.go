package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "http://localhost:8081"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-a", "x"},
			allowed: []string{"-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "double dash spelling of an allowed flag",
			args:    []string{"--a", "http://api", "-d", "rides.db"},
			allowed: []string{"-a"},
			want:    []string{"--a", "http://api"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next token starting with dash is not a value",
			args:    []string{"-c", "-i", "5"},
			allowed: []string{"-c", "-i"},
			want:    []string{"-c", "-i", "5"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-t", "3", "-t", "9"},
			allowed: []string{"-t"},
			want:    []string{"-t", "3", "-t", "9"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/rsx.json"}, want: "/etc/rsx.json"},
		{name: "long", args: []string{"-config", "/etc/rsx.json"}, want: "/etc/rsx.json"},
		{name: "mixed with other flags", args: []string{"-a", "http://api", "-config=cfg.json", "-i", "4"}, want: "cfg.json"},
		{name: "last wins", args: []string{"-c", "one.json", "-config", "two.json"}, want: "two.json"},
		{name: "absent", args: []string{"-a", "http://api"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFilePath(tt.args))
		})
	}
}
