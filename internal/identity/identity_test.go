package identity

import (
	"regexp"
	"strings"
	"testing"
)

func TestUserAgent_Format(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		user     string
		hostname string
		want     string
	}{
		{
			name:     "basic format",
			version:  "1.2.0",
			user:     "alice",
			hostname: "macbook",
			want:     "clickup-cli/1.2.0 (alice@macbook)",
		},
		{
			name:     "fallback user",
			version:  "1.2.0",
			user:     "",
			hostname: "server",
			want:     "clickup-cli/1.2.0 (unknown@server)",
		},
		{
			name:     "fallback hostname",
			version:  "1.2.0",
			user:     "dev",
			hostname: "",
			want:     "clickup-cli/1.2.0 (dev@localhost)",
		},
		{
			name:     "fallback version",
			version:  "",
			user:     "dev",
			hostname: "box",
			want:     "clickup-cli/dev (dev@box)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserAgentWithOverrides(tt.version, tt.user, tt.hostname)
			if got != tt.want {
				t.Errorf("UserAgentWithOverrides() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserAgent_UsesEnvironmentUser(t *testing.T) {
	t.Setenv("USER", "envuser")

	got := UserAgent()
	if !strings.Contains(got, "(envuser@") {
		t.Errorf("UserAgent() = %q, want it to contain envuser", got)
	}

	pattern := regexp.MustCompile(`^clickup-cli/[^ ]+ \([^@]+@[^)]+\)$`)
	if !pattern.MatchString(got) {
		t.Errorf("UserAgent() = %q, does not match expected format", got)
	}
}
