// Package identity builds the User-Agent the CLI sends to ClickUp, so API
// audit logs show which machine and user made a request.
package identity

import (
	"fmt"
	"os"
	"os/user"
)

const (
	// Product is the leading User-Agent product token.
	Product = "clickup-cli"
	// FallbackUser is used when the user cannot be determined
	FallbackUser = "unknown"
	// FallbackHostname is used when the hostname cannot be determined
	FallbackHostname = "localhost"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// UserAgent returns the User-Agent string in the format:
// clickup-cli/<version> (user@hostname)
//
// Examples:
//   - clickup-cli/dev (alice@macbook)
//   - clickup-cli/1.2.0 (ci@runner-7)
func UserAgent() string {
	return UserAgentWithOverrides(Version, getUser(), getHostname())
}

// UserAgentWithOverrides returns the User-Agent using the provided values,
// applying fallbacks for any empty values.
func UserAgentWithOverrides(version, usr, hostname string) string {
	if version == "" {
		version = "dev"
	}
	if usr == "" {
		usr = FallbackUser
	}
	if hostname == "" {
		hostname = FallbackHostname
	}

	return fmt.Sprintf("%s/%s (%s@%s)", Product, version, usr, hostname)
}

// getUser returns the current user's username.
// It first checks the USER environment variable, then falls back to user.Current().
func getUser() string {
	if usr := os.Getenv("USER"); usr != "" {
		return usr
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}

	return ""
}

func getHostname() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return ""
}
