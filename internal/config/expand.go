package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// Expand replaces ${HOME} and ${USER} and then any other environment
// variables in s.
func Expand(s string) string {
	if s == "" {
		return s
	}
	return os.Expand(s, func(name string) string {
		switch name {
		case "HOME":
			home, _ := os.UserHomeDir()
			return home
		case "USER":
			return getUser()
		default:
			return os.Getenv(name)
		}
	})
}

// ResolvePath expands variables and ~ in p and makes it absolute relative
// to base. Absolute paths are returned cleaned.
func ResolvePath(base, p string) string {
	p = ExpandTilde(Expand(p))
	if p == "" || filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// getUser returns the current username.
func getUser() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	if user := os.Getenv("USERNAME"); user != "" {
		return user
	}
	return "user"
}
