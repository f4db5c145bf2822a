package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the bento configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "bento")
}

// GridFile returns the path to the user's grid.hcl.
func GridFile() string {
	return filepath.Join(Dir(), "grid.hcl")
}

// LogFile returns the path debug logs are written to.
func LogFile() string {
	return filepath.Join(Dir(), "bento.log")
}
