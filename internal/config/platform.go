package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform describes the facts about the running environment that
// resolution depends on.
type Platform struct {
	// OS is the operating system family, a runtime.GOOS value.
	OS string

	// HomeDir is the user's home directory, used for "~/" expansion.
	HomeDir string

	// InstallDir is the directory this tool is installed in. The
	// ${extensionPath} token in executable paths resolves to it, and the
	// bundled fallback archive lives under it.
	InstallDir string
}

// CurrentPlatform returns the Platform for the running process.
func CurrentPlatform() Platform {
	home, _ := os.UserHomeDir()
	install := ""
	if exe, err := os.Executable(); err == nil {
		install = filepath.Dir(exe)
	}
	return Platform{
		OS:         runtime.GOOS,
		HomeDir:    home,
		InstallDir: install,
	}
}

// IsWindows returns true for the Windows OS family.
func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

// BundledPhar returns the path of the bundled fallback archive.
func (p Platform) BundledPhar() string {
	return filepath.Join(p.InstallDir, "php-cs-fixer.phar")
}
