package config

import (
	"reflect"
	"testing"
)

func unixPlatform() Platform {
	return Platform{OS: "linux", HomeDir: "/home/dev", InstallDir: "/opt/phpfix"}
}

func TestResolveDefaultExecutable(t *testing.T) {
	snap := Resolve(DefaultSettings(), unixPlatform())

	if snap.Executable != "php-cs-fixer" {
		t.Errorf("executable: got %q", snap.Executable)
	}
	if snap.UsesPhar() {
		t.Error("default snapshot should not use a phar")
	}
}

func TestResolveDefaultExecutableWindows(t *testing.T) {
	p := unixPlatform()
	p.OS = "windows"

	snap := Resolve(DefaultSettings(), p)
	if snap.Executable != "php-cs-fixer.bat" {
		t.Errorf("executable: got %q", snap.Executable)
	}
}

func TestResolveWindowsOverride(t *testing.T) {
	s := DefaultSettings()
	s.Executable = "/usr/local/bin/php-cs-fixer"
	s.ExecutableWindows = `C:\tools\php-cs-fixer.bat`

	p := unixPlatform()
	p.OS = "windows"
	snap := Resolve(s, p)
	if snap.Executable != `C:\tools\php-cs-fixer.bat` {
		t.Errorf("windows override not applied: got %q", snap.Executable)
	}

	// Non-Windows platforms ignore the override.
	snap = Resolve(s, unixPlatform())
	if snap.Executable != "/usr/local/bin/php-cs-fixer" {
		t.Errorf("override leaked to linux: got %q", snap.Executable)
	}
}

func TestResolveTokenSubstitution(t *testing.T) {
	s := DefaultSettings()
	s.Executable = "${extensionPath}/bin/php-cs-fixer"

	snap := Resolve(s, unixPlatform())
	if snap.Executable != "/opt/phpfix/bin/php-cs-fixer" {
		t.Errorf("token not substituted: got %q", snap.Executable)
	}
}

func TestResolveHomeExpansion(t *testing.T) {
	s := DefaultSettings()
	s.Executable = "~/bin/php-cs-fixer"

	snap := Resolve(s, unixPlatform())
	if snap.Executable != "/home/dev/bin/php-cs-fixer" {
		t.Errorf("home not expanded: got %q", snap.Executable)
	}
}

func TestResolvePharSplit(t *testing.T) {
	tests := []struct {
		name     string
		exe      string
		wantExec string
		wantArgs []string
		wantPhar string
	}{
		{
			name:     "bare archive",
			exe:      "/opt/phpfix/php-cs-fixer.phar",
			wantExec: "php",
			wantPhar: "/opt/phpfix/php-cs-fixer.phar",
		},
		{
			name:     "explicit interpreter",
			exe:      "php8.3 /opt/phpfix/php-cs-fixer.phar",
			wantExec: "php8.3",
			wantPhar: "/opt/phpfix/php-cs-fixer.phar",
		},
		{
			name:     "interpreter with flags",
			exe:      "php -d memory_limit=-1 /opt/phpfix/php-cs-fixer.phar",
			wantExec: "php",
			wantArgs: []string{"-d", "memory_limit=-1"},
			wantPhar: "/opt/phpfix/php-cs-fixer.phar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.Executable = tt.exe

			snap := Resolve(s, unixPlatform())
			if snap.Executable != tt.wantExec {
				t.Errorf("executable: got %q, want %q", snap.Executable, tt.wantExec)
			}
			if !reflect.DeepEqual(snap.ExecArgs, tt.wantArgs) {
				t.Errorf("exec args: got %v, want %v", snap.ExecArgs, tt.wantArgs)
			}
			if snap.PharPath != tt.wantPhar {
				t.Errorf("phar: got %q, want %q", snap.PharPath, tt.wantPhar)
			}
			if !snap.UsesPhar() {
				t.Error("UsesPhar should be true")
			}
		})
	}
}

func TestResolveRulesString(t *testing.T) {
	s := DefaultSettings()
	s.Rules = "@Symfony"

	snap := Resolve(s, unixPlatform())
	if snap.Rules != "@Symfony" {
		t.Errorf("rules: got %q", snap.Rules)
	}
}

func TestResolveRulesMapSerializesToJSON(t *testing.T) {
	s := DefaultSettings()
	s.Rules = map[string]any{
		"array_syntax": map[string]any{"syntax": "short"},
		"@PSR12":       true,
		"single_quote": true,
	}

	snap := Resolve(s, unixPlatform())
	// json.Marshal sorts map keys, so the output is canonical.
	want := `{"@PSR12":true,"array_syntax":{"syntax":"short"},"single_quote":true}`
	if snap.Rules != want {
		t.Errorf("rules: got %q, want %q", snap.Rules, want)
	}
}

func TestResolveConfigCandidates(t *testing.T) {
	s := DefaultSettings()
	s.Config = " a.php ;; b.php ;"

	snap := Resolve(s, unixPlatform())
	want := []string{"a.php", "b.php"}
	if !reflect.DeepEqual(snap.ConfigCandidates, want) {
		t.Errorf("candidates: got %v, want %v", snap.ConfigCandidates, want)
	}
}

func TestResolvePathModeDefault(t *testing.T) {
	s := DefaultSettings()
	s.PathMode = ""

	snap := Resolve(s, unixPlatform())
	if snap.PathMode != "override" {
		t.Errorf("path mode: got %q", snap.PathMode)
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"~/bin/x", "/home/dev/bin/x"},
		{"~", "/home/dev"},
		{"/abs/path", "/abs/path"},
		{"rel/~/path", "rel/~/path"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.path, "/home/dev"); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
