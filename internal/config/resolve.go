package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Token in executable paths that resolves to the install directory.
const extensionPathToken = "${extensionPath}"

// Resolve builds a Snapshot from raw settings and platform facts.
//
// All fields are resolved in one pass; the returned snapshot is complete
// and never mutated afterwards.
func Resolve(s Settings, p Platform) Snapshot {
	exe := strings.TrimSpace(s.Executable)
	if p.IsWindows() && strings.TrimSpace(s.ExecutableWindows) != "" {
		exe = strings.TrimSpace(s.ExecutableWindows)
	}
	if exe == "" {
		if p.IsWindows() {
			exe = "php-cs-fixer.bat"
		} else {
			exe = "php-cs-fixer"
		}
	}

	exe = strings.ReplaceAll(exe, extensionPathToken, p.InstallDir)
	exe = ExpandHome(exe, p.HomeDir)

	executable, execArgs, phar := splitPhar(exe)

	return Snapshot{
		OnSave:             s.OnSave,
		AutoFixByBracket:   s.AutoFixByBracket,
		AutoFixBySemicolon: s.AutoFixBySemicolon,
		Executable:         executable,
		ExecArgs:           execArgs,
		PharPath:           phar,
		Rules:              serializeRules(s.Rules),
		ConfigCandidates:   splitCandidates(s.Config),
		AllowRisky:         s.AllowRisky,
		PathMode:           pathModeOrDefault(s.PathMode),
		Exclude:            append([]string(nil), s.Exclude...),
		FormatHTML:         s.FormatHTML,
		HomeDir:            p.HomeDir,
	}
}

// splitPhar splits an executable value that ends in a .phar archive into
// the interpreter command and the archive path. The interpreter defaults
// to "php" when the value is the bare archive path.
func splitPhar(exe string) (executable string, execArgs []string, phar string) {
	if !strings.HasSuffix(exe, ".phar") {
		return exe, nil, ""
	}

	tokens, err := shellquote.Split(exe)
	if err != nil || len(tokens) == 0 {
		return "php", nil, exe
	}

	phar = tokens[len(tokens)-1]
	rest := tokens[:len(tokens)-1]
	if len(rest) == 0 {
		return "php", nil, phar
	}
	args := rest[1:]
	if len(args) == 0 {
		args = nil
	}
	return rest[0], args, phar
}

// serializeRules normalizes the rule-set specifier to a string.
// Structured rule maps serialize to canonical JSON (sorted keys).
func serializeRules(rules any) string {
	switch v := rules.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// splitCandidates splits the ";"-separated config candidate list,
// trimming whitespace and dropping empty entries.
func splitCandidates(list string) []string {
	var out []string
	for _, c := range strings.Split(list, ";") {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// ExpandHome replaces a leading "~/" with the given home directory.
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return home + path[1:]
	}
	return path
}

func pathModeOrDefault(mode string) string {
	if mode == "" {
		return "override"
	}
	return mode
}
