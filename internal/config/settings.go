package config

// Settings holds the raw configuration values as the host provides them.
// Nothing here is resolved; Resolve turns Settings into a Snapshot.
type Settings struct {
	// OnSave enables whole-document formatting when a document is saved.
	OnSave bool `toml:"onsave" yaml:"onsave"`

	// AutoFixByBracket enables the closing-brace keystroke trigger.
	AutoFixByBracket bool `toml:"autoFixByBracket" yaml:"autoFixByBracket"`

	// AutoFixBySemicolon enables the semicolon keystroke trigger.
	AutoFixBySemicolon bool `toml:"autoFixBySemicolon" yaml:"autoFixBySemicolon"`

	// Executable is the formatter executable path. May contain the
	// ${extensionPath} token, a leading ~/, or an interpreter command
	// followed by a .phar archive path.
	Executable string `toml:"executablePath" yaml:"executablePath"`

	// ExecutableWindows overrides Executable on Windows when non-empty.
	ExecutableWindows string `toml:"executablePathWindows" yaml:"executablePathWindows"`

	// Rules is the rule-set specifier: either a string such as "@PSR12"
	// or a structured map serialized to JSON at resolve time.
	Rules any `toml:"rules" yaml:"rules"`

	// Config is a ";"-separated list of candidate config file names
	// searched for in the workspace before falling back to Rules.
	Config string `toml:"config" yaml:"config"`

	// AllowRisky passes --allow-risky=yes to the formatter.
	AllowRisky bool `toml:"allowRisky" yaml:"allowRisky"`

	// PathMode is the formatter path mode, "override" or "intersection".
	PathMode string `toml:"pathMode" yaml:"pathMode"`

	// Exclude lists glob patterns for paths that must never be formatted.
	Exclude []string `toml:"exclude" yaml:"exclude"`

	// FormatHTML enables pre-formatting of HTML in mixed PHP/HTML files.
	// The engine carries the flag for hosts that implement it.
	FormatHTML bool `toml:"formatHtml" yaml:"formatHtml"`

	// LastDownload is the Unix timestamp of the last bundled-archive
	// update check. Persisted through the Store.
	LastDownload int64 `toml:"lastDownload" yaml:"lastDownload"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		OnSave:             false,
		AutoFixByBracket:   true,
		AutoFixBySemicolon: false,
		Rules:              "@PSR12",
		Config:             ".php-cs-fixer.php;.php-cs-fixer.dist.php;.php_cs;.php_cs.dist",
		PathMode:           "override",
	}
}
