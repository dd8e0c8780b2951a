package config

// Snapshot is an immutable configuration value captured at resolve time.
//
// Exactly one of the executable forms is active: either Executable points
// directly at the formatter binary (PharPath empty), or Executable is the
// interpreter and PharPath is the archive it runs. Callers must treat every
// prior snapshot as stale after a configuration-change notification.
type Snapshot struct {
	// Trigger flags.
	OnSave             bool
	AutoFixByBracket   bool
	AutoFixBySemicolon bool

	// Executable is the resolved path of the process to start: the
	// formatter binary itself, or the interpreter when PharPath is set.
	Executable string

	// ExecArgs are interpreter arguments that precede the formatter
	// arguments, parsed from an executable value such as
	// "php -d memory_limit=-1 tool.phar".
	ExecArgs []string

	// PharPath is the archive path when the executable resolved to a
	// .phar payload; empty otherwise.
	PharPath string

	// Rules is the serialized rule-set specifier.
	Rules string

	// ConfigCandidates are the candidate config file names, in search
	// order, already split and trimmed.
	ConfigCandidates []string

	// AllowRisky passes --allow-risky=yes.
	AllowRisky bool

	// PathMode is the configured path mode.
	PathMode string

	// Exclude lists glob patterns for excluded paths.
	Exclude []string

	// FormatHTML is carried through for hosts that pre-format HTML.
	FormatHTML bool

	// HomeDir supports "~/" expansion of config candidates at
	// argument-build time.
	HomeDir string
}

// UsesPhar returns true when the snapshot invokes an archive through an
// interpreter.
func (s Snapshot) UsesPhar() bool {
	return s.PharPath != ""
}
