// Package format runs whole-document formatting through the external
// formatter, managing scratch files and the advisory running flag.
//
// The document text is written to a scratch file under the OS temp
// directory, the formatter fixes that file in place, and the post-fix
// content is read back as the result. Partial-mode calls (keystroke
// triggers) reuse one fixed scratch filename; rapid successive partial
// calls therefore share the file and rely on the running flag to serialize
// in practice. That collision is an accepted hazard inherited from the
// design, not a guarantee.
package format
