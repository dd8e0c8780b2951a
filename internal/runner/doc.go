// Package runner builds formatter command lines, starts the external
// formatter process, and classifies its outcome.
//
// The runner never retries: every failure is terminal for that invocation
// and is reported to the caller as a typed error. On success the process
// output is a JSON manifest of changed files, not the formatted content;
// the caller re-reads the scratch file when the manifest reports changes.
package runner
