// Package trigger implements the keystroke-driven incremental formatting
// heuristics.
//
// Two independent triggers watch what the user types: completing a closing
// brace and ending a statement with a semicolon. Each selects a minimal
// candidate range around the edit, wraps it in a synthetic prologue so the
// external formatter accepts the fragment as a standalone file, submits it
// as a partial format, strips the prologue from the result, and replaces
// the range only when the formatted text actually differs.
//
// Triggers are fire-and-forget from the editing session's point of view:
// failures are logged and swallowed, never surfaced to the user.
package trigger
