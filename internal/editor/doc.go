// Package editor defines the host document abstraction used by the
// formatting engine.
//
// The engine never talks to a concrete editor directly. It depends on the
// Document interface, which exposes the minimal text, selection, and
// bracket-navigation operations the formatter and the keystroke triggers
// need. Any editor integration implements Document; MemDocument provides an
// in-memory implementation used by the command-line tool and by tests.
package editor
