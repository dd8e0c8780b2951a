// Package config resolves host-provided settings into immutable
// configuration snapshots for the formatting engine.
//
// A Snapshot is rebuilt wholesale from the raw Settings whenever the host
// signals a configuration change; it is never partially mutated, so a
// formatting operation that captured a snapshot mid-flight always sees a
// consistent view. The Manager owns the current snapshot, re-resolves on
// updates, and notifies subscribers. Store persists Settings to a TOML or
// YAML file, and Watcher triggers a Manager reload when that file changes.
package config
