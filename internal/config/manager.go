package config

import (
	"sync"
	"time"
)

// Observer is called with the new snapshot after a configuration change.
type Observer func(Snapshot)

// Subscription represents an active observer subscription.
type Subscription struct {
	id      uint64
	manager *Manager
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.manager != nil {
		s.manager.unsubscribe(s.id)
	}
}

// Manager owns the current configuration snapshot.
//
// The snapshot is replaced wholesale on every update; readers that captured
// a snapshot before the swap keep a consistent (if stale) view. Manager is
// safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	settings  Settings
	platform  Platform
	snap      Snapshot
	store     *Store
	observers map[uint64]Observer
	nextID    uint64
}

// NewManager creates a manager with the given initial settings.
func NewManager(settings Settings, platform Platform) *Manager {
	return &Manager{
		settings:  settings,
		platform:  platform,
		snap:      Resolve(settings, platform),
		observers: make(map[uint64]Observer),
	}
}

// NewManagerFromStore creates a manager that loads its settings from and
// persists them to the given store.
func NewManagerFromStore(store *Store, platform Platform) (*Manager, error) {
	settings, err := store.Load()
	if err != nil {
		return nil, err
	}
	m := NewManager(settings, platform)
	m.store = store
	return m, nil
}

// Current returns the active snapshot. The caller must treat it as
// read-only and as stale after any configuration-change notification.
func (m *Manager) Current() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Settings returns a copy of the raw settings.
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Platform returns the platform facts resolution uses.
func (m *Manager) Platform() Platform {
	return m.platform
}

// Update replaces the settings, re-resolves the snapshot, and notifies
// subscribers.
func (m *Manager) Update(settings Settings) {
	m.mu.Lock()
	m.settings = settings
	m.snap = Resolve(settings, m.platform)
	snap := m.snap
	observers := make([]Observer, 0, len(m.observers))
	for _, o := range m.observers {
		observers = append(observers, o)
	}
	m.mu.Unlock()

	for _, o := range observers {
		o(snap)
	}
}

// Reload re-reads settings from the attached store and applies them.
func (m *Manager) Reload() error {
	m.mu.RLock()
	store := m.store
	m.mu.RUnlock()

	if store == nil {
		return ErrNoStore
	}
	settings, err := store.Load()
	if err != nil {
		return err
	}
	m.Update(settings)
	return nil
}

// Subscribe registers an observer for snapshot replacements.
func (m *Manager) Subscribe(o Observer) *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.observers[id] = o
	return &Subscription{id: id, manager: m}
}

func (m *Manager) unsubscribe(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.observers, id)
}

// UseBundledPhar re-points the executable at the bundled fallback archive.
// Used as remediation when the configured executable cannot be started.
// The change is persisted when a store is attached (best effort).
func (m *Manager) UseBundledPhar() Snapshot {
	m.mu.RLock()
	settings := m.settings
	store := m.store
	m.mu.RUnlock()

	settings.Executable = m.platform.BundledPhar()
	settings.ExecutableWindows = ""
	m.Update(settings)

	if store != nil {
		_ = store.Save(settings)
	}
	return m.Current()
}

// SetLastDownload records the timestamp of the last bundled-archive update
// check and persists it when a store is attached.
func (m *Manager) SetLastDownload(t time.Time) error {
	m.mu.RLock()
	settings := m.settings
	store := m.store
	m.mu.RUnlock()

	settings.LastDownload = t.Unix()
	m.Update(settings)

	if store == nil {
		return ErrNoStore
	}
	return store.Save(settings)
}
