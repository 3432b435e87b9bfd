package session

import (
	"sync"

	serrors "shaimind/src/errors"
	"shaimind/src/personality"
)

// Manager tracks active sessions by ID. Each session gets its own
// persona clone, so concurrent sessions never share mutable state.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	catalog   personality.Catalog
	generator ReplyGenerator
}

func NewManager(catalog personality.Catalog, generator ReplyGenerator) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		catalog:   catalog,
		generator: generator,
	}
}

// Catalog exposes the persona catalog for UI listing
func (m *Manager) Catalog() personality.Catalog {
	return m.catalog
}

// DefaultPersonaKey returns the first catalog key in sorted order
func (m *Manager) DefaultPersonaKey() string {
	keys := m.catalog.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// Get returns the session for id, if it exists
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Create starts a new session for the named persona
func (m *Manager) Create(personaKey string) (*Session, error) {
	persona, err := m.catalog.Get(personaKey)
	if err != nil {
		return nil, err
	}

	s := New(persona, m.generator)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

// Switch resets the identified session to a new persona
func (m *Manager) Switch(id, personaKey string) error {
	s, ok := m.Get(id)
	if !ok {
		return serrors.ErrSessionNotFound
	}

	persona, err := m.catalog.Get(personaKey)
	if err != nil {
		return err
	}

	s.SwitchPersona(persona)
	return nil
}
