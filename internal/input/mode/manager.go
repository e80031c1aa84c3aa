package mode

import "fmt"

// Manager holds the registered modes and coordinates transitions.
// The editor core is single-threaded, so Manager does no locking.
type Manager struct {
	modes   map[string]Mode
	current Mode
}

// NewManager creates an empty mode manager.
func NewManager() *Manager {
	return &Manager{modes: make(map[string]Mode)}
}

// Register adds a mode, replacing any mode with the same name.
func (m *Manager) Register(mode Mode) {
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil if not registered.
func (m *Manager) Get(name string) Mode {
	return m.modes[name]
}

// Current returns the active mode, or nil before SetInitialMode.
func (m *Manager) Current() Mode {
	return m.current
}

// CurrentName returns the name of the active mode, or "".
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// IsMode reports whether the active mode has the given name.
func (m *Manager) IsMode(name string) bool {
	return m.current != nil && m.current.Name() == name
}

// Switch leaves the current mode and enters the named one.
func (m *Manager) Switch(name string) error {
	next, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	if m.current == next {
		return nil
	}
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	next.Enter()
	return nil
}

// SetInitialMode sets the starting mode. It calls Enter but no Exit,
// and should be called once during initialization.
func (m *Manager) SetInitialMode(name string) error {
	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	m.current = mode
	mode.Enter()
	return nil
}
