package savedata

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

var (
	// ErrWrite wraps any failure of the backing store to persist a record.
	ErrWrite = errors.New("save write failed")
	// ErrNoSave is returned when no record exists under the key.
	ErrNoSave = errors.New("no save")
)

// Store is a keyed blob store. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var _ Store = (*gdata.Manager)(nil)

// OpenStore opens the platform save location for appName. If that fails the
// game still runs, backed by an in-memory store that is lost on exit.
func OpenStore(appName string) Store {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence, saves will not survive a restart: %v", err)
		return NewMemoryStore()
	}
	return m
}

// MemoryStore is a Store held in memory.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
	// FailWrites makes SaveItem return this error when set.
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) LoadItem(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) SaveItem(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	if len(data) == 0 {
		delete(s.items, key)
		return nil
	}
	s.items[key] = append([]byte(nil), data...)
	return nil
}

// Manager saves and loads the farm under a single key.
type Manager struct {
	Store Store
	Key   string
}

// Save writes s. Failures wrap ErrWrite; the caller decides how to report
// them and the next save simply retries.
func (m *Manager) Save(s State) error {
	data, err := Encode(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := m.Store.SaveItem(m.Key, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Raw returns the stored record bytes, or ErrNoSave.
func (m *Manager) Raw() ([]byte, error) {
	data, err := m.Store.LoadItem(m.Key)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", m.Key, err)
	}
	if len(data) == 0 {
		return nil, ErrNoSave
	}
	return data, nil
}

// Import stores a raw record as-is after checking that it decodes. Records
// that need repairs are accepted; the repairs happen on the next Load.
func (m *Manager) Import(raw []byte) (Report, error) {
	_, rep := Decode(raw, DefaultState(0, 0))
	if rep.Unreadable {
		return rep, fmt.Errorf("import %q: record is not a save object", m.Key)
	}
	if err := m.Store.SaveItem(m.Key, raw); err != nil {
		return rep, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return rep, nil
}

// Load reads the saved state, filling anything missing from defaults. It
// returns false with defaults when there is no usable record.
func (m *Manager) Load(defaults State) (State, bool) {
	data, err := m.Raw()
	if err != nil {
		if !errors.Is(err, ErrNoSave) {
			log.Printf("Warning: Could not load save: %v", err)
		}
		return defaults, false
	}

	s, rep := Decode(data, defaults)
	if rep.Unreadable {
		log.Printf("Warning: Save %q is unreadable, starting fresh", m.Key)
		return defaults, false
	}
	if !rep.Clean() {
		log.Printf("Warning: Save %q repaired: defaulted %v, skipped %d plots", m.Key, rep.Defaulted, rep.SkippedPlots)
	}
	return s, true
}

// Reset erases the record. Erasing a missing record is not an error.
func (m *Manager) Reset() error {
	if err := m.Store.SaveItem(m.Key, nil); err != nil {
		return fmt.Errorf("reset %q: %w", m.Key, err)
	}
	return nil
}

// Exists reports whether a record is stored.
func (m *Manager) Exists() bool {
	data, err := m.Store.LoadItem(m.Key)
	return err == nil && len(data) > 0
}
