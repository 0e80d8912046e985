package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-grocery-sync/internal/crypto"
)

//go:generate mockgen -source=persister.go -destination=../mock/session_persister_mock.go -package=mock

// ErrNoSession is returned by [Persister.Load] when nothing was stored yet.
var ErrNoSession = errors.New("no stored session")

// Persister keeps a [State] across process restarts.
type Persister interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
	Clear(ctx context.Context) error
}

// FileStore keeps the session in a single file sealed with a passphrase.
type FileStore struct {
	path   string
	key    string
	sealer crypto.Sealer
}

func NewFileStore(path, key string, sealer crypto.Sealer) *FileStore {
	return &FileStore{path: path, key: key, sealer: sealer}
}

func (f *FileStore) Load(_ context.Context) (State, error) {
	blob, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return State{}, ErrNoSession
	}
	if err != nil {
		return State{}, fmt.Errorf("read session file: %w", err)
	}

	plain, err := f.sealer.Open(blob, f.key)
	if err != nil {
		return State{}, fmt.Errorf("open session file: %w", err)
	}

	var state State
	if err = json.Unmarshal(plain, &state); err != nil {
		return State{}, fmt.Errorf("decode session: %w", err)
	}

	return state, nil
}

// Save writes the sealed state to a temporary file and renames it over the
// previous one.
func (f *FileStore) Save(_ context.Context, state State) error {
	plain, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	blob, err := f.sealer.Seal(plain, f.key)
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	return nil
}

func (f *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// MemoryStore keeps the session in memory only.
type MemoryStore struct {
	mu    sync.Mutex
	state *State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil {
		return State{}, ErrNoSession
	}
	return *m.state, nil
}

func (m *MemoryStore) Save(_ context.Context, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = &state
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = nil
	return nil
}
