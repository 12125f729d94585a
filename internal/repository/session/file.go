package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/roadwatch/drowse-monitor/internal/config"
	domain "github.com/roadwatch/drowse-monitor/internal/domain/drowsiness"
)

// Repository defines persistence operations for the monitoring session.
type Repository interface {
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// FileRepository persists the session record to a JSON file on disk.
type FileRepository struct {
	// path is the filesystem location of the JSON session file.
	path string
	// mu protects concurrent access to the session file.
	mu sync.Mutex
}

// ErrNotFound is returned when the session file does not exist yet.
var ErrNotFound = errors.New("session not found")

// errSessionIsNotSet is returned when a nil session is saved.
var errSessionIsNotSet = errors.New("session is not set")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the session from disk.
func (r *FileRepository) Load(_ context.Context) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read session file: %w", err)
	}

	var session domain.Session
	if err = json.Unmarshal(contents, &session); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	return &session, nil
}

// Save writes the session to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, session *domain.Session) error {
	if session == nil {
		return errSessionIsNotSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
