package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/roadwatch/drowse-monitor/internal/domain/drowsiness"
)

// TestFileRepository_LoadMissing asserts a missing file maps to ErrNotFound.
func TestFileRepository_LoadMissing(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "session.json"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileRepository_SaveLoadRoundtrip verifies the session survives a disk roundtrip.
func TestFileRepository_SaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "session.json"))

	started := time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)
	original := domain.NewSession(started)
	original.RecordAlarm(started.Add(42 * time.Second))
	original.RecordAlarm(started.Add(90 * time.Second))

	require.NoError(t, repo.Save(context.Background(), original))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, original.StartedAt, loaded.StartedAt)
	require.Equal(t, 2, loaded.AlarmCount)
	require.Equal(t, original.LastAlarmAt, loaded.LastAlarmAt)
	require.True(t, loaded.Active)
}

// TestFileRepository_AlarmFreeSession verifies a session without alarms
// keeps its zero last-alarm timestamp across the disk roundtrip.
func TestFileRepository_AlarmFreeSession(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileRepository(path)

	fresh := domain.NewSession(time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC))
	require.NoError(t, repo.Save(context.Background(), fresh))

	// The timestamp is present in the file, zero-valued.
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), `"last_alarm_at"`)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Zero(t, loaded.AlarmCount)
	require.True(t, loaded.LastAlarmAt.IsZero())
}

// TestFileRepository_SaveNil rejects a nil session.
func TestFileRepository_SaveNil(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "session.json"))
	require.Error(t, repo.Save(context.Background(), nil))
}

// TestFileRepository_LoadCorrupt asserts malformed JSON surfaces as an error.
func TestFileRepository_LoadCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileRepository(path)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
