package player_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
	"github.com/hunlreev/console-quest-rpg/internal/testutils"
)

func TestFileRepositoryIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := player.NewFile(player.FileConfig{Dir: dir})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = repo.Save(ctx, player.SaveInput{Player: testutils.CreateTestPlayer()})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backup.json"), 0o750))

	list, err := repo.List(ctx, player.ListInput{})
	require.NoError(t, err)
	require.Len(t, list.Summaries, 1)
	require.Empty(t, list.Corrupt)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".save-", "temp file left behind")
	}
}

func TestNewFileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "saves")
	_, err := player.NewFile(player.FileConfig{Dir: dir})
	require.NoError(t, err)
	require.DirExists(t, dir)

	_, err = player.NewFile(player.FileConfig{})
	require.True(t, errors.IsInvalidArgument(err))
}
