package player

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/clock"
)

const (
	fileExtension = ".json"
	tempPattern   = ".save-*"
	dirPerm       = 0o750
)

// FileConfig configures the file repository
type FileConfig struct {
	// Dir holds one <id>.json per player; it is created if missing
	Dir   string
	Clock clock.Clock
}

// FileRepository stores each player as a JSON file
type FileRepository struct {
	dir   string
	clock clock.Clock
}

// NewFile creates a file repository rooted at cfg.Dir
func NewFile(cfg FileConfig) (*FileRepository, error) {
	if strings.TrimSpace(cfg.Dir) == "" {
		return nil, errors.InvalidArgument("save directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, dirPerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", cfg.Dir)
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &FileRepository{dir: filepath.Clean(cfg.Dir), clock: c}, nil
}

func (r *FileRepository) path(id string) string {
	return filepath.Join(r.dir, id+fileExtension)
}

// Save writes to a temp file in the same directory and renames it over
// the old snapshot
func (r *FileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	p := input.Player
	p.SavedAt = r.clock.Now()

	data, err := encode(p)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(r.dir, tempPattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create temp file for player %s", p.ID)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := stderrors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return nil, errors.Wrapf(err, "failed to write player %s", p.ID)
	}
	if err := os.Rename(tmpName, r.path(p.ID)); err != nil {
		_ = os.Remove(tmpName)
		return nil, errors.Wrapf(err, "failed to replace save for player %s", p.ID)
	}

	slog.DebugContext(ctx, "player saved", "player_id", p.ID, "path", r.path(p.ID))

	return &SaveOutput{SavedAt: p.SavedAt}, nil
}

// Load reads <dir>/<id>.json
func (r *FileRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(input.ID))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read player %s", input.ID)
	}

	p, err := decode(input.ID, data)
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Player: p}, nil
}

// List reads every *.json file in the directory
func (r *FileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read save directory %s", r.dir)
	}

	out := &ListOutput{Summaries: []Summary{}}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExtension) {
			continue
		}
		id := strings.TrimSuffix(name, fileExtension)

		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read player %s", id)
		}

		p, err := decode(id, data)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable save", "player_id", id, "error", err)
			out.Corrupt = append(out.Corrupt, id)
			continue
		}
		out.Summaries = append(out.Summaries, summarize(p))
	}

	sortSummaries(out)
	return out, nil
}

// Delete removes <dir>/<id>.json
func (r *FileRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	err := os.Remove(r.path(input.ID))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete player %s", input.ID)
	}

	slog.InfoContext(ctx, "player deleted", "player_id", input.ID)

	return &DeleteOutput{}, nil
}

// Close is a no-op for files
func (r *FileRepository) Close() error { return nil }

var _ Repository = (*FileRepository)(nil)
