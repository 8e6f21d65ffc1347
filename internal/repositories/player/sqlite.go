package player

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/clock"
)

const (
	sqliteTimeFormat = time.RFC3339Nano

	createPlayersTable = `CREATE TABLE IF NOT EXISTS players (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	data BLOB NOT NULL,
	saved_at TEXT NOT NULL
)`

	upsertPlayer = `INSERT INTO players (id, name, data, saved_at) VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET name = excluded.name, data = excluded.data, saved_at = excluded.saved_at`

	selectPlayer  = `SELECT data FROM players WHERE id = ?`
	selectPlayers = `SELECT id, data FROM players ORDER BY id`
	deletePlayer  = `DELETE FROM players WHERE id = ?`
)

// SQLiteConfig configures the SQLite repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// SQLiteRepository stores snapshots in a single players table
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite opens the database at cfg.Path and creates the table if needed
func NewSQLite(cfg SQLiteConfig) (*SQLiteRepository, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db %s", cfg.Path)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to ping sqlite db %s", cfg.Path)
	}
	if _, err := db.Exec(createPlayersTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create players table")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	p := input.Player
	p.SavedAt = r.clock.Now()

	data, err := encode(p)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, upsertPlayer, p.ID, p.Name, data, p.SavedAt.Format(sqliteTimeFormat)); err != nil {
		return nil, errors.Wrapf(err, "failed to save player %s", p.ID)
	}

	slog.DebugContext(ctx, "player saved", "player_id", p.ID, "backend", "sqlite")

	return &SaveOutput{SavedAt: p.SavedAt}, nil
}

func (r *SQLiteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	var data []byte
	err := r.db.QueryRowContext(ctx, selectPlayer, input.ID).Scan(&data)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player %s", input.ID)
	}

	p, err := decode(input.ID, data)
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Player: p}, nil
}

func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, selectPlayers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list players")
	}
	defer func() { _ = rows.Close() }()

	out := &ListOutput{Summaries: []Summary{}}
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, errors.Wrap(err, "failed to scan player row")
		}

		p, err := decode(id, data)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable save", "player_id", id, "error", err)
			out.Corrupt = append(out.Corrupt, id)
			continue
		}
		out.Summaries = append(out.Summaries, summarize(p))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate players")
	}

	sortSummaries(out)
	return out, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, deletePlayer, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete player %s", input.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete player %s", input.ID)
	}
	if n == 0 {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}

	slog.InfoContext(ctx, "player deleted", "player_id", input.ID, "backend", "sqlite")

	return &DeleteOutput{}, nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

var _ Repository = (*SQLiteRepository)(nil)
