package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/hunlreev/console-quest-rpg/internal/catalog"
	"github.com/hunlreev/console-quest-rpg/internal/config"
	"github.com/hunlreev/console-quest-rpg/internal/dice"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/orchestrators/encounter"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/clock"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/idgen"
	"github.com/hunlreev/console-quest-rpg/internal/redis"
	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
	"github.com/hunlreev/console-quest-rpg/internal/services/combat"
	"github.com/hunlreev/console-quest-rpg/internal/services/creation"
	"github.com/hunlreev/console-quest-rpg/internal/services/enemy"
	"github.com/hunlreev/console-quest-rpg/internal/services/explore"
	"github.com/hunlreev/console-quest-rpg/internal/services/progression"
	"github.com/hunlreev/console-quest-rpg/internal/services/shop"
)

// app holds everything a command needs
type app struct {
	cfg     *config.Config
	repo    player.Repository
	catalog *catalog.Catalog
	random  dice.Source
	bus     events.EventBus

	creation    creation.Service
	explore     explore.Service
	shop        shop.Service
	progression progression.Service
	encounters  encounter.Service

	prompt *prompter
	out    io.Writer
}

// newApp wires the services for cfg. The repository is opened after the
// services so a bad service config never leaves a connection behind.
func newApp(cfg *config.Config, in io.Reader, out io.Writer) (*app, error) {
	a := &app{
		cfg:     cfg,
		catalog: loadCatalog(cfg),
		random:  newRandom(cfg),
		bus:     events.NewBus(),
		prompt:  newPrompter(in, out),
		out:     out,
	}
	clk := clock.New()

	var err error
	a.creation, err = creation.NewService(&creation.Config{
		Catalog:     a.catalog,
		IDGenerator: idgen.NewUUID(idgen.PrefixPlayer),
		Clock:       clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create creation service: %w", err)
	}

	a.explore, err = explore.NewService(&explore.Config{
		Random:        a.random,
		Catalog:       a.catalog,
		EncounterRate: cfg.EncounterRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create explore service: %w", err)
	}

	a.shop, err = shop.NewService(&shop.Config{
		Random:    a.random,
		Catalog:   a.catalog,
		StockSize: cfg.ShopStockSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create shop service: %w", err)
	}

	a.progression, err = progression.NewService(&progression.Config{LevelCap: cfg.LevelCap})
	if err != nil {
		return nil, fmt.Errorf("failed to create progression service: %w", err)
	}

	enemies, err := enemy.NewService(&enemy.Config{
		Random:        a.random,
		Catalog:       a.catalog,
		IDGenerator:   idgen.NewUUID(idgen.PrefixEnemy),
		ScalingFactor: cfg.EnemyScalingFactor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create enemy service: %w", err)
	}

	combatSvc, err := combat.NewService(&combat.Config{Random: a.random})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat service: %w", err)
	}

	a.repo, err = openRepository(cfg)
	if err != nil {
		return nil, err
	}

	a.encounters, err = encounter.NewOrchestrator(&encounter.Config{
		Enemies:        enemies,
		Combat:         combatSvc,
		Progression:    a.progression,
		Repository:     a.repo,
		Random:         a.random,
		IDGenerator:    idgen.NewUUID(idgen.PrefixEncounter),
		EventBus:       a.bus,
		LevelThreshold: cfg.EnemyLevelThreshold,
	})
	if err != nil {
		_ = a.repo.Close()
		return nil, fmt.Errorf("failed to create encounter orchestrator: %w", err)
	}

	a.bus.SubscribeFunc(encounter.EventAction, 0, a.renderAction)

	return a, nil
}

// openRepository opens the player store the config names
func openRepository(cfg *config.Config) (player.Repository, error) {
	switch cfg.Backend {
	case config.BackendFile:
		repo, err := player.NewFile(player.FileConfig{Dir: cfg.SaveDir})
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.BackendRedis:
		client, err := redis.NewClientFromURL(cfg.RedisURL)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
		}
		repo, err := player.NewRedis(player.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return repo, nil
	case config.BackendSQLite:
		repo, err := player.NewSQLite(player.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.BackendMemory:
		return player.NewInMemory(), nil
	default:
		return nil, errors.InvalidArgumentf("unknown backend %q", cfg.Backend)
	}
}

// loadCatalog reads the data files from CatalogDir when it is set and the
// embedded tables otherwise. A table missing from CatalogDir loads empty.
func loadCatalog(cfg *config.Config) *catalog.Catalog {
	if cfg.CatalogDir == "" {
		return catalog.Default()
	}
	return catalog.Load(os.DirFS(cfg.CatalogDir))
}

// newRandom uses a seeded source when the config asks for reproducible
// rolls
func newRandom(cfg *config.Config) dice.Source {
	if cfg.Seed != 0 {
		slog.Info("using seeded randomness", "seed", cfg.Seed)
		return dice.NewSeeded(cfg.Seed)
	}
	return dice.NewRollerSource(nil)
}

// loadPlayer reads the character named by --player
func (a *app) loadPlayer(ctx context.Context, id string) (*entities.Player, error) {
	if id == "" {
		return nil, errors.InvalidArgument("--player is required")
	}
	out, err := a.repo.Load(ctx, player.LoadInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Player, nil
}

func (a *app) save(ctx context.Context, p *entities.Player) error {
	if _, err := a.repo.Save(ctx, player.SaveInput{Player: p}); err != nil {
		return errors.Wrapf(err, "failed to save %s", p.ID)
	}
	return nil
}

func (a *app) close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func (a *app) renderAction(_ context.Context, e events.Event) error {
	if msg, ok := e.Context().Get(encounter.ContextMessage); ok {
		fmt.Fprintln(a.out, msg)
	}
	return nil
}
