package player

import (
	"context"
	"sync"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/clock"
)

// InMemoryRepository implements Repository with a map of encoded snapshots
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return NewInMemoryWithClock(clock.New())
}

// NewInMemoryWithClock creates an in-memory repository stamping saves from c
func NewInMemoryWithClock(c clock.Clock) *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
		clock: c,
	}
}

// Save stores an encoded copy so later changes to the player are not seen
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	p := input.Player
	p.SavedAt = r.clock.Now()

	data, err := encode(p)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[p.ID] = data

	return &SaveOutput{SavedAt: p.SavedAt}, nil
}

func (r *InMemoryRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}

	p, err := decode(input.ID, data)
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Player: p}, nil
}

func (r *InMemoryRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &ListOutput{Summaries: make([]Summary, 0, len(r.store))}
	for id, data := range r.store {
		p, err := decode(id, data)
		if err != nil {
			out.Corrupt = append(out.Corrupt, id)
			continue
		}
		out.Summaries = append(out.Summaries, summarize(p))
	}

	sortSummaries(out)
	return out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// Close is a no-op
func (r *InMemoryRepository) Close() error { return nil }

var _ Repository = (*InMemoryRepository)(nil)
