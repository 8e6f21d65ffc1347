package player

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.InvalidArgument("player ID is required")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return errors.InvalidArgumentf("player ID %q contains a path separator", id)
	}
	return nil
}

func validateSave(input SaveInput) error {
	if input.Player == nil {
		return errors.InvalidArgument("player is required")
	}
	return validateID(input.Player.ID)
}

func encode(p *entities.Player) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player %s", p.ID)
	}
	return data, nil
}

// decode rejects snapshots that parse but could not have been written by
// Save. Maxima are taken as stored since a defeat lowers them below what
// the attributes give.
func decode(id string, data []byte) (*entities.Player, error) {
	var p entities.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.DataLossf("player %s snapshot is unreadable: %v", id, err)
	}
	if p.ID == "" || p.Level < 1 {
		return nil, errors.DataLossf("player %s snapshot is incomplete", id)
	}
	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	return &p, nil
}

func summarize(p *entities.Player) Summary {
	return Summary{ID: p.ID, Name: p.Name, Level: p.Level, SavedAt: p.SavedAt}
}

func sortSummaries(out *ListOutput) {
	sort.Slice(out.Summaries, func(i, j int) bool {
		return out.Summaries[i].ID < out.Summaries[j].ID
	})
	sort.Strings(out.Corrupt)
}
