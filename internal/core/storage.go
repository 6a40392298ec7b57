package core

import (
	"context"
	"fmt"

	"sanctuary/internal/config"
	"sanctuary/internal/infra/persistence/memory"
	"sanctuary/internal/infra/persistence/sqlite"
	"sanctuary/pkg/domain"
)

func newMemoryRoster() domain.Roster {
	return memory.NewStore()
}

// OpenRoster selects a roster backend from the configured driver. Both
// backends are in-memory; nothing survives the process.
func OpenRoster(ctx context.Context, driver config.RosterDriver) (domain.Roster, error) {
	switch driver {
	case "", config.RosterMemory:
		return newMemoryRoster(), nil
	case config.RosterSQLite:
		store, err := sqlite.NewStore(ctx)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown roster driver %s", driver)
	}
}
