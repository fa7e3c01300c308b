package store

import (
	"fmt"
	"path/filepath"
)

// Load creates the Persistence named by the config backend. A nil cfg is
// loaded from disk and environment.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case BackendDiskv:
		return NewDiskv(cfg.BasePath())
	case BackendSQLite:
		return NewSQLite(filepath.Join(cfg.BasePath(), "recall.sqlite"))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}
