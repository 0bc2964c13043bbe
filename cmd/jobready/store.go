package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/fs"
	"github.com/Muzammil-Ahm3d/jobready/gcs"
	"github.com/Muzammil-Ahm3d/jobready/sqlite"
)

// Defaults for store flags.
const (
	DefaultDataPath  = "data/db.json"
	DefaultGCSObject = gcs.DefaultObject
)

// Backend names.
const (
	BackendAuto   = "auto"
	BackendFS     = "fs"
	BackendGCS    = "gcs"
	BackendSQLite = "sqlite"
)

// ResolveBackend returns the backend to use for the given flags.
func ResolveBackend(g *Globals) string {
	if g.Backend != "" && g.Backend != BackendAuto {
		return g.Backend
	}
	switch {
	case g.GCSBucket != "":
		return BackendGCS
	case g.SQLite != "":
		return BackendSQLite
	default:
		return BackendFS
	}
}

// openStore opens the configured backend. The returned closer is nil when
// the backend holds no resources.
func openStore(ctx context.Context, g *Globals) (jobready.DatasetStore, string, func() error, error) {
	switch backend := ResolveBackend(g); backend {
	case BackendFS:
		return fs.NewDatasetStore(g.Data), backend, nil, nil

	case BackendSQLite:
		if g.SQLite == "" {
			return nil, "", nil, jobready.Errorf(jobready.EINVALID, "--sqlite (JOBREADY_SQLITE) is required for the sqlite store")
		}
		db := sqlite.NewDB(g.SQLite)
		if err := db.Open(); err != nil {
			return nil, "", nil, fmt.Errorf("failed to open database at %q: %w", g.SQLite, err)
		}
		return sqlite.NewDatasetStore(db, sqlite.DefaultDatasetName), backend, db.Close, nil

	case BackendGCS:
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, "", nil, err
		}
		cfg := gcs.Config{Bucket: g.GCSBucket, Object: g.GCSObject}
		// A local dataset seeds the bucket on first use.
		if _, err := os.Stat(g.Data); err == nil {
			cfg.Seed = fs.NewDatasetStore(g.Data)
		}
		store, err := gcs.NewDatasetStore(client, cfg)
		if err != nil {
			client.Close()
			return nil, "", nil, err
		}
		return store, backend, client.Close, nil

	default:
		return nil, "", nil, jobready.Errorf(jobready.EINVALID, "unknown store %q", backend)
	}
}
