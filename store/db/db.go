// Package db handles the database connection and migrations.
package db

import (
	"github.com/pkg/errors"

	"github.com/shail31-tech/Clinical-Notes-Summary/internal/profile"
	"github.com/shail31-tech/Clinical-Notes-Summary/store"
	"github.com/shail31-tech/Clinical-Notes-Summary/store/db/memory"
	"github.com/shail31-tech/Clinical-Notes-Summary/store/db/postgres"
	"github.com/shail31-tech/Clinical-Notes-Summary/store/db/sqlite"
)

// NewDBDriver creates a new DB driver based on the profile.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	switch profile.Driver {
	case "postgres":
		return postgres.NewDB(profile)
	case "sqlite":
		return sqlite.NewDB(profile)
	case "memory":
		return memory.NewDB(profile)
	default:
		return nil, errors.Errorf("unknown db driver: %s", profile.Driver)
	}
}
