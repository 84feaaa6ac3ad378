package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/interfaces"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/repository/memory"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/service/catalog"
)

// Catalog is the configuration of the attack pattern data source
type Catalog struct {
	path string
}

func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to the CAPEC dictionary CSV file",
			Value:       "Comprehensive CAPEC Dictionary.csv",
			Sources:     cli.EnvVars("TRAPCLOUD_CATALOG"),
			Destination: &x.path,
		},
	}
}

// Path returns the configured catalog file path
func (x *Catalog) Path() string {
	return x.path
}

// Configure loads the CSV catalog into an in-memory store. The store is
// read-only for the rest of the process lifetime.
func (x *Catalog) Configure(ctx context.Context) (interfaces.Catalog, error) {
	rows, err := catalog.LoadFile(ctx, x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load catalog")
	}
	return memory.New(rows), nil
}
