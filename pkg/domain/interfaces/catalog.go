package interfaces

import (
	"context"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
)

// Catalog provides read access to the loaded attack pattern table. The
// table is loaded once at startup and never mutated afterwards, so
// implementations do not need locking.
type Catalog interface {
	// Len returns the number of rows in the table
	Len() int

	// Row returns the row at the given positional index. An index outside
	// the table bounds is a contract violation and returns an error.
	Row(ctx context.Context, index int) (*model.AttackPattern, error)

	// Rows returns all rows in original table order
	Rows(ctx context.Context) []*model.AttackPattern
}
