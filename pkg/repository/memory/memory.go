package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
)

// ErrOutOfRange is returned when a row index is outside the table bounds.
// Such an index indicates a contract violation by the caller: the view host
// only emits indices of points it rendered.
var ErrOutOfRange = goerr.New("row index out of range")

// Client is an in-memory catalog store. Rows are copied in at construction
// and never mutated afterwards, so reads need no locking.
type Client struct {
	rows []*model.AttackPattern
}

// New creates an in-memory catalog store from the given rows, preserving
// their order. Row order is the stable identity used by UI selections and
// must match the source table.
func New(rows []*model.AttackPattern) *Client {
	copied := make([]*model.AttackPattern, len(rows))
	for i, row := range rows {
		copied[i] = copyPattern(row)
	}
	return &Client{rows: copied}
}

func copyPattern(p *model.AttackPattern) *model.AttackPattern {
	copied := *p
	return &copied
}

// Len returns the number of rows in the table
func (c *Client) Len() int {
	return len(c.rows)
}

// Row returns the row at the given positional index
func (c *Client) Row(ctx context.Context, index int) (*model.AttackPattern, error) {
	if index < 0 || index >= len(c.rows) {
		return nil, goerr.Wrap(ErrOutOfRange, "no such catalog row",
			goerr.V("index", index), goerr.V("rows", len(c.rows)))
	}
	return copyPattern(c.rows[index]), nil
}

// Rows returns all rows in original table order
func (c *Client) Rows(ctx context.Context) []*model.AttackPattern {
	result := make([]*model.AttackPattern, len(c.rows))
	for i, row := range c.rows {
		result[i] = copyPattern(row)
	}
	return result
}
