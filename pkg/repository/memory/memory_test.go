package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/repository/memory"
)

func testRows(n int) []*model.AttackPattern {
	rows := make([]*model.AttackPattern, n)
	for i := range rows {
		rows[i] = &model.AttackPattern{
			ID:   fmt.Sprintf("%d", i+1),
			Name: fmt.Sprintf("Pattern %d", i+1),
		}
	}
	return rows
}

func TestClient_Row(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(testRows(3))

	gt.Value(t, repo.Len()).Equal(3)

	row, err := repo.Row(ctx, 0)
	gt.NoError(t, err).Required()
	gt.Value(t, row.ID).Equal("1")

	row, err = repo.Row(ctx, 2)
	gt.NoError(t, err).Required()
	gt.Value(t, row.ID).Equal("3")
}

func TestClient_Row_OutOfRange(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(testRows(3))

	_, err := repo.Row(ctx, 3)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, memory.ErrOutOfRange)).True()

	_, err = repo.Row(ctx, -1)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, memory.ErrOutOfRange)).True()
}

func TestClient_Rows_Order(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(testRows(5))

	rows := repo.Rows(ctx)
	gt.Array(t, rows).Length(5)
	for i, row := range rows {
		gt.Value(t, row.ID).Equal(fmt.Sprintf("%d", i+1))
	}
}

func TestClient_CopySemantics(t *testing.T) {
	ctx := context.Background()

	source := testRows(1)
	repo := memory.New(source)

	// Mutating the input after construction must not affect the store
	source[0].Name = "mutated"
	row, err := repo.Row(ctx, 0)
	gt.NoError(t, err).Required()
	gt.Value(t, row.Name).Equal("Pattern 1")

	// Mutating a returned row must not affect later reads
	row.Name = "mutated again"
	again, err := repo.Row(ctx, 0)
	gt.NoError(t, err).Required()
	gt.Value(t, again.Name).Equal("Pattern 1")
}
