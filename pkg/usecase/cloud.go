package usecase

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/interfaces"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/utils/logging"
)

// CloudUseCase generates word cloud figures. Point styles are derived from
// the palette once at construction and reused for every layout.
type CloudUseCase struct {
	catalog interfaces.Catalog
	styles  []model.Style

	randMu sync.Mutex
	rand   *rand.Rand
}

func NewCloudUseCase(catalog interfaces.Catalog, palette *model.Palette, r *rand.Rand) *CloudUseCase {
	rows := catalog.Rows(context.Background())
	styles := make([]model.Style, len(rows))
	for i, row := range rows {
		styles[i] = palette.StyleOf(row)
	}

	return &CloudUseCase{
		catalog: catalog,
		styles:  styles,
		rand:    r,
	}
}

// Generate builds a figure with the requested number of points. The first
// size rows of the catalog are taken in table order; only their placement
// is random. Each axis is sampled without replacement from the coordinate
// domain, so x values are pairwise distinct and y values are pairwise
// distinct. A figure is a pure function of the size, the catalog and the
// random source; nothing is kept between calls.
func (uc *CloudUseCase) Generate(ctx context.Context, size types.CloudSize) (*model.Figure, error) {
	if err := size.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid cloud size")
	}

	n := size.Int()
	if uc.catalog.Len() < n {
		return nil, goerr.New("catalog has fewer rows than requested",
			goerr.V("rows", uc.catalog.Len()), goerr.V("requested", n))
	}

	xs, ys := uc.samplePositions(n)

	points := make([]model.Point, n)
	for i := 0; i < n; i++ {
		row, err := uc.catalog.Row(ctx, i)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to look up catalog row")
		}
		points[i] = model.Point{
			X:         xs[i],
			Y:         ys[i],
			Label:     row.ID,
			HoverText: row.Name,
			Style:     uc.styles[i],
		}
	}

	figure := &model.Figure{
		ID:     uuid.NewString(),
		Width:  model.FigureWidth,
		Height: model.FigureHeight,
		Domain: model.CoordinateDomain,
		Points: points,
	}

	logging.From(ctx).Debug("Generated word cloud figure", "figure_id", figure.ID, "points", n)
	return figure, nil
}

// samplePositions draws n distinct x values and, independently, n distinct
// y values from [0, CoordinateDomain). The two axes are sampled separately,
// so a full (x,y) pair can still coincide with another pair; that is a
// cosmetic imperfection, not a correctness issue.
func (uc *CloudUseCase) samplePositions(n int) (xs, ys []int) {
	uc.randMu.Lock()
	defer uc.randMu.Unlock()

	xs = uc.rand.Perm(model.CoordinateDomain)[:n]
	ys = uc.rand.Perm(model.CoordinateDomain)[:n]
	return xs, ys
}
