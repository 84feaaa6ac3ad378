package usecase

import (
	"math/rand/v2"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/interfaces"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
)

type UseCases struct {
	catalog interfaces.Catalog
	palette *model.Palette
	rand    *rand.Rand

	Cloud   *CloudUseCase
	Pattern *PatternUseCase
}

type Option func(*UseCases)

// WithPalette replaces the built-in style palette
func WithPalette(palette *model.Palette) Option {
	return func(uc *UseCases) {
		uc.palette = palette
	}
}

// WithRand replaces the random source used for point placement. Tests use
// this to make layouts deterministic.
func WithRand(r *rand.Rand) Option {
	return func(uc *UseCases) {
		uc.rand = r
	}
}

func New(catalog interfaces.Catalog, opts ...Option) *UseCases {
	uc := &UseCases{
		catalog: catalog,
		palette: model.DefaultPalette(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.rand == nil {
		uc.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	uc.Cloud = NewCloudUseCase(catalog, uc.palette, uc.rand)
	uc.Pattern = NewPatternUseCase(catalog)

	return uc
}

// Palette returns the style palette in effect
func (uc *UseCases) Palette() *model.Palette {
	return uc.palette
}
