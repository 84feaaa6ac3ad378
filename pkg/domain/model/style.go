package model

import (
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
)

// Style holds the visual attributes of a single word cloud point
type Style struct {
	Color    string `json:"color"`
	FontSize int    `json:"fontSize"`
}

// Palette maps catalog severity and likelihood levels to visual attributes.
// A palette is built once at startup and is immutable afterwards.
type Palette struct {
	colors       map[types.Severity]string
	sizes        map[types.Likelihood]int
	defaultColor string
	defaultSize  int
}

// NewPalette builds a palette from explicit level mappings. Severity levels
// not present in colors fall back to the mapping of SeverityNone, likelihood
// levels not present in sizes fall back to the mapping of LikelihoodLow.
func NewPalette(colors map[types.Severity]string, sizes map[types.Likelihood]int) *Palette {
	c := make(map[types.Severity]string, len(colors))
	for k, v := range colors {
		c[k] = v
	}
	s := make(map[types.Likelihood]int, len(sizes))
	for k, v := range sizes {
		s[k] = v
	}
	return &Palette{
		colors:       c,
		sizes:        s,
		defaultColor: c[types.SeverityNone],
		defaultSize:  s[types.LikelihoodLow],
	}
}

// DefaultPalette returns the built-in palette
func DefaultPalette() *Palette {
	return NewPalette(
		map[types.Severity]string{
			types.SeverityVeryHigh: "red",
			types.SeverityHigh:     "maroon",
			types.SeverityMedium:   "indigo",
			types.SeverityLow:      "turquoise",
			types.SeverityVeryLow:  "blue",
			types.SeverityNone:     "lightblue",
		},
		map[types.Likelihood]int{
			types.LikelihoodHigh:   35,
			types.LikelihoodMedium: 27,
			types.LikelihoodLow:    18,
		},
	)
}

// ColorOf maps a severity level to its color token. It is total: levels
// outside the mapped domain resolve to the SeverityNone color.
func (p *Palette) ColorOf(severity types.Severity) string {
	if c, ok := p.colors[severity]; ok {
		return c
	}
	return p.defaultColor
}

// SizeOf maps a likelihood level to its font size. It is total: levels
// outside the mapped domain resolve to the LikelihoodLow size.
func (p *Palette) SizeOf(likelihood types.Likelihood) int {
	if s, ok := p.sizes[likelihood]; ok {
		return s
	}
	return p.defaultSize
}

// StyleOf derives the visual attributes of a single catalog row
func (p *Palette) StyleOf(pattern *AttackPattern) Style {
	return Style{
		Color:    p.ColorOf(pattern.Severity),
		FontSize: p.SizeOf(pattern.Likelihood),
	}
}

// Legend is the palette serialized for the frontend legend block
type Legend struct {
	Severity   []LegendColor `json:"severity"`
	Likelihood []LegendSize  `json:"likelihood"`
}

// LegendColor is one severity entry of the legend
type LegendColor struct {
	Level string `json:"level"`
	Color string `json:"color"`
}

// LegendSize is one likelihood entry of the legend
type LegendSize struct {
	Level string `json:"level"`
	Size  int    `json:"size"`
}

// Legend returns the palette as legend entries in display order
func (p *Palette) Legend() *Legend {
	legend := &Legend{}
	for _, sv := range types.AllSeverities() {
		legend.Severity = append(legend.Severity, LegendColor{
			Level: sv.String(),
			Color: p.ColorOf(sv),
		})
	}
	for _, lh := range types.AllLikelihoods() {
		legend.Likelihood = append(legend.Likelihood, LegendSize{
			Level: lh.String(),
			Size:  p.SizeOf(lh),
		})
	}
	return legend
}
