package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
)

// Style is the word cloud palette configuration. Without a config file the
// built-in palette is used; a TOML file can override individual levels.
type Style struct {
	path string
}

// SeverityColor overrides the color token of one severity level
type SeverityColor struct {
	Level string `toml:"level"`
	Color string `toml:"color"`
}

// Validate checks if the SeverityColor is valid
func (s *SeverityColor) Validate() error {
	if !types.Severity(s.Level).IsValid() {
		return goerr.New("unknown severity level", goerr.V("level", s.Level))
	}
	if s.Color == "" {
		return goerr.New("severity color is required", goerr.V("level", s.Level))
	}
	return nil
}

// LikelihoodSize overrides the font size of one likelihood level
type LikelihoodSize struct {
	Level string `toml:"level"`
	Size  int    `toml:"size"`
}

// Validate checks if the LikelihoodSize is valid
func (l *LikelihoodSize) Validate() error {
	if !types.Likelihood(l.Level).IsValid() {
		return goerr.New("unknown likelihood level", goerr.V("level", l.Level))
	}
	if l.Size < 1 {
		return goerr.New("likelihood size must be positive", goerr.V("level", l.Level), goerr.V("size", l.Size))
	}
	return nil
}

// StyleConfig is the TOML document shape of a palette override file
type StyleConfig struct {
	Severity   []SeverityColor  `toml:"severity"`
	Likelihood []LikelihoodSize `toml:"likelihood"`
}

// Validate checks if the StyleConfig is valid
func (c *StyleConfig) Validate() error {
	severityLevels := make(map[string]bool)
	for i := range c.Severity {
		if err := c.Severity[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid severity color")
		}
		if severityLevels[c.Severity[i].Level] {
			return goerr.New("duplicate severity level", goerr.V("level", c.Severity[i].Level))
		}
		severityLevels[c.Severity[i].Level] = true
	}

	likelihoodLevels := make(map[string]bool)
	for i := range c.Likelihood {
		if err := c.Likelihood[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid likelihood size")
		}
		if likelihoodLevels[c.Likelihood[i].Level] {
			return goerr.New("duplicate likelihood level", goerr.V("level", c.Likelihood[i].Level))
		}
		likelihoodLevels[c.Likelihood[i].Level] = true
	}

	return nil
}

func (x *Style) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "style-config",
			Usage:       "Path to a TOML file overriding the word cloud palette",
			Sources:     cli.EnvVars("TRAPCLOUD_STYLE_CONFIG"),
			Destination: &x.path,
		},
	}
}

// Configure builds the palette, merging file overrides over the built-in
// defaults when a config file is given.
func (x *Style) Configure() (*model.Palette, error) {
	if x.path == "" {
		return model.DefaultPalette(), nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read style config", goerr.V("path", x.path))
	}

	var cfg StyleConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse style config", goerr.V("path", x.path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "style config validation failed", goerr.V("path", x.path))
	}

	return cfg.ToPalette(), nil
}

// ToPalette merges the overrides over the built-in palette
func (c *StyleConfig) ToPalette() *model.Palette {
	base := model.DefaultPalette()

	colors := make(map[types.Severity]string)
	for _, sv := range types.AllSeverities() {
		colors[sv] = base.ColorOf(sv)
	}
	for _, o := range c.Severity {
		colors[types.Severity(o.Level)] = o.Color
	}

	sizes := make(map[types.Likelihood]int)
	for _, lh := range types.AllLikelihoods() {
		sizes[lh] = base.SizeOf(lh)
	}
	for _, o := range c.Likelihood {
		sizes[types.Likelihood(o.Level)] = o.Size
	}

	return model.NewPalette(colors, sizes)
}
