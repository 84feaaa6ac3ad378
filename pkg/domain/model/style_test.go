package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
)

func TestDefaultPalette(t *testing.T) {
	palette := model.DefaultPalette()

	gt.Value(t, palette.ColorOf(types.SeverityVeryHigh)).Equal("red")
	gt.Value(t, palette.ColorOf(types.SeverityHigh)).Equal("maroon")
	gt.Value(t, palette.ColorOf(types.SeverityMedium)).Equal("indigo")
	gt.Value(t, palette.ColorOf(types.SeverityLow)).Equal("turquoise")
	gt.Value(t, palette.ColorOf(types.SeverityVeryLow)).Equal("blue")
	gt.Value(t, palette.ColorOf(types.SeverityNone)).Equal("lightblue")

	gt.Value(t, palette.SizeOf(types.LikelihoodHigh)).Equal(35)
	gt.Value(t, palette.SizeOf(types.LikelihoodMedium)).Equal(27)
	gt.Value(t, palette.SizeOf(types.LikelihoodLow)).Equal(18)
}

func TestPalette_Defaults(t *testing.T) {
	palette := model.DefaultPalette()

	// Levels outside the mapped domain resolve to the documented defaults
	gt.Value(t, palette.ColorOf(types.SeverityUnknown)).Equal("lightblue")
	gt.Value(t, palette.ColorOf(types.Severity("Catastrophic"))).Equal("lightblue")
	gt.Value(t, palette.SizeOf(types.LikelihoodUnknown)).Equal(18)
	gt.Value(t, palette.SizeOf(types.Likelihood("Certain"))).Equal(18)
}

func TestPalette_StyleOf_Total(t *testing.T) {
	palette := model.DefaultPalette()

	severities := append(types.AllSeverities(), types.SeverityUnknown, types.Severity("weird"))
	likelihoods := append(types.AllLikelihoods(), types.LikelihoodUnknown, types.Likelihood("weird"))

	for _, sv := range severities {
		for _, lh := range likelihoods {
			style := palette.StyleOf(&model.AttackPattern{Severity: sv, Likelihood: lh})
			if style.Color == "" {
				t.Errorf("no color for severity %q", sv)
			}
			if style.FontSize <= 0 {
				t.Errorf("no size for likelihood %q", lh)
			}
		}
	}
}

func TestPalette_StyleOf_Deterministic(t *testing.T) {
	palette := model.DefaultPalette()
	row := &model.AttackPattern{Severity: types.SeverityHigh, Likelihood: types.LikelihoodMedium}

	gt.Value(t, palette.StyleOf(row)).Equal(palette.StyleOf(row))
	gt.Value(t, palette.StyleOf(row)).Equal(model.Style{Color: "maroon", FontSize: 27})
}

func TestPalette_Legend(t *testing.T) {
	legend := model.DefaultPalette().Legend()

	gt.Array(t, legend.Severity).Length(len(types.AllSeverities()))
	gt.Array(t, legend.Likelihood).Length(len(types.AllLikelihoods()))
	gt.Value(t, legend.Severity[0].Level).Equal("Very High")
	gt.Value(t, legend.Severity[0].Color).Equal("red")
	gt.Value(t, legend.Likelihood[0].Level).Equal("High")
	gt.Value(t, legend.Likelihood[0].Size).Equal(35)
}
