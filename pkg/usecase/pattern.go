package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/interfaces"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
)

// User-facing messages shown when no point is selected or when an optional
// field has no data for the selected row.
const (
	MsgSelectPrompt  = "Click on a CAPEC ID to see a description of the attack pattern"
	MsgDetailPrompt  = "If a CAPEC ID is clicked, information will be displayed here."
	MsgNoWeaknesses  = "No weakness data available"
	MsgNoInstances   = "No example instance data available"
	MsgNoMitigations = "No mitigation available"
)

const (
	capecLinkFormat = "https://capec.mitre.org/data/definitions/%s"
	cweLinkFormat   = "https://cwe.mitre.org/data/definitions/%s"

	// fieldDelimiter separates entries inside the dictionary's optional
	// text columns
	fieldDelimiter = "::"

	descriptionWrapWidth = 100
)

// PatternUseCase resolves point selections into description and detail
// views. Both operations are keyed off a 0-based positional index supplied
// by a click event; a nil index means no point has been selected yet.
type PatternUseCase struct {
	catalog interfaces.Catalog
}

func NewPatternUseCase(catalog interfaces.Catalog) *PatternUseCase {
	return &PatternUseCase{
		catalog: catalog,
	}
}

// Describe returns the name, wrapped description and catalog link of the
// row at the given index, or the selection prompt when index is nil.
func (uc *PatternUseCase) Describe(ctx context.Context, index *int) (*model.PatternDescription, error) {
	if index == nil {
		return &model.PatternDescription{Message: MsgSelectPrompt}, nil
	}

	row, err := uc.catalog.Row(ctx, *index)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve selected pattern")
	}

	return &model.PatternDescription{
		Name:        row.Name,
		Description: wordwrap.String(row.Description, descriptionWrapWidth),
		Link:        fmt.Sprintf(capecLinkFormat, row.ID),
	}, nil
}

// Detail returns the requested category text of the row at the given index,
// or the detail prompt when index is nil. Optional fields without data
// resolve to a fixed informational message, never an error.
func (uc *PatternUseCase) Detail(ctx context.Context, index *int, category types.DetailCategory) (*model.PatternDetail, error) {
	if err := category.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid detail category")
	}

	if index == nil {
		return &model.PatternDetail{Category: category, Message: MsgDetailPrompt}, nil
	}

	row, err := uc.catalog.Row(ctx, *index)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve selected pattern")
	}

	switch category {
	case types.CategoryWeaknesses:
		if !row.HasRelatedWeaknesses() {
			return &model.PatternDetail{Category: category, Message: MsgNoWeaknesses}, nil
		}
		return &model.PatternDetail{
			Category: category,
			Links:    weaknessLinks(row.RelatedWeaknesses),
		}, nil

	case types.CategoryInstances:
		if !row.HasExampleInstances() {
			return &model.PatternDetail{Category: category, Message: MsgNoInstances}, nil
		}
		return &model.PatternDetail{
			Category: category,
			Text:     strings.ReplaceAll(row.ExampleInstances, fieldDelimiter, "\n"),
		}, nil

	case types.CategoryMitigations:
		if !row.HasMitigations() {
			return &model.PatternDetail{Category: category, Message: MsgNoMitigations}, nil
		}
		return &model.PatternDetail{
			Category: category,
			Text:     strings.ReplaceAll(row.Mitigations, fieldDelimiter, "\n"),
		}, nil

	default:
		return nil, goerr.New("unhandled detail category", goerr.V("category", category))
	}
}

// weaknessLinks turns the delimited Related Weaknesses field into one CWE
// link per identifier. The dictionary frames the field with leading and
// trailing delimiters ("::123::456::"), so segments that are empty after
// trimming are discarded rather than assuming a fixed framing shape.
func weaknessLinks(raw string) []string {
	var links []string
	for _, seg := range strings.Split(raw, fieldDelimiter) {
		id := strings.TrimSpace(seg)
		if id == "" {
			continue
		}
		links = append(links, fmt.Sprintf(cweLinkFormat, id))
	}
	return links
}
