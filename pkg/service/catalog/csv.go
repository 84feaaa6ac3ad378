package catalog

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/utils/logging"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/utils/safe"
)

// Column names required in the source CSV. The loader addresses columns by
// header name, not position, so extra columns in the dictionary are ignored.
const (
	columnID          = "ID"
	columnName        = "Name"
	columnDescription = "Description"
	columnSeverity    = "Typical Severity"
	columnLikelihood  = "Likelihood Of Attack"
	columnWeaknesses  = "Related Weaknesses"
	columnInstances   = "Example Instances"
	columnMitigations = "Mitigations"
)

func requiredColumns() []string {
	return []string{
		columnID,
		columnName,
		columnDescription,
		columnSeverity,
		columnLikelihood,
		columnWeaknesses,
		columnInstances,
		columnMitigations,
	}
}

// LoadFile reads the CAPEC dictionary CSV at path and returns its rows in
// file order. A missing file or a missing required column is a startup
// fatal error.
func LoadFile(ctx context.Context, path string) ([]*model.AttackPattern, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open catalog file", goerr.V("path", path))
	}
	defer safe.Close(ctx, f)

	rows, err := Parse(ctx, f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.V("path", path))
	}

	logging.From(ctx).Info("Loaded attack pattern catalog", "path", path, "rows", len(rows))
	return rows, nil
}

// Parse reads a CAPEC dictionary CSV from r and returns its rows in input
// order. Row order is preserved because the positional index of a row is
// the identity used by UI selections.
func Parse(ctx context.Context, r io.Reader) ([]*model.AttackPattern, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog header")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns() {
		if _, ok := columns[name]; !ok {
			return nil, goerr.New("catalog is missing a required column", goerr.V("column", name))
		}
	}

	field := func(record []string, name string) string {
		return strings.TrimSpace(record[columns[name]])
	}

	var rows []*model.AttackPattern
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read catalog record", goerr.V("row", len(rows)+1))
		}

		rows = append(rows, &model.AttackPattern{
			ID:                field(record, columnID),
			Name:              field(record, columnName),
			Description:       field(record, columnDescription),
			Severity:          types.Severity(field(record, columnSeverity)),
			Likelihood:        types.Likelihood(field(record, columnLikelihood)),
			RelatedWeaknesses: field(record, columnWeaknesses),
			ExampleInstances:  field(record, columnInstances),
			Mitigations:       field(record, columnMitigations),
		})
	}

	if len(rows) == 0 {
		return nil, goerr.New("catalog has no rows")
	}

	return rows, nil
}
