// Package instancecsv implements parser.Parser for the CSV instance format:
// one spatial instance per row, header feature,idx,x,y, with a set of
// case-insensitive column aliases.
package instancecsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/yshekhar/cliquecoloc/pkg/errors"
	"github.com/yshekhar/cliquecoloc/pkg/model"
)

// columnAliases maps every accepted header spelling to its canonical
// column, grounded in the two header conventions seen across the reference
// material: the lowercase feature,idx,x,y form and the
// InstanceID/Feature/X/Y form used by original_source/data/data.py's
// from_csv.
var columnAliases = map[string]string{
	"feature":    "feature",
	"idx":        "idx",
	"instanceid": "idx",
	"x":          "x",
	"y":          "y",
}

// Parser parses the CSV instance format.
type Parser struct {
	strict bool
}

// New creates a CSV Parser. strict, when true, fails the whole parse on the
// first malformed row; otherwise the row is skipped and recorded as a
// warning.
func New(strict bool) *Parser {
	return &Parser{strict: strict}
}

func (p *Parser) Name() string              { return "instancecsv" }
func (p *Parser) SupportedFormats() []string { return []string{"csv"} }

// Parse reads CSV rows into InstanceRecords. The header may list columns in
// any order and in any of the aliases in columnAliases. The idx column is
// optional: when the header has no idx column, an auto-incrementing
// per-feature counter supplies it, matching original_source/data/data.py's
// from_csv behavior. When the column is present, a row whose idx cell is
// empty or not an integer is an input error.
func (p *Parser) Parse(ctx context.Context, reader io.Reader) (*model.ParseResult, error) {
	cr := csv.NewReader(reader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, apperrors.NewInputError(0, "empty input")
	}
	if err != nil {
		return nil, apperrors.NewInputError(0, fmt.Sprintf("reading header: %v", err))
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]
		if ok {
			columns[canonical] = i
		}
	}
	if _, ok := columns["feature"]; !ok {
		return nil, apperrors.NewInputError(0, "missing required column: feature")
	}
	if _, ok := columns["x"]; !ok {
		return nil, apperrors.NewInputError(0, "missing required column: x")
	}
	if _, ok := columns["y"]; !ok {
		return nil, apperrors.NewInputError(0, "missing required column: y")
	}
	_, hasIdx := columns["idx"]

	result := &model.ParseResult{}
	autoIdx := make(map[string]int)

	row := 1
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			if p.strict {
				return nil, apperrors.NewInputError(row, err.Error())
			}
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: %v", row, err))
			continue
		}

		inst, warn, err := p.parseRow(record, columns, hasIdx, autoIdx, row)
		if err != nil {
			if p.strict {
				return nil, err
			}
			result.Warnings = append(result.Warnings, err.Error())
			continue
		}
		if warn != "" {
			result.Warnings = append(result.Warnings, warn)
		}
		result.Instances = append(result.Instances, inst)
	}

	return result, nil
}

func (p *Parser) parseRow(record []string, columns map[string]int, hasIdx bool, autoIdx map[string]int, row int) (model.InstanceRecord, string, error) {
	feature, err := field(record, columns, "feature", row)
	if err != nil {
		return model.InstanceRecord{}, "", err
	}
	feature = strings.TrimSpace(feature)
	if feature == "" {
		return model.InstanceRecord{}, "", apperrors.NewInputError(row, "feature must not be empty")
	}

	xStr, err := field(record, columns, "x", row)
	if err != nil {
		return model.InstanceRecord{}, "", err
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xStr), 64)
	if err != nil {
		return model.InstanceRecord{}, "", apperrors.NewInputError(row, fmt.Sprintf("x is not numeric: %q", xStr))
	}

	yStr, err := field(record, columns, "y", row)
	if err != nil {
		return model.InstanceRecord{}, "", err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(yStr), 64)
	if err != nil {
		return model.InstanceRecord{}, "", apperrors.NewInputError(row, fmt.Sprintf("y is not numeric: %q", yStr))
	}

	var idx int
	var warn string
	if hasIdx {
		idxStr, err := field(record, columns, "idx", row)
		if err != nil {
			return model.InstanceRecord{}, "", err
		}
		idx, err = strconv.Atoi(strings.TrimSpace(idxStr))
		if err != nil {
			return model.InstanceRecord{}, "", apperrors.NewInputError(row, fmt.Sprintf("idx is not an integer: %q", idxStr))
		}
	} else {
		autoIdx[feature]++
		idx = autoIdx[feature]
		warn = fmt.Sprintf("row %d: no idx column, assigned %d for feature %q", row, idx, feature)
	}

	return model.InstanceRecord{Feature: feature, Idx: idx, X: x, Y: y}, warn, nil
}

func field(record []string, columns map[string]int, name string, row int) (string, error) {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return "", apperrors.NewInputError(row, fmt.Sprintf("missing value for column %q", name))
	}
	return record[i], nil
}
