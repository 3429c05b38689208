// Package csv loads (s,S) problem instances from CSV files so a batch of
// named instances can be solved in one run.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/supplyos/ssopt/pkg/domain/entities"
)

// Loader handles loading problem instances from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// Expected instance file layout. demand_mean applies to poisson rows,
// demand_pmf (semicolon-separated masses for demand 0..hi) to explicit rows.
var expectedHeader = []string{
	"instance_id", "holding_cost", "stockout_cost", "fixed_cost",
	"demand_kind", "demand_mean", "demand_pmf",
}

// LoadInstances loads problem instances from a CSV file
func (l *Loader) LoadInstances(filename string) ([]*entities.ProblemInstance, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open instances file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read instances CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("instances CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("instances CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var instances []*entities.ProblemInstance
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("instances CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		instance, err := parseInstance(record)
		if err != nil {
			return nil, fmt.Errorf("instances CSV row %d: %w", i+2, err)
		}

		instances = append(instances, instance)
	}

	return instances, nil
}

// parseInstance converts a CSV record to a ProblemInstance
func parseInstance(record []string) (*entities.ProblemInstance, error) {
	id := strings.TrimSpace(record[0])
	if id == "" {
		return nil, fmt.Errorf("instance_id cannot be empty")
	}

	holding, err := parseCost("holding_cost", record[1])
	if err != nil {
		return nil, err
	}
	stockout, err := parseCost("stockout_cost", record[2])
	if err != nil {
		return nil, err
	}
	fixed, err := parseCost("fixed_cost", record[3])
	if err != nil {
		return nil, err
	}

	params, err := entities.NewCostParameters(holding, stockout, fixed)
	if err != nil {
		return nil, err
	}

	demand, err := parseDemand(strings.TrimSpace(record[4]), record[5], record[6])
	if err != nil {
		return nil, err
	}

	return &entities.ProblemInstance{ID: id, Params: params, Demand: demand}, nil
}

// parseDemand builds the demand model declared by a row's kind column.
func parseDemand(kind, meanField, pmfField string) (entities.DemandModel, error) {
	switch kind {
	case "poisson":
		meanField = strings.TrimSpace(meanField)
		if meanField == "" {
			return nil, &entities.ConfigurationError{Reason: "poisson demand requires demand_mean"}
		}
		mean, err := decimal.NewFromString(meanField)
		if err != nil {
			return nil, fmt.Errorf("invalid demand_mean %q: %w", meanField, err)
		}
		return entities.NewPoissonDemand(mean.InexactFloat64())

	case "explicit":
		pmfField = strings.TrimSpace(pmfField)
		if pmfField == "" {
			return nil, &entities.ConfigurationError{Reason: "explicit demand requires demand_pmf"}
		}
		fields := strings.Split(pmfField, ";")
		pmf := make([]float64, len(fields))
		for i, field := range fields {
			mass, err := decimal.NewFromString(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid demand_pmf value %q: %w", field, err)
			}
			pmf[i] = mass.InexactFloat64()
		}
		return entities.NewExplicitDemand(len(pmf)-1, pmf)

	default:
		return nil, &entities.ConfigurationError{
			Reason: fmt.Sprintf("unknown demand_kind %q, want poisson or explicit", kind),
		}
	}
}

// parseCost parses a cost column via decimal so values like 0.15 survive
// the trip from text exactly.
func parseCost(name, field string) (float64, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, field, err)
	}
	return value.InexactFloat64(), nil
}

// validateHeader checks if the CSV header matches expected format
func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(actual[i])) != col {
			return false
		}
	}
	return true
}
