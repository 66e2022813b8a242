package orchestration

import (
	"strings"

	"github.com/agbru/numcalc/internal/sequence"
)

// GetCalculatorsToRun determines which calculators should be executed based
// on the requested algorithm name. The special name "all" selects every
// registered calculator, in the factory's sorted order, for a side-by-side
// comparison run.
//
// Parameters:
//   - algo: The requested algorithm name, or "all".
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []sequence.Calculator: The calculators to execute. Nil when the name
//     is unknown.
func GetCalculatorsToRun(algo string, factory sequence.CalculatorFactory) []sequence.Calculator {
	if strings.EqualFold(algo, "all") {
		keys := factory.List() // List() returns sorted keys
		calculators := make([]sequence.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, ok := factory.Get(k); ok {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, ok := factory.Get(algo); ok {
		return []sequence.Calculator{calc}
	}
	return nil
}
