package questionbank

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrUnknownTest = errors.New("unknown test id")

// SectionConfig is static per-section metadata: display name, the CSV file
// holding its questions, and the time thresholds used by the status
// classifier.
type SectionConfig struct {
	Name               string
	ShortName          string
	CSV                string
	OptimalTimeCorrect float64 // seconds; "fast enough" when correct
	QuickTimeIncorrect float64 // seconds; "fast enough" (a guess) when wrong
}

const (
	DefaultOptimalTimeCorrect = 90
	DefaultQuickTimeIncorrect = 60
)

const (
	SectionVARC = "VARC"
	SectionLRDI = "LRDI"
	SectionQA   = "QA"
)

const (
	varcName = "Verbal Ability and Reading Comprehension"
	lrdiName = "Data Interpretation & Logical Reasoning"
	qaName   = "Quantitative Aptitude"
)

// Sectional tests reuse the same three section types but point at their own
// question sets and carry tuned thresholds.
var sectionalConfigs = map[string]SectionConfig{
	"qa1":   {Name: qaName, ShortName: SectionQA, CSV: "QA_16.csv", OptimalTimeCorrect: 75, QuickTimeIncorrect: 50},
	"qa2":   {Name: qaName, ShortName: SectionQA, CSV: "QA_17.csv", OptimalTimeCorrect: 75, QuickTimeIncorrect: 50},
	"qa3":   {Name: qaName, ShortName: SectionQA, CSV: "QA_18.csv", OptimalTimeCorrect: 75, QuickTimeIncorrect: 50},
	"qa4":   {Name: qaName, ShortName: SectionQA, CSV: "QA_19.csv", OptimalTimeCorrect: 75, QuickTimeIncorrect: 50},
	"varc1": {Name: varcName, ShortName: SectionVARC, CSV: "VARC_#16.csv", OptimalTimeCorrect: 60, QuickTimeIncorrect: 40},
	"varc2": {Name: varcName, ShortName: SectionVARC, CSV: "VARC_#17.csv", OptimalTimeCorrect: 60, QuickTimeIncorrect: 40},
	"varc3": {Name: varcName, ShortName: SectionVARC, CSV: "VARC_#18.csv", OptimalTimeCorrect: 60, QuickTimeIncorrect: 40},
	"lrdi1": {Name: lrdiName, ShortName: SectionLRDI, CSV: "LRDI_#16.csv", OptimalTimeCorrect: 90, QuickTimeIncorrect: 60},
	"lrdi2": {Name: lrdiName, ShortName: SectionLRDI, CSV: "LRDI_#17.csv", OptimalTimeCorrect: 90, QuickTimeIncorrect: 60},
	"lrdi3": {Name: lrdiName, ShortName: SectionLRDI, CSV: "LRDI_#18.csv", OptimalTimeCorrect: 90, QuickTimeIncorrect: 60},
}

// IsSectional reports whether the id names a single-section practice test.
func IsSectional(testID string) bool {
	_, ok := sectionalConfigs[testID]
	return ok
}

// SectionsForTest resolves a test id to its ordered section configs.
// Full mocks "1".."15" have three sections (VARC, LRDI, QA) with default
// thresholds; sectional ids map to one tuned section. Anything else is
// ErrUnknownTest.
func SectionsForTest(testID string) ([]SectionConfig, error) {
	if conf, ok := sectionalConfigs[testID]; ok {
		return []SectionConfig{conf}, nil
	}

	n, err := strconv.Atoi(testID)
	if err != nil || n < 1 || n > 15 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTest, testID)
	}

	return []SectionConfig{
		{
			Name:               varcName,
			ShortName:          SectionVARC,
			CSV:                fmt.Sprintf("VARC_#%d.csv", n),
			OptimalTimeCorrect: DefaultOptimalTimeCorrect,
			QuickTimeIncorrect: DefaultQuickTimeIncorrect,
		},
		{
			Name:               lrdiName,
			ShortName:          SectionLRDI,
			CSV:                fmt.Sprintf("LRDI_#%d.csv", n),
			OptimalTimeCorrect: DefaultOptimalTimeCorrect,
			QuickTimeIncorrect: DefaultQuickTimeIncorrect,
		},
		{
			Name:               qaName,
			ShortName:          SectionQA,
			CSV:                fmt.Sprintf("QA_%d.csv", n),
			OptimalTimeCorrect: DefaultOptimalTimeCorrect,
			QuickTimeIncorrect: DefaultQuickTimeIncorrect,
		},
	}, nil
}

// FullMockIDs lists the ids of all full mock tests, for the catalog.
func FullMockIDs() []string {
	ids := make([]string, 0, 15)
	for n := 1; n <= 15; n++ {
		ids = append(ids, strconv.Itoa(n))
	}
	return ids
}

// SectionalIDs lists the ids of all sectional tests, grouped and ordered.
func SectionalIDs() []string {
	return []string{"qa1", "qa2", "qa3", "qa4", "varc1", "varc2", "varc3", "lrdi1", "lrdi2", "lrdi3"}
}
