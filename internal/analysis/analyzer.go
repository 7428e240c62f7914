package analysis

import (
	"go.uber.org/zap"
)

// AnalysisResult aggregates the itemized rent lines, the revenue total, and
// every derived metric for one property analysis. It is produced fresh per
// invocation and is internally consistent: either fully populated or not
// returned at all.
type AnalysisResult struct {
	ZipCode  string          `json:"zipCode"`
	Group    int             `json:"group"`
	RentType string          `json:"rentType"`
	UnitMix  string          `json:"unitMix"`
	Inputs   FinancialInputs `json:"inputs"`

	Units            []UnitRentLine `json:"units"`
	TotalMonthlyRent float64        `json:"totalMonthlyRent"`

	Metrics MetricsReport `json:"metrics"`
}

// Analyzer ties the pipeline together: parse the unit mix, price each unit
// from the payment standards, then run the metrics engine. It is stateless
// between invocations apart from the read-only tables behind the resolver,
// so one Analyzer may serve concurrent callers.
type Analyzer struct {
	resolver RentResolver
	logger   *zap.Logger
}

// NewAnalyzer returns an Analyzer over the given resolver.
func NewAnalyzer(resolver RentResolver, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{resolver: resolver, logger: logger}
}

// Analyze runs one full property analysis. The first failure encountered is
// returned as a *ValidationError or a *standards.LookupError; no partial
// result is ever produced.
func (a *Analyzer) Analyze(zipCode, unitMix string, inputs FinancialInputs) (*AnalysisResult, error) {
	units, err := ParseUnitMix(unitMix)
	if err != nil {
		return nil, err
	}

	lines, totalRent, err := AggregateRevenue(a.resolver, units, zipCode)
	if err != nil {
		return nil, err
	}

	metrics, err := ComputeMetrics(totalRent, inputs)
	if err != nil {
		return nil, err
	}

	group := lines[0].Group
	a.logger.Debug("analysis computed",
		zap.String("op", "analysis.Analyze"),
		zap.String("zipCode", zipCode),
		zap.Int("group", group),
		zap.Int("units", len(lines)),
		zap.Float64("totalMonthlyRent", totalRent),
	)

	return &AnalysisResult{
		ZipCode:          zipCode,
		Group:            group,
		RentType:         a.resolver.RentTypeName(group),
		UnitMix:          unitMix,
		Inputs:           inputs,
		Units:            lines,
		TotalMonthlyRent: totalRent,
		Metrics:          metrics,
	}, nil
}
