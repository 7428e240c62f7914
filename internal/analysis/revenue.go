package analysis

// RentResolver answers payment-standard lookups. It is satisfied by
// *standards.Resolver; tests inject synthetic tables through it.
type RentResolver interface {
	// ResolveGroup returns the PHA group for a zip code.
	ResolveGroup(zipCode string) (int, error)
	// ResolveRent returns the monthly payment standard for a group and
	// bedroom count.
	ResolveRent(group, bedrooms int) (float64, error)
	// RentTypeName returns the display name for a group.
	RentTypeName(group int) string
}

// UnitRentLine is the itemized audit trail behind the aggregate total: one
// line per parsed unit, in input order.
type UnitRentLine struct {
	UnitIndex   int     `json:"unitIndex"` // 1-based, for display
	Bedrooms    int     `json:"bedrooms"`
	Group       int     `json:"group"`
	MonthlyRent float64 `json:"monthlyRent"`
}

// AggregateRevenue resolves the payment standard for every unit and returns
// the per-unit rent lines plus their exact sum. The group is resolved once
// per zip code since all units in one analysis share the same location. Any
// lookup failure aborts the whole aggregation with the resolver's error
// unchanged; no partial totals are returned.
func AggregateRevenue(resolver RentResolver, units []UnitDescriptor, zipCode string) ([]UnitRentLine, float64, error) {
	group, err := resolver.ResolveGroup(zipCode)
	if err != nil {
		return nil, 0, err
	}

	lines := make([]UnitRentLine, 0, len(units))
	total := 0.0
	for i, unit := range units {
		rent, err := resolver.ResolveRent(group, unit.Bedrooms)
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, UnitRentLine{
			UnitIndex:   i + 1,
			Bedrooms:    unit.Bedrooms,
			Group:       group,
			MonthlyRent: rent,
		})
		total += rent
	}

	return lines, total, nil
}
