// Package standards holds the PHA payment standard reference tables and the
// lookup logic that resolves a property's subsidized rents from them. The
// tables are constructed once, validated, and never mutated afterward, so a
// Resolver is safe for concurrent use.
package standards

import (
	"fmt"
	"strings"

	"github.com/phillyrei/multifamily-analyzer/pkg/constants"
	"go.uber.org/zap"
)

// ZipGroupTable maps a 5-digit zip code to its PHA SAFMR group.
type ZipGroupTable map[string]int

// PaymentStandardTable maps (group, bedroom count) to the published monthly
// payment standard in dollars. Bedroom count -1 encodes SRO.
type PaymentStandardTable map[int]map[int]float64

// Schedule bundles one published payment-standard schedule: the zip-to-group
// assignment, the per-group rent tiers, and display metadata.
type Schedule struct {
	Year          string
	EffectiveDate string
	ZipGroups     ZipGroupTable
	Standards     PaymentStandardTable
	RentTypes     map[int]string
}

// LookupError indicates that a zip code or a (group, bedrooms) pair was
// absent from the reference tables. It is never defaulted away; callers must
// surface it.
type LookupError struct {
	ZipCode  string
	Group    int
	Bedrooms int
	Message  string
}

func (e *LookupError) Error() string {
	return e.Message
}

// Validate checks the internal consistency of a schedule: every zip's group
// must have a complete rent tier covering SRO through the maximum bedroom
// count, and within a group rents must be non-decreasing in bedroom count.
func (s Schedule) Validate() error {
	if len(s.ZipGroups) == 0 {
		return fmt.Errorf("schedule %s has no zip code assignments", s.Year)
	}
	if len(s.Standards) == 0 {
		return fmt.Errorf("schedule %s has no payment standards", s.Year)
	}

	for zip, group := range s.ZipGroups {
		if _, ok := s.Standards[group]; !ok {
			return fmt.Errorf("schedule %s: zip %s assigned to group %d which has no payment standards", s.Year, zip, group)
		}
	}

	for group, tiers := range s.Standards {
		previous := 0.0
		for bedrooms := constants.MinBedrooms; bedrooms <= constants.MaxBedrooms; bedrooms++ {
			rent, ok := tiers[bedrooms]
			if !ok {
				return fmt.Errorf("schedule %s: group %d missing payment standard for %s", s.Year, group, BedroomLabel(bedrooms))
			}
			if rent <= 0 {
				return fmt.Errorf("schedule %s: group %d has non-positive payment standard for %s", s.Year, group, BedroomLabel(bedrooms))
			}
			if rent < previous {
				return fmt.Errorf("schedule %s: group %d payment standard decreases at %s", s.Year, group, BedroomLabel(bedrooms))
			}
			previous = rent
		}
	}

	return nil
}

// Resolver answers payment-standard lookups against one validated schedule.
type Resolver struct {
	schedule Schedule
	logger   *zap.Logger
}

// NewResolver validates the schedule and returns a Resolver over it.
func NewResolver(schedule Schedule, logger *zap.Logger) (*Resolver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{schedule: schedule, logger: logger}, nil
}

// Schedule returns the schedule the resolver was built over.
func (r *Resolver) Schedule() Schedule {
	return r.schedule
}

// ResolveGroup returns the PHA group for a zip code. An unknown zip is a
// LookupError; it is never substituted with a default group because a wrong
// group would mis-price every unit in the analysis.
func (r *Resolver) ResolveGroup(zipCode string) (int, error) {
	zip := strings.TrimSpace(zipCode)
	group, ok := r.schedule.ZipGroups[zip]
	if !ok {
		r.logger.Warn("zip code not found in PHA group mapping",
			zap.String("op", "standards.ResolveGroup"),
			zap.String("zipCode", zip),
			zap.String("scheduleYear", r.schedule.Year),
		)
		return 0, &LookupError{
			ZipCode: zip,
			Message: fmt.Sprintf("zip code %s not found in the PHA SAFMR group mapping for the %s schedule", zip, r.schedule.Year),
		}
	}
	return group, nil
}

// ResolveRent returns the monthly payment standard for a group and bedroom
// count. A miss here means the static tables are incomplete, which is a data
// fault rather than a user error, so it is logged at error level.
func (r *Resolver) ResolveRent(group, bedrooms int) (float64, error) {
	tiers, ok := r.schedule.Standards[group]
	if ok {
		if rent, found := tiers[bedrooms]; found {
			return rent, nil
		}
	}
	r.logger.Error("payment standard missing from schedule",
		zap.String("op", "standards.ResolveRent"),
		zap.Int("group", group),
		zap.String("bedrooms", BedroomLabel(bedrooms)),
		zap.String("scheduleYear", r.schedule.Year),
	)
	return 0, &LookupError{
		Group:    group,
		Bedrooms: bedrooms,
		Message:  fmt.Sprintf("payment standard not found for group %d, bedrooms %s in the %s schedule", group, BedroomLabel(bedrooms), r.schedule.Year),
	}
}

// RentTypeName returns the display name for a group, e.g. "Mid Range Rents".
func (r *Resolver) RentTypeName(group int) string {
	if name, ok := r.schedule.RentTypes[group]; ok {
		return name
	}
	return "Unknown Rent Type"
}

// BedroomLabel renders a bedroom count the way the schedules label tiers:
// "SRO" for -1, otherwise "<n> BR".
func BedroomLabel(bedrooms int) string {
	if bedrooms == constants.BedroomsSRO {
		return "SRO"
	}
	return fmt.Sprintf("%d BR", bedrooms)
}
