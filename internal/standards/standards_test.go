package standards

import (
	"errors"
	"testing"

	"github.com/phillyrei/multifamily-analyzer/pkg/constants"
)

func newTestSchedule() Schedule {
	return Schedule{
		Year:          "test",
		EffectiveDate: "2024-01-01",
		ZipGroups:     ZipGroupTable{"19121": 2},
		Standards: PaymentStandardTable{
			2: {-1: 1042, 0: 1390, 1: 1540, 2: 1830, 3: 2200, 4: 2510, 5: 2886, 6: 3263, 7: 3639, 8: 4016},
		},
		RentTypes: map[int]string{2: "Mid Range Rents"},
	}
}

func TestBuiltInSchedulesValidate(t *testing.T) {
	for _, year := range ScheduleYears() {
		t.Run(year, func(t *testing.T) {
			schedule, err := ScheduleForYear(year)
			if err != nil {
				t.Fatalf("ScheduleForYear(%s) returned error: %v", year, err)
			}
			if _, err := NewResolver(schedule, nil); err != nil {
				t.Errorf("built-in schedule %s failed validation: %v", year, err)
			}
		})
	}
}

func TestScheduleForYearUnknown(t *testing.T) {
	if _, err := ScheduleForYear("1999"); err == nil {
		t.Error("ScheduleForYear(1999) succeeded, expected error")
	}
}

func TestResolveGroup(t *testing.T) {
	resolver, err := NewResolver(ScheduleFY2024(), nil)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}

	tests := []struct {
		name     string
		zipCode  string
		expected int
	}{
		{name: "Group 1 zip", zipCode: "19120", expected: 1},
		{name: "Group 2 zip", zipCode: "19121", expected: 2},
		{name: "Group 3 zip", zipCode: "19118", expected: 3},
		{name: "Group 4 zip", zipCode: "19102", expected: 4},
		{name: "Surrounding whitespace tolerated", zipCode: " 19121 ", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := resolver.ResolveGroup(tt.zipCode)
			if err != nil {
				t.Fatalf("ResolveGroup(%q) returned error: %v", tt.zipCode, err)
			}
			if group != tt.expected {
				t.Errorf("ResolveGroup(%q) = %d, expected %d", tt.zipCode, group, tt.expected)
			}
		})
	}
}

func TestResolveGroupUnknownZipNeverDefaults(t *testing.T) {
	resolver, err := NewResolver(ScheduleFY2024(), nil)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}

	for _, zip := range []string{"00000", "19199", "90210", ""} {
		group, err := resolver.ResolveGroup(zip)
		if err == nil {
			t.Errorf("ResolveGroup(%q) = %d, expected LookupError", zip, group)
			continue
		}
		var lookupErr *LookupError
		if !errors.As(err, &lookupErr) {
			t.Errorf("ResolveGroup(%q) returned %T, expected *LookupError", zip, err)
			continue
		}
		if lookupErr.ZipCode != zip && lookupErr.ZipCode != "" {
			// trimmed zip is echoed back
			t.Errorf("LookupError.ZipCode = %q for input %q", lookupErr.ZipCode, zip)
		}
	}
}

func TestResolveRent(t *testing.T) {
	resolver, err := NewResolver(newTestSchedule(), nil)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}

	rent, err := resolver.ResolveRent(2, 1)
	if err != nil {
		t.Fatalf("ResolveRent(2, 1) returned error: %v", err)
	}
	if rent != 1540 {
		t.Errorf("ResolveRent(2, 1) = %v, expected 1540", rent)
	}

	sro, err := resolver.ResolveRent(2, constants.BedroomsSRO)
	if err != nil {
		t.Fatalf("ResolveRent(2, SRO) returned error: %v", err)
	}
	if sro != 1042 {
		t.Errorf("ResolveRent(2, SRO) = %v, expected 1042", sro)
	}
}

func TestResolveRentMissingEntry(t *testing.T) {
	resolver, err := NewResolver(newTestSchedule(), nil)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}

	_, err = resolver.ResolveRent(9, 1)
	if err == nil {
		t.Fatal("ResolveRent(9, 1) succeeded, expected LookupError")
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("ResolveRent returned %T, expected *LookupError", err)
	}
	if lookupErr.Group != 9 || lookupErr.Bedrooms != 1 {
		t.Errorf("LookupError carries group %d bedrooms %d, expected 9 and 1", lookupErr.Group, lookupErr.Bedrooms)
	}
}

func TestRentTypeName(t *testing.T) {
	resolver, err := NewResolver(ScheduleFY2024(), nil)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}

	if name := resolver.RentTypeName(2); name != "Mid Range Rents" {
		t.Errorf("RentTypeName(2) = %q, expected Mid Range Rents", name)
	}
	if name := resolver.RentTypeName(42); name != "Unknown Rent Type" {
		t.Errorf("RentTypeName(42) = %q, expected the fallback name", name)
	}
}

func TestScheduleValidateRejectsBadTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Schedule)
	}{
		{
			name:   "No zip assignments",
			mutate: func(s *Schedule) { s.ZipGroups = ZipGroupTable{} },
		},
		{
			name:   "No payment standards",
			mutate: func(s *Schedule) { s.Standards = PaymentStandardTable{} },
		},
		{
			name:   "Zip assigned to unknown group",
			mutate: func(s *Schedule) { s.ZipGroups["19999"] = 7 },
		},
		{
			name:   "Missing bedroom tier",
			mutate: func(s *Schedule) { delete(s.Standards[2], 4) },
		},
		{
			name:   "Non-positive rent",
			mutate: func(s *Schedule) { s.Standards[2][3] = 0 },
		},
		{
			name: "Rent decreases with bedroom count",
			mutate: func(s *Schedule) {
				// 3BR priced below 2BR violates monotonicity
				s.Standards[2][3] = s.Standards[2][2] - 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := newTestSchedule()
			tt.mutate(&schedule)

			if _, err := NewResolver(schedule, nil); err == nil {
				t.Error("NewResolver accepted an inconsistent schedule")
			}
		})
	}
}

func TestPaymentStandardsMonotonicInBedrooms(t *testing.T) {
	// The published tables themselves must honor the invariant the validator
	// enforces: within a group, more bedrooms never means lower rent.
	for _, year := range ScheduleYears() {
		schedule, err := ScheduleForYear(year)
		if err != nil {
			t.Fatalf("ScheduleForYear(%s) returned error: %v", year, err)
		}
		for group, tiers := range schedule.Standards {
			previous := 0.0
			for bedrooms := constants.MinBedrooms; bedrooms <= constants.MaxBedrooms; bedrooms++ {
				rent, ok := tiers[bedrooms]
				if !ok {
					t.Fatalf("schedule %s group %d missing tier %s", year, group, BedroomLabel(bedrooms))
				}
				if rent < previous {
					t.Errorf("schedule %s group %d: rent decreases at %s", year, group, BedroomLabel(bedrooms))
				}
				previous = rent
			}
		}
	}
}

func TestBedroomLabel(t *testing.T) {
	if label := BedroomLabel(constants.BedroomsSRO); label != "SRO" {
		t.Errorf("BedroomLabel(-1) = %q, expected SRO", label)
	}
	if label := BedroomLabel(3); label != "3 BR" {
		t.Errorf("BedroomLabel(3) = %q, expected 3 BR", label)
	}
}
