// Package analysis implements the multifamily analysis pipeline: unit mix
// parsing, PHA revenue aggregation, and the financial metrics engine. Every
// operation is a pure computation over in-memory values; the only shared
// state is the read-only payment standard tables behind the resolver.
package analysis

import (
	"strconv"
	"strings"

	"github.com/phillyrei/multifamily-analyzer/pkg/constants"
)

// UnitDescriptor describes one rental unit by its bedroom count. -1 encodes
// a single-room occupancy (SRO) unit. Units with equal bedroom counts are
// interchangeable for pricing.
type UnitDescriptor struct {
	Bedrooms int
}

// unitMixFormat tags which of the two mutually exclusive surface formats an
// input string uses.
type unitMixFormat int

const (
	flatFormat unitMixFormat = iota
	groupedFormat
)

// ParseUnitMix turns a free-form unit mix description into an ordered list
// of unit descriptors. Two formats are accepted:
//
//	grouped: "5x1BR, 3x2BR, 2x3BR"  (each token expands to count units)
//	flat:    "1,2,3,SRO,1"          (each token is one unit)
//
// If any comma-separated token contains an 'x' separator the whole string is
// treated as grouped form; bare-integer tokens alongside grouped tokens are
// rejected. Token order is preserved because it drives the user-visible
// "Unit 1, Unit 2, ..." numbering.
func ParseUnitMix(unitMix string) ([]UnitDescriptor, error) {
	if strings.TrimSpace(unitMix) == "" {
		return nil, validationErrorf("unitMix", "no unit bedroom counts provided")
	}

	tokens := splitTokens(unitMix)
	if len(tokens) == 0 {
		return nil, validationErrorf("unitMix", "no unit bedroom counts provided")
	}

	format := detectFormat(tokens)

	var units []UnitDescriptor
	for _, token := range tokens {
		switch format {
		case groupedFormat:
			count, bedrooms, err := parseGroupedToken(token)
			if err != nil {
				return nil, err
			}
			for i := 0; i < count; i++ {
				units = append(units, UnitDescriptor{Bedrooms: bedrooms})
			}
		case flatFormat:
			bedrooms, err := parseFlatToken(token)
			if err != nil {
				return nil, err
			}
			units = append(units, UnitDescriptor{Bedrooms: bedrooms})
		}
	}

	if len(units) == 0 {
		return nil, validationErrorf("unitMix", "unit mix describes zero units; a property must have at least one unit")
	}
	return units, nil
}

func splitTokens(unitMix string) []string {
	var tokens []string
	for _, raw := range strings.Split(unitMix, ",") {
		if token := strings.TrimSpace(raw); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// detectFormat performs the single unambiguous scan over the tokens: one
// 'x'-separated token makes the whole string grouped form.
func detectFormat(tokens []string) unitMixFormat {
	for _, token := range tokens {
		if strings.ContainsAny(token, "xX") {
			return groupedFormat
		}
	}
	return flatFormat
}

// parseGroupedToken parses a "<count>x<label>" token, e.g. "5x1BR", "3 X sro".
func parseGroupedToken(token string) (count, bedrooms int, err error) {
	idx := strings.IndexAny(token, "xX")
	if idx < 0 {
		return 0, 0, validationErrorf(token, "expected <count>x<bedrooms> alongside grouped tokens; mixing grouped and flat forms is not allowed")
	}

	countStr := strings.TrimSpace(token[:idx])
	label := strings.TrimSpace(token[idx+1:])

	count, convErr := strconv.Atoi(countStr)
	if convErr != nil {
		return 0, 0, validationErrorf(token, "unit count %q is not an integer", countStr)
	}
	if count <= 0 {
		return 0, 0, validationErrorf(token, "unit count must be positive, got %d", count)
	}

	bedrooms, err = parseBedroomLabel(token, label)
	if err != nil {
		return 0, 0, err
	}
	return count, bedrooms, nil
}

// parseFlatToken parses one flat-form token: a bare integer bedroom count or
// an SRO marker.
func parseFlatToken(token string) (int, error) {
	upper := strings.ToUpper(token)
	if upper == "SRO" || upper == "S" {
		return constants.BedroomsSRO, nil
	}
	bedrooms, err := strconv.Atoi(token)
	if err != nil {
		return 0, validationErrorf(token, "expected a bedroom count or SRO")
	}
	return checkBedroomRange(token, bedrooms)
}

// parseBedroomLabel parses the label half of a grouped token. The published
// schedules label tiers "SRO" and "0 BR".."8 BR"; the original intake form
// also tolerated "2bed", "2 beds", and "studio", so those survive here.
func parseBedroomLabel(token, label string) (int, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(label), ""))
	if normalized == "" {
		return 0, validationErrorf(token, "missing bedroom label after count")
	}

	switch normalized {
	case "SRO":
		return constants.BedroomsSRO, nil
	case "STUDIO":
		return 0, nil
	}

	for _, suffix := range []string{"BEDS", "BED", "BR"} {
		if strings.HasSuffix(normalized, suffix) {
			normalized = strings.TrimSuffix(normalized, suffix)
			break
		}
	}

	bedrooms, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, validationErrorf(token, "invalid bedroom label %q; use SRO or 0BR-8BR", label)
	}
	return checkBedroomRange(token, bedrooms)
}

func checkBedroomRange(token string, bedrooms int) (int, error) {
	if bedrooms < constants.MinBedrooms || bedrooms > constants.MaxBedrooms {
		return 0, validationErrorf(token, "bedroom count %d is outside the supported range (SRO through %d BR)", bedrooms, constants.MaxBedrooms)
	}
	return bedrooms, nil
}
