package standards

import "fmt"

// Schedule year identifiers accepted by ScheduleForYear.
const (
	YearFY2024 = "2024"
	YearFY2025 = "2025"

	// DefaultScheduleYear is used when the configuration does not name one.
	DefaultScheduleYear = YearFY2024
)

// ScheduleForYear returns the built-in Philadelphia schedule for a year.
func ScheduleForYear(year string) (Schedule, error) {
	switch year {
	case YearFY2024:
		return ScheduleFY2024(), nil
	case YearFY2025:
		return ScheduleFY2025(), nil
	default:
		return Schedule{}, fmt.Errorf("no payment standard schedule for year %q (have %s, %s)", year, YearFY2024, YearFY2025)
	}
}

// ScheduleYears lists the built-in schedule years, oldest first.
func ScheduleYears() []string {
	return []string{YearFY2024, YearFY2025}
}

// ScheduleFY2024 returns the Philadelphia Housing Authority payment standard
// schedule effective October 1, 2024.
func ScheduleFY2024() Schedule {
	return Schedule{
		Year:          YearFY2024,
		EffectiveDate: "2024-10-01",
		ZipGroups: ZipGroupTable{
			// Group 1 | Traditional Rents
			"19120": 1, "19124": 1, "19126": 1, "19132": 1, "19133": 1,
			"19134": 1, "19136": 1, "19139": 1, "19140": 1, "19141": 1,
			"19142": 1, "19143": 1, "19151": 1,

			// Group 2 | Mid-Range Rents
			"19101": 2, "19104": 2, "19105": 2, "19109": 2, "19110": 2,
			"19111": 2, "19112": 2, "19114": 2, "19115": 2, "19116": 2,
			"19119": 2, "19121": 2, "19122": 2, "19131": 2, "19135": 2,
			"19137": 2, "19138": 2, "19144": 2, "19145": 2, "19148": 2,
			"19149": 2, "19150": 2, "19152": 2, "19153": 2, "19154": 2,

			// Group 3 | Opportunity Rents
			"19118": 3, "19125": 3, "19127": 3, "19128": 3,
			"19129": 3, "19146": 3,

			// Group 4 | High-Opportunity Rents
			"19102": 4, "19103": 4, "19106": 4, "19107": 4,
			"19123": 4, "19130": 4, "19147": 4,
		},
		Standards: PaymentStandardTable{
			1: {-1: 847, 0: 1130, 1: 1240, 2: 1480, 3: 1780, 4: 2030, 5: 2334, 6: 2639, 7: 2943, 8: 3248},
			2: {-1: 1042, 0: 1390, 1: 1540, 2: 1830, 3: 2200, 4: 2510, 5: 2886, 6: 3263, 7: 3639, 8: 4016},
			3: {-1: 1342, 0: 1790, 1: 1970, 2: 2350, 3: 2830, 4: 3220, 5: 3703, 6: 4186, 7: 4669, 8: 5152},
			4: {-1: 1522, 0: 2030, 1: 2270, 2: 2700, 3: 3250, 4: 3700, 5: 4255, 6: 4810, 7: 5365, 8: 5920},
		},
		RentTypes: map[int]string{
			1: "Traditional Rents",
			2: "Mid Range Rents",
			3: "Opportunity Rents",
			4: "High Opportunity Rents",
		},
	}
}

// ScheduleFY2025 returns the Philadelphia Housing Authority payment standard
// schedule effective November 1, 2025. It introduces a fifth group below the
// 2024 tiers.
func ScheduleFY2025() Schedule {
	return Schedule{
		Year:          YearFY2025,
		EffectiveDate: "2025-11-01",
		ZipGroups: ZipGroupTable{
			// Group 1 | Basic Rents
			"19124": 1, "19132": 1, "19133": 1, "19141": 1,

			// Group 2 | Traditional Rents
			"19111": 2, "19115": 2, "19116": 2, "19119": 2,
			"19120": 2, "19121": 2, "19122": 2, "19126": 2,
			"19134": 2, "19135": 2, "19136": 2, "19137": 2,
			"19138": 2, "19139": 2, "19140": 2, "19142": 2,
			"19143": 2, "19144": 2, "19150": 2, "19151": 2,
			"19152": 2,

			// Group 3 | Mid-Range Rents
			"19101": 3, "19104": 3, "19105": 3, "19109": 3,
			"19110": 3, "19112": 3, "19114": 3, "19129": 3,
			"19131": 3, "19145": 3, "19148": 3, "19149": 3,
			"19153": 3, "19154": 3,

			// Group 4 | Opportunity Rents
			"19118": 4, "19123": 4, "19125": 4, "19127": 4,
			"19128": 4, "19146": 4,

			// Group 5 | High-Opportunity Rents
			"19102": 5, "19103": 5, "19106": 5, "19107": 5,
			"19130": 5, "19147": 5,
		},
		Standards: PaymentStandardTable{
			1: {-1: 825, 0: 1100, 1: 1190, 2: 1420, 3: 1700, 4: 1900, 5: 2185, 6: 2470, 7: 2755, 8: 3040},
			2: {-1: 960, 0: 1280, 1: 1390, 2: 1660, 3: 1990, 4: 2220, 5: 2553, 6: 2886, 7: 3219, 8: 3552},
			3: {-1: 1162, 0: 1550, 1: 1690, 2: 2010, 3: 2410, 4: 2690, 5: 3093, 6: 3497, 7: 3900, 8: 4304},
			4: {-1: 1350, 0: 1800, 1: 1960, 2: 2330, 3: 2790, 4: 3120, 5: 3588, 6: 4056, 7: 4524, 8: 4992},
			5: {-1: 1575, 0: 2100, 1: 2280, 2: 2720, 3: 3260, 4: 3640, 5: 4186, 6: 4732, 7: 5278, 8: 5824},
		},
		RentTypes: map[int]string{
			1: "Basic Rents",
			2: "Traditional Rents",
			3: "Mid Range Rents",
			4: "Opportunity Rents",
			5: "High Opportunity Rents",
		},
	}
}
