package pricing

import (
	"strings"
	"time"
)

// SeasonProfile maps calendar months onto low and mid pricing seasons.
// Months in neither set are high season and earn no discount.
type SeasonProfile struct {
	Name string
	Low  map[time.Month]bool
	Mid  map[time.Month]bool
}

var defaultProfile = SeasonProfile{
	Name: "default",
	Low:  months(time.November, time.December, time.January, time.February, time.March),
	Mid:  months(time.April, time.May, time.September, time.October),
}

var skiProfile = SeasonProfile{
	Name: "ski",
	Low:  months(time.May, time.June, time.July, time.August, time.September, time.October),
	Mid:  months(time.April, time.November),
}

// Ski resorts are matched on destination substrings because the location
// field is free text coming straight from the search box.
var skiDestinations = []string{"uludağ", "erciyes", "palandöken", "kartepe"}

// ClassifyDestination resolves the season profile for a free-text location.
func ClassifyDestination(location string) SeasonProfile {
	needle := strings.ToLower(location)
	for _, resort := range skiDestinations {
		if strings.Contains(needle, resort) {
			return skiProfile
		}
	}
	return defaultProfile
}

func seasonRule(month time.Month, profile SeasonProfile) (Discount, bool) {
	switch {
	case profile.Low[month]:
		return Discount{Percent: 15, Reason: ReasonLowSeason, Badge: BadgeSeason, Detail: int(month)}, true
	case profile.Mid[month]:
		return Discount{Percent: 10, Reason: ReasonMidSeason, Badge: BadgeSeason, Detail: int(month)}, true
	}
	return Discount{}, false
}

func months(list ...time.Month) map[time.Month]bool {
	set := make(map[time.Month]bool, len(list))
	for _, m := range list {
		set[m] = true
	}
	return set
}
