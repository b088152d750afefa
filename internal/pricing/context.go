package pricing

import (
	"math"
	"time"
)

// Context carries the optional side inputs for a pricing call. Fields are
// independent of each other; a zero value disables the matching rule. Dates
// must be supplied by the caller so identical inputs always price identically.
type Context struct {
	BookingDate time.Time
	TravelDate  time.Time
	Nights      int
	Location    string
	UserMiles   int64
}

func (c Context) hasDates() bool {
	return !c.BookingDate.IsZero() && !c.TravelDate.IsZero()
}

func (c Context) hasSeasonInputs() bool {
	return !c.TravelDate.IsZero() && c.Location != ""
}

// LeadDays returns the whole days between booking and travel date.
func (c Context) LeadDays() int {
	return int(math.Floor(c.TravelDate.Sub(c.BookingDate).Hours() / 24))
}
