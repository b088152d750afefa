package pricing

// Recommendation suggests the bundle discount reachable by adding one more
// service category to the cart.
type Recommendation struct {
	Percent    int    `json:"percent"`
	MessageKey string `json:"messageKey"`
}

// Recommend returns the next-tier suggestion for the current category list.
// Only the length matters; duplicates are allowed. Nil means either the cart
// is empty or the top tier is already reached.
func Recommend(categories []Category) *Recommendation {
	var pct int
	switch len(categories) {
	case 1:
		pct = 5
	case 2:
		pct = 10
	case 3:
		pct = 15
	case 4:
		pct = 20
	default:
		return nil
	}
	return &Recommendation{Percent: pct, MessageKey: MessageBundleNext}
}
