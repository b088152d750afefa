package pricing

import "strconv"

// FormatCurrency renders an amount with dot-grouped thousands and the lira
// sign, e.g. 1234567 -> "1.234.567 ₺". Display only; arithmetic always runs
// on raw Money values.
func FormatCurrency(v Money) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return sign + string(out) + " ₺"
}
