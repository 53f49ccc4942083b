package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// serviceFeeRate is the pricing contract: the fee is exactly 10% of the base
// price, computed once at Booking creation and never recomputed.
const serviceFeeRate = 0.10

// ParseCents converts a decimal money string ("400", "400.5", "400.00") to
// integer cents.
func ParseCents(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty amount")
	}

	whole, frac, _ := strings.Cut(raw, ".")
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has sub-cent precision", raw)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	if w < 0 || strings.HasPrefix(whole, "-") {
		return 0, fmt.Errorf("amount %q is negative", raw)
	}
	return w*100 + f, nil
}

// ServiceFee rounds 10% of the base price to the nearest cent.
func ServiceFee(baseCents int64) int64 {
	return int64(math.Round(float64(baseCents) * serviceFeeRate))
}

// FormatCents renders cents as a dollar string for messages.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
