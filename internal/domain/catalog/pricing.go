package catalog

import "github.com/shopspring/decimal"

// TreatmentEffectivePrice is the cheapest current price across the
// treatment's zone configurations. The second return is false when the
// treatment has no configurations, in which case it has no defined price.
func TreatmentEffectivePrice(configs []*ZoneConfig) (decimal.Decimal, bool) {
	if len(configs) == 0 {
		return decimal.Zero, false
	}

	min := configs[0].CurrentPrice()
	for _, config := range configs[1:] {
		if price := config.CurrentPrice(); price.LessThan(min) {
			min = price
		}
	}
	return min, true
}

// JourneyEffectivePrice is the cheapest defined effective price among the
// journey's member items. Members without a defined price are skipped; a
// journey whose members are all unpriced has no defined price itself.
func JourneyEffectivePrice(memberPrices []*decimal.Decimal) (decimal.Decimal, bool) {
	var min *decimal.Decimal
	for _, price := range memberPrices {
		if price == nil {
			continue
		}
		if min == nil || price.LessThan(*min) {
			min = price
		}
	}
	if min == nil {
		return decimal.Zero, false
	}
	return *min, true
}
