package inventory

import (
	"sort"
	"time"
)

// LookbackDays maps a time-period label to a day count.
// Unrecognized labels fall back to a week.
func LookbackDays(label string) int {
	switch label {
	case "1-day":
		return 1
	case "3-days":
		return 3
	case "7-days":
		return 7
	default:
		return 7
	}
}

// ComputeRemaining projects per-ingredient remaining stock from the sales
// of the trailing lookback window.
//
// Every ingredient appears exactly once in the output, in input order,
// whether or not it was sold. No unit conversion happens here: a link
// whose unit disagrees with the stock unit produces a numerically wrong
// but structurally valid result (see UnitMismatches).
func ComputeRemaining(
	now time.Time,
	lookbackDays int,
	sales []SaleEvent,
	links []Link,
	ingredients []Ingredient,
) []RemainingIngredient {

	cutoff := now.AddDate(0, 0, -lookbackDays)

	// expand each sale into per-ingredient consumption
	linksByFood := make(map[int64][]Link, len(links))
	for _, l := range links {
		linksByFood[l.FoodID] = append(linksByFood[l.FoodID], l)
	}

	consumed := make(map[int64]float64)
	for _, sale := range sales {
		if sale.SoldAt.Before(cutoff) {
			continue
		}
		for _, l := range linksByFood[sale.FoodID] {
			consumed[l.IngredientID] += l.QuantityPerUnit * sale.Quantity
		}
	}

	out := make([]RemainingIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, RemainingIngredient{
			ID:        ing.ID,
			Name:      ing.Name,
			Remaining: ing.Amount - consumed[ing.ID],
			Unit:      ing.Unit,
		})
	}

	return out
}

// RankBySurplus returns a copy sorted descending by remaining quantity,
// largest surplus (most at risk of waste) first. n <= 0 keeps everything,
// otherwise only the top n are returned. Ties keep input order.
func RankBySurplus(items []RemainingIngredient, n int) []RemainingIngredient {
	ranked := make([]RemainingIngredient, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Remaining > ranked[j].Remaining
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// UnitMismatch flags a pivot row whose unit disagrees with the stock unit
// of the ingredient it points at. Detection only: the estimator still
// subtracts raw quantities.
type UnitMismatch struct {
	IngredientID int64
	FoodID       int64
	StockUnit    string
	LinkUnit     string
}

// UnitMismatches reports every link whose unit differs from the linked
// ingredient's stock unit.
func UnitMismatches(links []Link, ingredients []Ingredient) []UnitMismatch {
	units := make(map[int64]string, len(ingredients))
	for _, ing := range ingredients {
		units[ing.ID] = ing.Unit
	}

	var mismatches []UnitMismatch
	for _, l := range links {
		stockUnit, ok := units[l.IngredientID]
		if !ok || stockUnit == l.Unit {
			continue
		}
		mismatches = append(mismatches, UnitMismatch{
			IngredientID: l.IngredientID,
			FoodID:       l.FoodID,
			StockUnit:    stockUnit,
			LinkUnit:     l.Unit,
		})
	}

	return mismatches
}
