package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SortKey identifies a listing sort order.
type SortKey string

const (
	SortManual    SortKey = "manual"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortAZ        SortKey = "az"
	SortZA        SortKey = "za"
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	// SortMostSold is recognized but not implemented. Requests naming it
	// are rejected rather than silently remapped.
	SortMostSold SortKey = "most_sold"
)

// IsImplemented reports whether the key maps to a working comparator
func (k SortKey) IsImplemented() bool {
	switch k {
	case SortManual, SortPriceAsc, SortPriceDesc, SortAZ, SortZA, SortNewest, SortOldest:
		return true
	default:
		return false
	}
}

// NormalizeSortKey resolves a requested key against a category default.
// An empty request falls back to the default, an unrecognized key falls
// back to price_asc, and most_sold is rejected.
func NormalizeSortKey(requested string, fallback SortKey) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(requested)))
	if key == "" {
		key = fallback
	}
	if key == SortMostSold {
		return "", ErrUnsupportedSort
	}
	if !key.IsImplemented() {
		key = SortPriceAsc
	}
	return key, nil
}

// ResolvedItem is a listing row with its kind-specific pricing already
// flattened. Price is nil when the item has no defined effective price.
type ResolvedItem struct {
	Ref        ItemRef
	Slug       string
	Title      string
	CreatedAt  time.Time
	Price      *decimal.Decimal
	CategoryID uuid.UUID
	JourneyID  *uuid.UUID
}

// SortItems orders resolved items by the given key. orderMap holds the
// manual positions keyed by item ref and is only consulted for manual
// sort; items missing from the map form an alphabetical tail. Price
// sorts keep unpriced items at the end in their incoming order. The
// sort is stable throughout.
func SortItems(items []ResolvedItem, key SortKey, orderMap map[ItemRef]int) ([]ResolvedItem, error) {
	if !key.IsImplemented() {
		if key == SortMostSold {
			return nil, ErrUnsupportedSort
		}
		key = SortPriceAsc
	}

	out := make([]ResolvedItem, len(items))
	copy(out, items)

	switch key {
	case SortManual:
		sortManual(out, orderMap)
	case SortPriceAsc:
		sortByPrice(out, true)
	case SortPriceDesc:
		sortByPrice(out, false)
	case SortAZ:
		sort.SliceStable(out, func(i, j int) bool {
			return lowerTitle(out[i]) < lowerTitle(out[j])
		})
	case SortZA:
		sort.SliceStable(out, func(i, j int) bool {
			return lowerTitle(out[i]) > lowerTitle(out[j])
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}

	return out, nil
}

// sortManual puts mapped items first ordered by their map value, then the
// unmapped tail sorted alphabetically.
func sortManual(items []ResolvedItem, orderMap map[ItemRef]int) {
	sort.SliceStable(items, func(i, j int) bool {
		oi, iok := orderMap[items[i].Ref]
		oj, jok := orderMap[items[j].Ref]
		switch {
		case iok && jok:
			return oi < oj
		case iok:
			return true
		case jok:
			return false
		default:
			return lowerTitle(items[i]) < lowerTitle(items[j])
		}
	})
}

// sortByPrice orders priced items by effective price and appends unpriced
// items in their incoming relative order.
func sortByPrice(items []ResolvedItem, asc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].Price, items[j].Price
		switch {
		case pi != nil && pj != nil:
			if asc {
				return pi.LessThan(*pj)
			}
			return pi.GreaterThan(*pj)
		case pi != nil:
			return true
		default:
			return false
		}
	})
}

func lowerTitle(item ResolvedItem) string {
	return strings.ToLower(item.Title)
}
