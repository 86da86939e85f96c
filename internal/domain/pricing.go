package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BreakdownItem is one line of a price breakdown. Item amounts are
// per-stay and never scaled.
type BreakdownItem struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Amount  float64 `json:"item_amount"`
}

// PriceBreakdown is the structured money breakdown attached to a
// booking. Amounts are per-night on the wire; the nightly gross is
// scaled at render time, never in storage.
type PriceBreakdown struct {
	GrossAmount      float64
	DiscountedAmount float64
	Currency         string
	Items            []BreakdownItem
}

/********** flexible field lookup **********/

var breakdownAliases = map[string][]string{
	"gross":      {"gross_amount", "grossAmount", "gross"},
	"discounted": {"discounted_amount", "discountedAmount", "discounted"},
	"currency":   {"currency", "currency_code", "currencyCode"},
	"amount":     {"item_amount", "itemAmount", "amount"},
}

// numberAt reads the first numeric value among the given keys,
// accepting float64/int and numeric strings like "8,0".
func numberAt(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func stringAt(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

/********** parsing **********/

// ParsePriceBreakdown builds a PriceBreakdown from a generic mapping
// (a decoded JSON object). The items key must be present — an empty
// list is valid — and every item must carry name, details and an
// amount.
func ParsePriceBreakdown(doc map[string]any) (PriceBreakdown, error) {
	var pb PriceBreakdown

	if g, ok := numberAt(doc, breakdownAliases["gross"]...); ok {
		pb.GrossAmount = g
	} else {
		return PriceBreakdown{}, fmt.Errorf("%w: price breakdown missing gross_amount", ErrInvalid)
	}
	if d, ok := numberAt(doc, breakdownAliases["discounted"]...); ok {
		pb.DiscountedAmount = d
	} else {
		return PriceBreakdown{}, fmt.Errorf("%w: price breakdown missing discounted_amount", ErrInvalid)
	}
	if c, ok := stringAt(doc, breakdownAliases["currency"]...); ok {
		pb.Currency = c
	} else {
		return PriceBreakdown{}, fmt.Errorf("%w: price breakdown missing currency", ErrInvalid)
	}

	rawItems, ok := doc["items"].([]any)
	if !ok {
		return PriceBreakdown{}, fmt.Errorf("%w: price breakdown missing items", ErrInvalid)
	}

	pb.Items = make([]BreakdownItem, 0, len(rawItems))
	for i, ri := range rawItems {
		m, ok := ri.(map[string]any)
		if !ok {
			return PriceBreakdown{}, fmt.Errorf("%w: breakdown item %d is not an object", ErrInvalid, i)
		}
		var it BreakdownItem
		if it.Name, ok = stringAt(m, "name"); !ok {
			return PriceBreakdown{}, fmt.Errorf("%w: breakdown item %d missing name", ErrInvalid, i)
		}
		if it.Details, ok = stringAt(m, "details"); !ok {
			return PriceBreakdown{}, fmt.Errorf("%w: breakdown item %d missing details", ErrInvalid, i)
		}
		if it.Amount, ok = numberAt(m, breakdownAliases["amount"]...); !ok {
			return PriceBreakdown{}, fmt.Errorf("%w: breakdown item %d missing item_amount", ErrInvalid, i)
		}
		pb.Items = append(pb.Items, it)
	}
	return pb, nil
}

/********** presentation **********/

// Presentation returns the rendering of the breakdown for a stay of
// the given number of nights. Gross is the nightly figure times
// nights. The discounted amount is a whole-stay figure and stays
// unscaled, as do the items.
func (p PriceBreakdown) Presentation(nights int) map[string]any {
	items := make([]map[string]any, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, map[string]any{
			"name":        it.Name,
			"details":     it.Details,
			"item_amount": it.Amount,
		})
	}
	return map[string]any{
		"gross_amount":      p.GrossAmount * float64(nights),
		"discounted_amount": p.DiscountedAmount,
		"currency":          p.Currency,
		"items":             items,
	}
}
