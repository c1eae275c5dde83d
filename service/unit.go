package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gaolamthuy/admin-sub000/models"
)

// Unit conversion helpers for the purchase-order flow. Quantities entered in
// a child unit (e.g. "bag 50kg") are normalized to the master unit (kg)
// before leaving the backend; totals shown to the user keep both views.

// ToMasterUnit converts a quantity expressed in a child unit to the master
// unit. conversionValue is how many master units one child unit represents.
func ToMasterUnit(quantity, conversionValue float64) float64 {
	return quantity * conversionValue
}

// AggregateByChildUnit accumulates selected quantities under each line's
// first child unit label. Lines without child units are excluded here but
// still count toward TotalMasterUnit.
func AggregateByChildUnit(lines []models.SelectedProduct) map[string]float64 {
	totals := make(map[string]float64)
	for _, line := range lines {
		if cu := line.FirstChildUnit(); cu != nil {
			totals[cu.Unit] += line.Quantity
		}
	}
	return totals
}

// TotalMasterUnit sums all selected quantities in the master unit.
func TotalMasterUnit(lines []models.SelectedProduct) float64 {
	total := decimal.Zero
	for _, line := range lines {
		q := decimal.NewFromFloat(line.Quantity)
		if cu := line.FirstChildUnit(); cu != nil {
			q = q.Mul(decimal.NewFromFloat(cu.ConversionValue))
		}
		total = total.Add(q)
	}
	f, _ := total.Float64()
	return f
}

// FormatQuantity renders a quantity for display: whole numbers without a
// decimal point, anything else rounded to 2 places. The stored value keeps
// full precision.
func FormatQuantity(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.IsInteger() {
		return d.String()
	}
	return d.Round(2).String()
}

// SelectionSummary is the aggregate view of the current selection shown next
// to the line items: total in master unit plus the per-packaging breakdown,
// e.g. "250 = 3 x bag 50kg + 2 x bag 60kg".
type SelectionSummary struct {
	TotalMasterUnit float64            `json:"total_master_unit"`
	ByChildUnit     map[string]float64 `json:"by_child_unit"`
	Display         string             `json:"display"`
}

// Summarize builds the aggregate breakdown for a selection. Child unit labels
// appear in first-seen line order so the display is stable.
func Summarize(lines []models.SelectedProduct) SelectionSummary {
	byUnit := AggregateByChildUnit(lines)
	total := TotalMasterUnit(lines)

	var labels []string
	seen := make(map[string]bool)
	for _, line := range lines {
		if cu := line.FirstChildUnit(); cu != nil && !seen[cu.Unit] {
			seen[cu.Unit] = true
			labels = append(labels, cu.Unit)
		}
	}

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s x %s", FormatQuantity(byUnit[label]), label))
	}

	display := FormatQuantity(total)
	if len(parts) > 0 {
		display = fmt.Sprintf("%s = %s", display, strings.Join(parts, " + "))
	}

	return SelectionSummary{
		TotalMasterUnit: total,
		ByChildUnit:     byUnit,
		Display:         display,
	}
}
