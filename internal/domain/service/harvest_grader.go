package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// HarvestGrader assigns quality grades from post-harvest measurements and
// matches graded batches to buying vendors.
type HarvestGrader struct{}

// NewHarvestGrader creates a grader.
func NewHarvestGrader() *HarvestGrader {
	return &HarvestGrader{}
}

// Grade classifies a batch from its defect and moisture percentages.
// Both limits must hold for a grade, otherwise the batch falls through to
// the next one.
func (g *HarvestGrader) Grade(defectPct, moisturePct float64) valueobject.HarvestGrade {
	switch {
	case defectPct <= 2 && moisturePct <= 12:
		return valueobject.HarvestGradeA
	case defectPct <= 5 && moisturePct <= 14:
		return valueobject.HarvestGradeB
	default:
		return valueobject.HarvestGradeC
	}
}

// VendorMatch pairs a vendor with the price it would pay for a batch.
type VendorMatch struct {
	Vendor     *model.Vendor
	PricePerKg decimal.Decimal
	TotalPrice decimal.Decimal
}

// MatchVendors returns the vendors able to take the batch, best price first.
// A vendor qualifies when it buys the crop, accepts the batch's grade and
// has capacity for the full quantity. Ties on price keep directory order.
func (g *HarvestGrader) MatchVendors(batch *model.HarvestBatch, vendors []*model.Vendor) []VendorMatch {
	var matches []VendorMatch
	qty := batch.QuantityKg()
	for _, v := range vendors {
		if !v.Buys(batch.Crop()) {
			continue
		}
		if !batch.Grade().AtLeast(v.MinGrade) {
			continue
		}
		if v.CapacityKg.LessThan(qty) {
			continue
		}
		matches = append(matches, VendorMatch{
			Vendor:     v,
			PricePerKg: v.PricePerKg,
			TotalPrice: v.PricePerKg.Mul(qty).Round(2),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].PricePerKg.GreaterThan(matches[j].PricePerKg)
	})
	return matches
}

// BestMatch returns the highest paying qualified vendor, or nil when no
// vendor can take the batch.
func (g *HarvestGrader) BestMatch(batch *model.HarvestBatch, vendors []*model.Vendor) *VendorMatch {
	matches := g.MatchVendors(batch, vendors)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}
