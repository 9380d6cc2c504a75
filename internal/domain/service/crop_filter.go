package service

import (
	"sort"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// CropRequirement is a static catalog entry describing what a crop needs
// from the soil.
type CropRequirement struct {
	Name  string
	MinN  valueobject.NutrientLevel
	MinP  valueobject.NutrientLevel
	MinK  valueobject.NutrientLevel
	PHMin float64
	PHMax float64
}

// maxSuitableCrops caps the list returned to the farmer.
const maxSuitableCrops = 12

// cropCatalog lists the crops commonly grown in Kerala with their soil
// requirements. pH ranges follow Kerala Agricultural University package of
// practices figures, rounded to one decimal.
var cropCatalog = []CropRequirement{
	{Name: "Rice", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 5.0, PHMax: 6.5},
	{Name: "Coconut", MinN: valueobject.NutrientLevelLow, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 5.2, PHMax: 8.0},
	{Name: "Banana", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelMedium, MinK: valueobject.NutrientLevelOptimal, PHMin: 5.5, PHMax: 7.0},
	{Name: "Black Pepper", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 5.5, PHMax: 6.5},
	{Name: "Rubber", MinN: valueobject.NutrientLevelLow, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelLow, PHMin: 4.5, PHMax: 6.0},
	{Name: "Tapioca", MinN: valueobject.NutrientLevelLow, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 4.5, PHMax: 6.5},
	{Name: "Ginger", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelMedium, MinK: valueobject.NutrientLevelMedium, PHMin: 5.5, PHMax: 6.5},
	{Name: "Turmeric", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 5.0, PHMax: 6.5},
	{Name: "Cardamom", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 4.5, PHMax: 6.0},
	{Name: "Arecanut", MinN: valueobject.NutrientLevelLow, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 5.0, PHMax: 8.0},
	{Name: "Pineapple", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 4.5, PHMax: 5.5},
	{Name: "Tomato", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelMedium, MinK: valueobject.NutrientLevelMedium, PHMin: 6.0, PHMax: 7.0},
	{Name: "Cowpea", MinN: valueobject.NutrientLevelLow, MinP: valueobject.NutrientLevelMedium, MinK: valueobject.NutrientLevelLow, PHMin: 5.5, PHMax: 6.5},
	{Name: "Okra", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelMedium, MinK: valueobject.NutrientLevelMedium, PHMin: 6.0, PHMax: 6.8},
	{Name: "Brinjal", MinN: valueobject.NutrientLevelMedium, MinP: valueobject.NutrientLevelMedium, MinK: valueobject.NutrientLevelMedium, PHMin: 5.5, PHMax: 6.6},
	{Name: "Nutmeg", MinN: valueobject.NutrientLevelLow, MinP: valueobject.NutrientLevelLow, MinK: valueobject.NutrientLevelMedium, PHMin: 5.5, PHMax: 7.0},
}

// SuitableCrops filters and ranks catalog crops against a classified soil
// test.
//
// A crop qualifies when its pH range contains the measured pH AND at least
// one of its three nutrient minimums is met by the corresponding band. The
// nutrient check is deliberately an OR across nutrients, not an AND, to
// avoid over-filtering sparse soil tests. Results are ranked by how many
// minimums are met (stable within a rank) and capped at 12 entries.
func SuitableCrops(
	nitrogen, phosphorus, potassium valueobject.NutrientStatus,
	ph valueobject.PHStatus,
) []CropRequirement {
	type ranked struct {
		crop CropRequirement
		hits int
	}

	var candidates []ranked
	for _, crop := range cropCatalog {
		if ph.Value < crop.PHMin || ph.Value > crop.PHMax {
			continue
		}

		hits := 0
		if nitrogen.Level.AtLeast(crop.MinN) {
			hits++
		}
		if phosphorus.Level.AtLeast(crop.MinP) {
			hits++
		}
		if potassium.Level.AtLeast(crop.MinK) {
			hits++
		}
		if hits == 0 {
			continue
		}

		candidates = append(candidates, ranked{crop: crop, hits: hits})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].hits > candidates[j].hits
	})

	if len(candidates) > maxSuitableCrops {
		candidates = candidates[:maxSuitableCrops]
	}

	out := make([]CropRequirement, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.crop)
	}
	return out
}
