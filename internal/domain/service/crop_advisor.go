package service

import (
	"strings"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
)

// CropStageInfo describes one stage in a crop's calendar, indexed by days
// after sowing (DAS).
type CropStageInfo struct {
	Crop       string
	Stage      string
	StartDay   int
	EndDay     int
	Operations []string
	Priority   valueobject.Priority
}

// PestRisk is a pest the farmer should scout for under current conditions.
type PestRisk struct {
	Pest              string
	Crop              string
	HumidityThreshold float64
	Severity          valueobject.Priority
	Advisory          i18n.Text
}

// CropAdvisor maps field age to the crop calendar and flags humidity-driven
// pest risks.
type CropAdvisor struct {
	catalog *i18n.Catalog
}

// NewCropAdvisor creates an advisor backed by the message catalog.
func NewCropAdvisor(catalog *i18n.Catalog) *CropAdvisor {
	return &CropAdvisor{catalog: catalog}
}

// stageCalendars holds the fixed per-crop growth calendars. Day ranges
// partition each crop's lifecycle without gaps.
var stageCalendars = map[string][]CropStageInfo{
	"rice": {
		{Crop: "Rice", Stage: "Nursery", StartDay: 0, EndDay: 25, Priority: valueobject.PriorityHigh,
			Operations: []string{"Maintain 2-3 cm water in nursery", "Apply basal dose before transplanting"}},
		{Crop: "Rice", Stage: "Transplanting", StartDay: 26, EndDay: 35, Priority: valueobject.PriorityHigh,
			Operations: []string{"Transplant 2-3 seedlings per hill", "Keep shallow standing water"}},
		{Crop: "Rice", Stage: "Tillering", StartDay: 36, EndDay: 60, Priority: valueobject.PriorityMedium,
			Operations: []string{"First top dressing of urea", "Hand weed or use rotary weeder"}},
		{Crop: "Rice", Stage: "Panicle Initiation", StartDay: 61, EndDay: 85, Priority: valueobject.PriorityHigh,
			Operations: []string{"Second top dressing", "Monitor for stem borer"}},
		{Crop: "Rice", Stage: "Flowering", StartDay: 86, EndDay: 105, Priority: valueobject.PriorityHigh,
			Operations: []string{"Maintain continuous water", "Scout for planthopper at the base"}},
		{Crop: "Rice", Stage: "Grain Filling", StartDay: 106, EndDay: 130, Priority: valueobject.PriorityMedium,
			Operations: []string{"Alternate wetting and drying", "Bird scaring near maturity"}},
		{Crop: "Rice", Stage: "Harvest", StartDay: 131, EndDay: 160, Priority: valueobject.PriorityHigh,
			Operations: []string{"Drain the field 10 days ahead", "Harvest at 20-22% grain moisture"}},
	},
	"banana": {
		{Crop: "Banana", Stage: "Establishment", StartDay: 0, EndDay: 60, Priority: valueobject.PriorityHigh,
			Operations: []string{"Water basins twice a week", "Mulch with dry leaves"}},
		{Crop: "Banana", Stage: "Vegetative", StartDay: 61, EndDay: 180, Priority: valueobject.PriorityMedium,
			Operations: []string{"Monthly fertilizer split doses", "Remove side suckers"}},
		{Crop: "Banana", Stage: "Flower Initiation", StartDay: 181, EndDay: 240, Priority: valueobject.PriorityHigh,
			Operations: []string{"Prop the pseudostem", "Final potash dose"}},
		{Crop: "Banana", Stage: "Bunch Development", StartDay: 241, EndDay: 330, Priority: valueobject.PriorityMedium,
			Operations: []string{"Cover the bunch", "Remove the male bud after the last hand"}},
		{Crop: "Banana", Stage: "Harvest", StartDay: 331, EndDay: 365, Priority: valueobject.PriorityHigh,
			Operations: []string{"Harvest at 75-80% maturity for transport"}},
	},
	"coconut": {
		{Crop: "Coconut", Stage: "Planting", StartDay: 0, EndDay: 365, Priority: valueobject.PriorityHigh,
			Operations: []string{"Shade young palms", "Irrigate 45 litres per palm per week"}},
		{Crop: "Coconut", Stage: "Juvenile", StartDay: 366, EndDay: 1460, Priority: valueobject.PriorityMedium,
			Operations: []string{"Husk burial in basins", "Annual NPK in two splits"}},
		{Crop: "Coconut", Stage: "Bearing", StartDay: 1461, EndDay: 10950, Priority: valueobject.PriorityLow,
			Operations: []string{"Crown cleaning twice a year", "Leaf axil filling against rhinoceros beetle"}},
	},
	"black pepper": {
		{Crop: "Black Pepper", Stage: "Vine Establishment", StartDay: 0, EndDay: 365, Priority: valueobject.PriorityHigh,
			Operations: []string{"Tie vines to standards", "Shade regulation"}},
		{Crop: "Black Pepper", Stage: "Vegetative", StartDay: 366, EndDay: 1095, Priority: valueobject.PriorityMedium,
			Operations: []string{"Basin manuring before monsoon", "Prune runner shoots"}},
		{Crop: "Black Pepper", Stage: "Bearing", StartDay: 1096, EndDay: 7300, Priority: valueobject.PriorityMedium,
			Operations: []string{"Harvest when one or two berries turn red", "Watch for quick wilt after rains"}},
	},
	"tomato": {
		{Crop: "Tomato", Stage: "Nursery", StartDay: 0, EndDay: 25, Priority: valueobject.PriorityHigh,
			Operations: []string{"Raised nursery beds", "Harden seedlings before transplanting"}},
		{Crop: "Tomato", Stage: "Vegetative", StartDay: 26, EndDay: 50, Priority: valueobject.PriorityMedium,
			Operations: []string{"Stake the plants", "First top dressing"}},
		{Crop: "Tomato", Stage: "Flowering", StartDay: 51, EndDay: 70, Priority: valueobject.PriorityHigh,
			Operations: []string{"Avoid moisture stress", "Install pheromone traps for fruit borer"}},
		{Crop: "Tomato", Stage: "Fruiting", StartDay: 71, EndDay: 100, Priority: valueobject.PriorityMedium,
			Operations: []string{"Harvest at breaker stage for market"}},
	},
	"ginger": {
		{Crop: "Ginger", Stage: "Sprouting", StartDay: 0, EndDay: 40, Priority: valueobject.PriorityHigh,
			Operations: []string{"Mulch beds with green leaves", "Ensure drainage in heavy rain"}},
		{Crop: "Ginger", Stage: "Vegetative", StartDay: 41, EndDay: 150, Priority: valueobject.PriorityMedium,
			Operations: []string{"Second mulching at 40-45 days", "Earthing up with top dressing"}},
		{Crop: "Ginger", Stage: "Rhizome Development", StartDay: 151, EndDay: 210, Priority: valueobject.PriorityMedium,
			Operations: []string{"Stop irrigation near maturity", "Watch for soft rot in waterlogged patches"}},
		{Crop: "Ginger", Stage: "Harvest", StartDay: 211, EndDay: 240, Priority: valueobject.PriorityHigh,
			Operations: []string{"Harvest when leaves dry fully for dry ginger"}},
	},
}

// pestCatalog holds the fixed pest risk table. A pest is flagged when its
// crop matches one of the farmer's crops and ambient humidity meets the
// threshold.
var pestCatalog = []struct {
	pest      string
	crop      string
	humidity  float64
	severity  valueobject.Priority
	messageID string
}{
	{pest: "Brown Planthopper", crop: "Rice", humidity: 80, severity: valueobject.PriorityHigh, messageID: "pest.brown_planthopper"},
	{pest: "Leaf Folder", crop: "Rice", humidity: 75, severity: valueobject.PriorityMedium, messageID: "pest.leaf_folder"},
	{pest: "Sigatoka Leaf Spot", crop: "Banana", humidity: 75, severity: valueobject.PriorityMedium, messageID: "pest.sigatoka"},
	{pest: "Rhinoceros Beetle", crop: "Coconut", humidity: 70, severity: valueobject.PriorityMedium, messageID: "pest.rhinoceros_beetle"},
	{pest: "Pollu Beetle", crop: "Black Pepper", humidity: 80, severity: valueobject.PriorityMedium, messageID: "pest.pollu_beetle"},
	{pest: "Quick Wilt", crop: "Black Pepper", humidity: 85, severity: valueobject.PriorityHigh, messageID: "pest.quick_wilt"},
	{pest: "Fruit Borer", crop: "Tomato", humidity: 70, severity: valueobject.PriorityMedium, messageID: "pest.fruit_borer"},
	{pest: "Soft Rot", crop: "Ginger", humidity: 85, severity: valueobject.PriorityHigh, messageID: "pest.soft_rot"},
}

// StageFor resolves the calendar stage for a crop at the given date.
//
// The crop name is matched case-insensitively by substring containment in
// either direction ("paddy rice" finds "rice"). A planting date in the
// future returns nil. A field older than the last defined range is clamped
// to the last stage rather than dropped, so long-standing orchards still get
// advice.
func (a *CropAdvisor) StageFor(cropName string, plantingDate, today time.Time) *CropStageInfo {
	stages := findCalendar(cropName)
	if stages == nil {
		return nil
	}

	das := int(today.Sub(plantingDate).Hours() / 24)
	if das < 0 {
		return nil
	}

	for i := range stages {
		if das >= stages[i].StartDay && das <= stages[i].EndDay {
			stage := stages[i]
			return &stage
		}
	}

	last := stages[len(stages)-1]
	return &last
}

func findCalendar(cropName string) []CropStageInfo {
	needle := strings.ToLower(strings.TrimSpace(cropName))
	if needle == "" {
		return nil
	}
	for key, stages := range stageCalendars {
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return stages
		}
	}
	return nil
}

// PestRisks filters the pest catalog against the farmer's crops and the
// current ambient humidity.
func (a *CropAdvisor) PestRisks(crops []string, humidityPct float64) []PestRisk {
	var risks []PestRisk
	for _, entry := range pestCatalog {
		if humidityPct < entry.humidity {
			continue
		}
		for _, crop := range crops {
			if cropsMatch(crop, entry.crop) {
				risks = append(risks, PestRisk{
					Pest:              entry.pest,
					Crop:              entry.crop,
					HumidityThreshold: entry.humidity,
					Severity:          entry.severity,
					Advisory:          a.catalog.Pair(entry.messageID),
				})
				break
			}
		}
	}
	return risks
}

func cropsMatch(a, b string) bool {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
