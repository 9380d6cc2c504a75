package service

import (
	"sort"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
)

// Recommendation is one remediation action derived from a soil report.
type Recommendation struct {
	Type     string
	Priority valueobject.Priority
	Message  i18n.Text
}

// RecommendationGenerator turns classified soil bands into a prioritized,
// bilingual remediation list.
type RecommendationGenerator struct {
	catalog *i18n.Catalog
}

// NewRecommendationGenerator creates a generator backed by the message catalog.
func NewRecommendationGenerator(catalog *i18n.Catalog) *RecommendationGenerator {
	return &RecommendationGenerator{catalog: catalog}
}

// Generate emits recommendations in fixed rule order (N, P, K, pH, organic
// matter) and stable-sorts them by priority, so equal priorities keep their
// generation order.
//
// Rules: a LOW nutrient yields a deficiency recommendation with a concrete
// dosage and an organic alternative; MEDIUM yields a lighter maintenance
// entry; OPTIMAL yields nothing. pH below 5.5 yields a lime correction,
// above 8.0 a gypsum/sulfur correction. One generic organic-matter entry is
// always appended at low priority.
func (g *RecommendationGenerator) Generate(
	nitrogen, phosphorus, potassium valueobject.NutrientStatus,
	ph valueobject.PHStatus,
) []Recommendation {
	var recos []Recommendation

	nutrientRules := []struct {
		status         valueobject.NutrientStatus
		deficiencyType string
		deficiencyKey  string
		maintainType   string
		maintainKey    string
	}{
		{nitrogen, "nitrogen_deficiency", "reco.n.deficiency", "nitrogen_maintenance", "reco.n.maintenance"},
		{phosphorus, "phosphorus_deficiency", "reco.p.deficiency", "phosphorus_maintenance", "reco.p.maintenance"},
		{potassium, "potassium_deficiency", "reco.k.deficiency", "potassium_maintenance", "reco.k.maintenance"},
	}

	for _, rule := range nutrientRules {
		switch {
		case rule.status.Level.Equal(valueobject.NutrientLevelLow):
			recos = append(recos, Recommendation{
				Type:     rule.deficiencyType,
				Priority: valueobject.PriorityHigh,
				Message:  g.catalog.Pair(rule.deficiencyKey),
			})
		case rule.status.Level.Equal(valueobject.NutrientLevelMedium):
			recos = append(recos, Recommendation{
				Type:     rule.maintainType,
				Priority: valueobject.PriorityMedium,
				Message:  g.catalog.Pair(rule.maintainKey),
			})
		}
	}

	if ph.Value < 5.5 {
		recos = append(recos, Recommendation{
			Type:     "ph_correction_lime",
			Priority: valueobject.PriorityHigh,
			Message:  g.catalog.Pair("reco.ph.lime"),
		})
	} else if ph.Value > 8.0 {
		recos = append(recos, Recommendation{
			Type:     "ph_correction_gypsum",
			Priority: valueobject.PriorityHigh,
			Message:  g.catalog.Pair("reco.ph.gypsum"),
		})
	}

	recos = append(recos, Recommendation{
		Type:     "organic_matter",
		Priority: valueobject.PriorityLow,
		Message:  g.catalog.Pair("reco.organic"),
	})

	sort.SliceStable(recos, func(i, j int) bool {
		return recos[i].Priority.Rank() < recos[j].Priority.Rank()
	})

	return recos
}
