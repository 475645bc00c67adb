package services

import (
	"fmt"
	"math"
	"sort"

	"oem-insights/models"
	"oem-insights/utils"
)

const (
	topRegionCount  = 8
	topRegionalRank = 10
	neutralColor    = "#6b7280"
	statusConfirmed = "Yes"
	statusPotential = "Potential"
	statusInferred  = "Inferred"
	statusUnknown   = "Unknown"
	statusNoInfo    = "Information Unavailable"
)

// statusDisplay maps the four canonical adoption statuses to their report
// label and chart color. Anything else passes through with a neutral color.
var statusDisplay = map[string]struct {
	label string
	color string
}{
	statusConfirmed: {"Confirmed Users", "#22c55e"},
	statusPotential: {"Potential Users", "#3b82f6"},
	statusUnknown:   {"Unknown Status", "#ef4444"},
	statusInferred:  {"Inferred Users", "#f59e0b"},
}

// AnalyticsService computes every derived view of a snapshot in one pass
// family. Generate is a pure function: same snapshot in, same bundle out,
// nothing cached between calls.
type AnalyticsService struct {
	logger *utils.Logger
}

// NewAnalyticsService creates an AnalyticsService with the given logger.
func NewAnalyticsService(logger *utils.Logger) *AnalyticsService {
	return &AnalyticsService{logger: logger}
}

// counter tracks group counts while preserving first-seen key order, so
// rankings break ties deterministically by record order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (g *counter) add(key string) {
	if _, seen := g.counts[key]; !seen {
		g.order = append(g.order, key)
	}
	g.counts[key]++
}

// Generate computes the full analytics bundle for one snapshot. An empty
// snapshot yields an all-zero bundle: every percentage is "0.0", every list
// empty — never a division fault.
func (s *AnalyticsService) Generate(companies []*models.Company) *models.AnalyticsBundle {
	total := len(companies)

	statuses := newCounter()
	regions := newCounter()
	categories := newCounter()
	for _, c := range companies {
		statuses.add(c.AdoptionStatus)
		if c.Region != "" && c.Region != models.Absent {
			regions.add(c.Region)
		}
		categories.add(c.Category())
	}

	bundle := &models.AnalyticsBundle{
		StatusBreakdown:       statusBreakdown(statuses, total),
		TopRegions:            topRegions(regions, total),
		EquipmentDistribution: equipmentDistribution(categories, total),
		CategoryOpportunities: s.categoryOpportunities(companies, categories),
		RegionalOpportunities: regionalOpportunities(companies, regions),
	}
	bundle.Metrics = headlineMetrics(companies, statuses, regions, bundle.CategoryOpportunities)
	bundle.Insights = businessInsights(statuses, bundle)

	s.logger.Debug("[analytics] Bundle: %d statuses, %d regions, %d categories over %d records",
		len(bundle.StatusBreakdown), regions.size(), len(bundle.EquipmentDistribution), total)
	return bundle
}

func (g *counter) size() int { return len(g.order) }

func statusBreakdown(statuses *counter, total int) []models.StatusSlice {
	slices := make([]models.StatusSlice, 0, len(statuses.order))
	for _, status := range statuses.order {
		label, color := status, neutralColor
		if d, ok := statusDisplay[status]; ok {
			label, color = d.label, d.color
		}
		slices = append(slices, models.StatusSlice{
			Status:     status,
			Label:      label,
			Count:      statuses.counts[status],
			Percentage: pct(statuses.counts[status], total),
			Color:      color,
		})
	}
	return slices
}

func topRegions(regions *counter, total int) []models.RegionSlice {
	ranked := rankByCount(regions)
	if len(ranked) > topRegionCount {
		ranked = ranked[:topRegionCount]
	}

	slices := make([]models.RegionSlice, 0, len(ranked))
	for _, region := range ranked {
		slices = append(slices, models.RegionSlice{
			Region:     region,
			Count:      regions.counts[region],
			Percentage: pct(regions.counts[region], total),
		})
	}
	return slices
}

func equipmentDistribution(categories *counter, total int) []models.EquipmentSlice {
	ranked := rankByCount(categories)

	slices := make([]models.EquipmentSlice, 0, len(ranked))
	for _, category := range ranked {
		slices = append(slices, models.EquipmentSlice{
			Category:   category,
			Count:      categories.counts[category],
			Percentage: pct(categories.counts[category], total),
		})
	}
	return slices
}

// categoryOpportunities scores each equipment category. Membership is
// re-derived per record from the raw label via InCategory, never reused
// from the distribution grouping, so the two views can be recomputed
// independently without drifting apart.
func (s *AnalyticsService) categoryOpportunities(companies []*models.Company, categories *counter) []models.CategoryOpportunity {
	opportunities := make([]models.CategoryOpportunity, 0, len(categories.order))
	for _, category := range categories.order {
		var catTotal, confirmed, potential, inferred int
		for _, c := range companies {
			if !c.InCategory(category) {
				continue
			}
			catTotal++
			switch c.AdoptionStatus {
			case statusConfirmed:
				confirmed++
			case statusPotential:
				potential++
			case statusInferred:
				inferred++
			}
		}

		opportunities = append(opportunities, models.CategoryOpportunity{
			Category:         category,
			Total:            catTotal,
			Confirmed:        confirmed,
			Potential:        potential,
			Inferred:         inferred,
			Unknown:          catTotal - confirmed - potential - inferred,
			PenetrationRate:  pct(confirmed, catTotal),
			OpportunityScore: float64(potential) + 0.5*float64(inferred),
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].OpportunityScore > opportunities[j].OpportunityScore
	})
	return opportunities
}

func regionalOpportunities(companies []*models.Company, regions *counter) []models.RegionOpportunity {
	ranked := make([]models.RegionOpportunity, 0, len(regions.order))
	for _, region := range regions.order {
		var confirmed, potential int
		for _, c := range companies {
			if c.Region != region {
				continue
			}
			switch c.AdoptionStatus {
			case statusConfirmed:
				confirmed++
			case statusPotential:
				potential++
			}
		}

		ranked = append(ranked, models.RegionOpportunity{
			Region:          region,
			Total:           regions.counts[region],
			Confirmed:       confirmed,
			Potential:       potential,
			PenetrationRate: pct(confirmed, regions.counts[region]),
			MarketPotential: potential,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	if len(ranked) > topRegionalRank {
		ranked = ranked[:topRegionalRank]
	}
	return ranked
}

func headlineMetrics(companies []*models.Company, statuses, regions *counter, opportunities []models.CategoryOpportunity) models.Metrics {
	total := len(companies)
	confirmed := statuses.counts[statusConfirmed]
	potential := statuses.counts[statusPotential]
	inferred := statuses.counts[statusInferred]
	unknownTotal := statuses.counts[statusUnknown] + statuses.counts[statusNoInfo]

	highValue := 0
	for i, opp := range opportunities {
		if i >= 2 {
			break
		}
		highValue += opp.Potential
	}

	return models.Metrics{
		TotalCompanies: models.Metric{
			Value:       formatInt(total),
			ChangeType:  "neutral",
			Description: "Total OEM Companies in Database",
		},
		MarketPenetration: models.Metric{
			Value:       pct(confirmed, total) + "%",
			ChangeType:  "increase",
			Description: "Current Motor Market Penetration",
		},
		BusinessOpportunity: models.Metric{
			Value:       formatInt(potential + inferred + int(math.Floor(0.3*float64(unknownTotal)))),
			ChangeType:  "increase",
			Description: "Estimated Business Opportunities",
		},
		GeographicReach: models.Metric{
			Value:       formatInt(regions.size()),
			ChangeType:  "neutral",
			Description: "Regions with OEM Presence",
		},
		HighValueTargets: models.Metric{
			Value:       formatInt(highValue),
			ChangeType:  "increase",
			Description: "High-Priority Potential Customers",
		},
		ConfirmedUsers: models.Metric{
			Value:       formatInt(confirmed),
			ChangeType:  "increase",
			Description: "Confirmed Motor Users",
		},
	}
}

func businessInsights(statuses *counter, bundle *models.AnalyticsBundle) models.BusinessInsights {
	insights := models.BusinessInsights{
		TopEquipmentCategory: models.Absent,
		TopRegion:            models.Absent,
		AveragePenetration:   "0.0",
		TotalMarketPotential: statuses.counts[statusPotential] + statuses.counts[statusInferred],
	}

	if len(bundle.EquipmentDistribution) > 0 {
		insights.TopEquipmentCategory = bundle.EquipmentDistribution[0].Category
	}
	if len(bundle.TopRegions) > 0 {
		insights.TopRegion = bundle.TopRegions[0].Region
	}
	if n := len(bundle.RegionalOpportunities); n > 0 {
		// Average of the already-rounded regional rates, matching what the
		// report displays.
		var sum float64
		for _, r := range bundle.RegionalOpportunities {
			sum += roundTo1(100 * float64(r.Confirmed) / float64(r.Total))
		}
		insights.AveragePenetration = fmt.Sprintf("%.1f", sum/float64(n))
	}
	return insights
}

// rankByCount returns the counter's keys sorted descending by count,
// first-seen order breaking ties.
func rankByCount(g *counter) []string {
	ranked := make([]string, len(g.order))
	copy(ranked, g.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return g.counts[ranked[i]] > g.counts[ranked[j]]
	})
	return ranked
}

// pct formats 100*count/total to one decimal. A zero denominator is defined
// as "0.0", never NaN.
func pct(count, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", 100*float64(count)/float64(total))
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatInt formats an integer with comma thousands separators.
func formatInt(n int) string {
	if n < 0 {
		return "-" + formatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", formatInt(n/1000), n%1000)
}
