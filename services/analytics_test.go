package services

import (
	"testing"

	"oem-insights/models"
	"oem-insights/utils"
)

func newTestLogger() *utils.Logger {
	l := utils.NewLogger()
	l.SetLevel("error")
	return l
}

func sampleCompanies() []*models.Company {
	return []*models.Company{
		{SeqNo: 1, Equipment: "Pump - Submersible, 5HP", Name: "Aqua Industries", City: "Pune", Region: "Maharashtra", AdoptionStatus: "Yes"},
		{SeqNo: 2, Equipment: "Pump - Centrifugal", Name: "Brine Pumps", City: "Mumbai", Region: "Maharashtra", AdoptionStatus: "Potential"},
		{SeqNo: 3, Equipment: "Air Compressor - Rotary Screw", Name: "Gamma Air", City: "Ahmedabad", Region: "Gujarat", AdoptionStatus: "Yes"},
		{SeqNo: 4, Equipment: "Industrial Fan - Axial", Name: "Delta Flow", City: "Surat", Region: "Gujarat", AdoptionStatus: "Inferred"},
		{SeqNo: 5, Equipment: "Gearbox - Helical", Name: "Epsilon Drives", City: "N/A", Region: "N/A", AdoptionStatus: "Unknown"},
		{SeqNo: 6, Equipment: "Packaging Machinery", Name: "Zeta Pack", City: "Chennai", Region: "Tamil Nadu", AdoptionStatus: "Information Unavailable"},
	}
}

func TestStatusBreakdown(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(sampleCompanies())

	if len(b.StatusBreakdown) != 5 {
		t.Fatalf("status groups: got %d, want 5", len(b.StatusBreakdown))
	}

	first := b.StatusBreakdown[0]
	if first.Status != "Yes" || first.Count != 2 || first.Percentage != "33.3" {
		t.Errorf("first slice: got %+v, want Yes/2/33.3", first)
	}
	if first.Label != "Confirmed Users" || first.Color != "#22c55e" {
		t.Errorf("Yes display: got %q/%q", first.Label, first.Color)
	}

	// Non-canonical statuses pass through unlabeled with the neutral color.
	last := b.StatusBreakdown[4]
	if last.Status != "Information Unavailable" || last.Label != "Information Unavailable" {
		t.Errorf("pass-through label: got %q", last.Label)
	}
	if last.Color != "#6b7280" {
		t.Errorf("pass-through color: got %q", last.Color)
	}
}

func TestStatusCountsSumToTotal(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	companies := sampleCompanies()
	b := svc.Generate(companies)

	sum := 0
	for _, slice := range b.StatusBreakdown {
		sum += slice.Count
	}
	if sum != len(companies) {
		t.Errorf("status counts sum: got %d, want %d", sum, len(companies))
	}
}

func TestSpecExampleDistribution(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate([]*models.Company{
		{SeqNo: 1, AdoptionStatus: "Yes"},
		{SeqNo: 2, AdoptionStatus: "Yes"},
		{SeqNo: 3, AdoptionStatus: "Potential"},
	})

	if len(b.StatusBreakdown) != 2 {
		t.Fatalf("status groups: got %d, want 2", len(b.StatusBreakdown))
	}
	if b.StatusBreakdown[0].Percentage != "66.7" || b.StatusBreakdown[1].Percentage != "33.3" {
		t.Errorf("percentages: got %s/%s, want 66.7/33.3",
			b.StatusBreakdown[0].Percentage, b.StatusBreakdown[1].Percentage)
	}
	if b.Metrics.MarketPenetration.Value != "66.7%" {
		t.Errorf("market penetration: got %q, want 66.7%%", b.Metrics.MarketPenetration.Value)
	}
}

func TestTopRegionsExcludeSentinel(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(sampleCompanies())

	if len(b.TopRegions) != 3 {
		t.Fatalf("regions: got %d, want 3", len(b.TopRegions))
	}
	for _, r := range b.TopRegions {
		if r.Region == models.Absent {
			t.Error("sentinel region should be excluded")
		}
	}
	if b.TopRegions[0].Region != "Maharashtra" || b.TopRegions[0].Count != 2 {
		t.Errorf("top region: got %s/%d, want Maharashtra/2", b.TopRegions[0].Region, b.TopRegions[0].Count)
	}
	// Percentage is of the full total (6), not the non-sentinel subset (5).
	if b.TopRegions[0].Percentage != "33.3" {
		t.Errorf("top region percentage: got %s, want 33.3", b.TopRegions[0].Percentage)
	}
}

func TestTopRegionsCapped(t *testing.T) {
	var companies []*models.Company
	regions := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	for i, r := range regions {
		companies = append(companies, &models.Company{SeqNo: i + 1, Region: r, AdoptionStatus: "Unknown"})
	}

	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(companies)
	if len(b.TopRegions) != 8 {
		t.Errorf("top regions: got %d, want 8", len(b.TopRegions))
	}
	if b.Metrics.GeographicReach.Value != "10" {
		t.Errorf("geographic reach counts all regions: got %q, want 10", b.Metrics.GeographicReach.Value)
	}
}

func TestEquipmentDistributionRanking(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(sampleCompanies())

	if len(b.EquipmentDistribution) != 5 {
		t.Fatalf("categories: got %d, want 5", len(b.EquipmentDistribution))
	}
	if b.EquipmentDistribution[0].Category != "Pumps" || b.EquipmentDistribution[0].Count != 2 {
		t.Errorf("top category: got %s/%d, want Pumps/2",
			b.EquipmentDistribution[0].Category, b.EquipmentDistribution[0].Count)
	}
	// Ties keep first-seen record order.
	want := []string{"Pumps", "Compressors", "Fans/Blowers", "Gearboxes", "Packaging Machinery"}
	for i, w := range want {
		if b.EquipmentDistribution[i].Category != w {
			t.Errorf("rank %d: got %s, want %s", i, b.EquipmentDistribution[i].Category, w)
		}
	}
}

func TestCategoryClassificationPrecedence(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Pump - Submersible, 5HP", "Pumps"},
		{"Gear Pump - Industrial", "Pumps"}, // pump beats gear
		{"Air Compressor - Rotary Screw", "Compressors"},
		{"Blower - Roots Type", "Fans/Blowers"},
		{"Fan Gearbox - Cooling Tower", "Fans/Blowers"}, // fan beats gearbox
		{"Gear Coupling - Flexible", "Gearboxes"},
		{"Conveyor - Belt", "Conveyors"},
		{"Packaging Machinery", "Packaging Machinery"},
		{"CNC Machines - Vertical", "CNC Machines"},
	}

	for _, tt := range tests {
		c := &models.Company{Equipment: tt.label}
		if got := c.Category(); got != tt.want {
			t.Errorf("Category(%q) = %q; want %q", tt.label, got, tt.want)
		}
	}
}

func TestCategoryOpportunityScoring(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(sampleCompanies())

	top := b.CategoryOpportunities[0]
	if top.Category != "Pumps" {
		t.Fatalf("top opportunity: got %s, want Pumps", top.Category)
	}
	if top.Confirmed != 1 || top.Potential != 1 || top.Inferred != 0 || top.Unknown != 0 {
		t.Errorf("Pumps split: got %+v", top)
	}
	if top.OpportunityScore != 1.0 {
		t.Errorf("Pumps score: got %.1f, want 1.0", top.OpportunityScore)
	}
	if top.PenetrationRate != "50.0" {
		t.Errorf("Pumps penetration: got %s, want 50.0", top.PenetrationRate)
	}

	// Inferred weighs half a potential.
	if b.CategoryOpportunities[1].Category != "Fans/Blowers" {
		t.Errorf("second opportunity: got %s, want Fans/Blowers", b.CategoryOpportunities[1].Category)
	}
}

func TestCategoryOpportunityCountIdentity(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(sampleCompanies())

	for _, opp := range b.CategoryOpportunities {
		if opp.Confirmed+opp.Potential+opp.Inferred+opp.Unknown != opp.Total {
			t.Errorf("%s: counts %d+%d+%d+%d != total %d", opp.Category,
				opp.Confirmed, opp.Potential, opp.Inferred, opp.Unknown, opp.Total)
		}
	}
}

func TestRegionalOpportunities(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(sampleCompanies())

	if len(b.RegionalOpportunities) != 3 {
		t.Fatalf("regional entries: got %d, want 3", len(b.RegionalOpportunities))
	}
	first := b.RegionalOpportunities[0]
	if first.Region != "Maharashtra" || first.Confirmed != 1 || first.Potential != 1 {
		t.Errorf("first regional entry: got %+v", first)
	}
	if first.PenetrationRate != "50.0" {
		t.Errorf("penetration: got %s, want 50.0", first.PenetrationRate)
	}
}

func TestHeadlineMetrics(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(sampleCompanies())

	if b.Metrics.TotalCompanies.Value != "6" {
		t.Errorf("total companies: got %q", b.Metrics.TotalCompanies.Value)
	}
	if b.Metrics.MarketPenetration.Value != "33.3%" {
		t.Errorf("market penetration: got %q", b.Metrics.MarketPenetration.Value)
	}
	// potential(1) + inferred(1) + floor(0.3 * 2 unknown-ish) = 2
	if b.Metrics.BusinessOpportunity.Value != "2" {
		t.Errorf("business opportunity: got %q, want 2", b.Metrics.BusinessOpportunity.Value)
	}
	// Potential summed over the top-2 categories by score (Pumps + Fans/Blowers).
	if b.Metrics.HighValueTargets.Value != "1" {
		t.Errorf("high value targets: got %q, want 1", b.Metrics.HighValueTargets.Value)
	}
	if b.Metrics.ConfirmedUsers.Value != "2" {
		t.Errorf("confirmed users: got %q, want 2", b.Metrics.ConfirmedUsers.Value)
	}
}

func TestBusinessInsights(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(sampleCompanies())

	if b.Insights.TopEquipmentCategory != "Pumps" {
		t.Errorf("top category: got %q", b.Insights.TopEquipmentCategory)
	}
	if b.Insights.TopRegion != "Maharashtra" {
		t.Errorf("top region: got %q", b.Insights.TopRegion)
	}
	// Mean of 50.0, 50.0, 0.0.
	if b.Insights.AveragePenetration != "33.3" {
		t.Errorf("average penetration: got %q, want 33.3", b.Insights.AveragePenetration)
	}
	if b.Insights.TotalMarketPotential != 2 {
		t.Errorf("total market potential: got %d, want 2", b.Insights.TotalMarketPotential)
	}
}

func TestEmptySnapshot(t *testing.T) {
	svc := NewAnalyticsService(newTestLogger())
	b := svc.Generate(nil)

	if b.Metrics.TotalCompanies.Value != "0" {
		t.Errorf("total companies: got %q, want 0", b.Metrics.TotalCompanies.Value)
	}
	if b.Metrics.MarketPenetration.Value != "0.0%" {
		t.Errorf("market penetration: got %q, want 0.0%%", b.Metrics.MarketPenetration.Value)
	}
	if len(b.StatusBreakdown) != 0 || len(b.TopRegions) != 0 ||
		len(b.EquipmentDistribution) != 0 || len(b.CategoryOpportunities) != 0 ||
		len(b.RegionalOpportunities) != 0 {
		t.Error("expected all distribution lists empty")
	}
	if b.Insights.TopRegion != "N/A" || b.Insights.AveragePenetration != "0.0" {
		t.Errorf("empty insights: got %+v", b.Insights)
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatInt(tt.n); got != tt.want {
			t.Errorf("formatInt(%d) = %q; want %q", tt.n, got, tt.want)
		}
	}
}
