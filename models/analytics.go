package models

// StatusSlice is one entry of the adoption-status distribution. Label and
// Color come from a fixed display table for the four canonical statuses;
// other literal statuses pass through with a neutral color.
type StatusSlice struct {
	Status     string
	Label      string
	Count      int
	Percentage string
	Color      string
}

// RegionSlice is one entry of the top-region ranking. Percentage is of the
// full record count, not the non-sentinel subset.
type RegionSlice struct {
	Region     string
	Count      int
	Percentage string
}

// EquipmentSlice is one entry of the equipment-category distribution,
// ranked descending by count.
type EquipmentSlice struct {
	Category   string
	Count      int
	Percentage string
}

// CategoryOpportunity scores one equipment category for sales priority.
// Unknown is whatever the three explicit statuses leave over, so the four
// counts always sum to Total.
type CategoryOpportunity struct {
	Category         string
	Total            int
	Confirmed        int
	Potential        int
	Inferred         int
	Unknown          int
	PenetrationRate  string
	OpportunityScore float64
}

// RegionOpportunity is one entry of the top-10 regional ranking.
type RegionOpportunity struct {
	Region          string
	Total           int
	Confirmed       int
	Potential       int
	PenetrationRate string
	MarketPotential int
}

// Metric is one headline indicator. Change and ChangeType are static
// placeholders: the engine has no history to diff against.
type Metric struct {
	Value       string
	Change      int
	ChangeType  string
	Description string
}

// Metrics is the fixed set of headline indicators.
type Metrics struct {
	TotalCompanies      Metric
	MarketPenetration   Metric
	BusinessOpportunity Metric
	GeographicReach     Metric
	HighValueTargets    Metric
	ConfirmedUsers      Metric
}

// BusinessInsights is the one-line summary block of the report.
type BusinessInsights struct {
	TopEquipmentCategory string
	TopRegion            string
	AveragePenetration   string
	TotalMarketPotential int
}

// AnalyticsBundle holds every derived view computed from one snapshot.
// Bundles carry no identity of their own and are recomputed from scratch
// whenever the snapshot changes.
type AnalyticsBundle struct {
	StatusBreakdown       []StatusSlice
	TopRegions            []RegionSlice
	EquipmentDistribution []EquipmentSlice
	CategoryOpportunities []CategoryOpportunity
	RegionalOpportunities []RegionOpportunity
	Metrics               Metrics
	Insights              BusinessInsights
}
