package services

import (
	"fmt"
	"strings"

	"oem-insights/models"
)

// Print renders the analytics bundle as a terminal report.
func (s *AnalyticsService) Print(b *models.AnalyticsBundle) {
	sep := strings.Repeat("═", 58)
	thin := strings.Repeat("─", 58)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 OEM MARKET INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Headline metrics
	fmt.Printf("\033[1;33m  Headline Metrics\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printMetric(b.Metrics.TotalCompanies)
	printMetric(b.Metrics.MarketPenetration)
	printMetric(b.Metrics.BusinessOpportunity)
	printMetric(b.Metrics.GeographicReach)
	printMetric(b.Metrics.HighValueTargets)
	printMetric(b.Metrics.ConfirmedUsers)
	fmt.Println()

	// Status distribution
	fmt.Printf("\033[1;33m  Adoption Status\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(b.StatusBreakdown) == 0 {
		fmt.Printf("  No records\n")
	}
	for _, slice := range b.StatusBreakdown {
		bar := strings.Repeat("█", barWidth(slice.Count))
		fmt.Printf("  %-24s %s %d (%s%%)\n",
			truncate(slice.Label, 22), bar, slice.Count, slice.Percentage)
	}
	fmt.Println()

	// Top regions
	fmt.Printf("\033[1;33m  Top Regions\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(b.TopRegions) == 0 {
		fmt.Printf("  No region data\n")
	}
	for i, region := range b.TopRegions {
		fmt.Printf("  \033[1m%d.\033[0m %-28s %4d  (%s%%)\n",
			i+1, truncate(region.Region, 26), region.Count, region.Percentage)
	}
	fmt.Println()

	// Equipment distribution
	fmt.Printf("\033[1;33m  Equipment Categories\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, eq := range b.EquipmentDistribution {
		bar := strings.Repeat("█", barWidth(eq.Count))
		fmt.Printf("  %-24s %s %d (%s%%)\n",
			truncate(eq.Category, 22), bar, eq.Count, eq.Percentage)
	}
	fmt.Println()

	// Category opportunity ranking
	fmt.Printf("\033[1;33m  Market Opportunity by Category\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  %-20s %6s %5s %5s %5s %7s %7s\n",
		"Category", "Total", "Conf", "Pot", "Inf", "Pen%", "Score")
	for _, opp := range b.CategoryOpportunities {
		fmt.Printf("  %-20s %6d %5d %5d %5d %7s \033[1;32m%7.1f\033[0m\n",
			truncate(opp.Category, 18), opp.Total, opp.Confirmed,
			opp.Potential, opp.Inferred, opp.PenetrationRate, opp.OpportunityScore)
	}
	fmt.Println()

	// Regional penetration
	fmt.Printf("\033[1;33m  Regional Penetration (top %d)\033[0m\n", topRegionalRank)
	fmt.Printf("  %s\n", thin)
	for _, r := range b.RegionalOpportunities {
		fmt.Printf("  %-24s total %4d | confirmed %3d | potential %3d | %s%%\n",
			truncate(r.Region, 22), r.Total, r.Confirmed, r.Potential, r.PenetrationRate)
	}
	fmt.Println()

	// Business insights
	fmt.Printf("\033[1;33m  Business Insights\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Top equipment category : \033[1m%s\033[0m\n", b.Insights.TopEquipmentCategory)
	fmt.Printf("  Top region             : \033[1m%s\033[0m\n", b.Insights.TopRegion)
	fmt.Printf("  Average penetration    : \033[1m%s%%\033[0m\n", b.Insights.AveragePenetration)
	fmt.Printf("  Total market potential : \033[1m%d\033[0m\n", b.Insights.TotalMarketPotential)

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func printMetric(m models.Metric) {
	fmt.Printf("  %-36s : \033[1m%s\033[0m\n", m.Description, m.Value)
}

// barWidth keeps histograms readable for large datasets.
func barWidth(count int) int {
	if count > 40 {
		return 40
	}
	return count
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
