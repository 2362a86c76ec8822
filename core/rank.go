package core

import (
	"sort"

	"trendscope/schema"
)

// RankReports sorts reports by combined opportunity score in descending
// order and returns the top 'limit' reports. Ties fall back to keyword
// order so ranking stays deterministic.
func RankReports(reports []schema.KeywordReport, limit int) []schema.KeywordReport {
	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Combined != reports[j].Combined {
			return reports[i].Combined > reports[j].Combined
		}
		return reports[i].Keyword < reports[j].Keyword
	})
	if limit > 0 && len(reports) > limit {
		return reports[:limit]
	}
	return reports
}
