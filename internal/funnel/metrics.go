package funnel

import (
	"math"
	"time"

	"github.com/funnelhq/leadfunnel/internal/entity"
)

const (
	recentWindowDays = 7
	staleAfterDays   = 14
)

// Report is the aggregate view over one account's leads. Every percentage
// figure is an integer rounded half away from zero; AvgTimeInFunnel keeps a
// single decimal and is null when there are no leads.
type Report struct {
	TotalLeads              int                  `json:"total_leads"`
	StageCounts             map[entity.Stage]int `json:"stage_counts"`
	RecentLeads             int                  `json:"recent_leads"`
	HotLeads                int                  `json:"hot_leads"`
	StaleLeads              int                  `json:"stale_leads"`
	AwarenessToInterest     int                  `json:"awareness_to_interest"`
	InterestToConsideration int                  `json:"interest_to_consideration"`
	ConversionRate          int                  `json:"conversion_rate"`
	AvgTimeInFunnel         *float64             `json:"avg_time_in_funnel"`
	StageDistribution       map[entity.Stage]int `json:"stage_distribution"`
	EngagementRate          int                  `json:"engagement_rate"`
}

// ComputeMetrics aggregates leads in a single pass. Read-only: safe to
// recompute on every call.
//
// A lead is recent when it is at most 7 days old, hot when it is recent and
// sits in intent/evaluation/purchase, and stale when it is older than 14
// days and still in awareness/interest. Ratios with a zero denominator
// resolve to 0.
func ComputeMetrics(leads []entity.Lead, now time.Time) Report {
	counts := make(map[entity.Stage]int, len(entity.Stages))
	distribution := make(map[entity.Stage]int, len(entity.Stages))
	for _, stage := range entity.Stages {
		counts[stage] = 0
		distribution[stage] = 0
	}

	var totalAgeDays float64
	var recent, hot, stale int

	for _, lead := range leads {
		stage := entity.ClassifyStage(string(lead.Stage))
		counts[stage]++

		ageDays := now.Sub(lead.CreatedAt).Hours() / 24
		totalAgeDays += ageDays

		if ageDays <= recentWindowDays {
			recent++
			switch stage {
			case entity.StageIntent, entity.StageEvaluation, entity.StagePurchase:
				hot++
			}
		}
		if ageDays > staleAfterDays {
			switch stage {
			case entity.StageAwareness, entity.StageInterest:
				stale++
			}
		}
	}

	total := len(leads)
	consideration := counts[entity.StageIntent] + counts[entity.StageEvaluation]

	report := Report{
		TotalLeads:              total,
		StageCounts:             counts,
		RecentLeads:             recent,
		HotLeads:                hot,
		StaleLeads:              stale,
		AwarenessToInterest:     percent(counts[entity.StageInterest], counts[entity.StageAwareness]),
		InterestToConsideration: percent(consideration, counts[entity.StageInterest]),
		ConversionRate:          percent(counts[entity.StagePurchase], counts[entity.StageAwareness]),
		StageDistribution:       distribution,
		EngagementRate:          percent(recent, total),
	}

	if total > 0 {
		avg := math.Round(totalAgeDays/float64(total)*10) / 10
		report.AvgTimeInFunnel = &avg
		for _, stage := range entity.Stages {
			distribution[stage] = percent(counts[stage], total)
		}
	}

	return report
}

// percent returns round(100*num/den) half away from zero, or 0 when the
// denominator is zero.
func percent(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(100 * float64(num) / float64(den)))
}
