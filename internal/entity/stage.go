package entity

// Stage is a canonical funnel position.
type Stage string

const (
	StageAwareness  Stage = "awareness"
	StageInterest   Stage = "interest"
	StageIntent     Stage = "intent"
	StageEvaluation Stage = "evaluation"
	StagePurchase   Stage = "purchase"
)

// Stages lists the canonical stages in funnel order.
var Stages = []Stage{
	StageAwareness,
	StageInterest,
	StageIntent,
	StageEvaluation,
	StagePurchase,
}

// ClassifyStage maps raw caller input to a canonical stage. Matching is
// exact and case-sensitive; anything else falls back to awareness. This is
// the single source of truth for stage validity and is applied both before
// persisting a lead and when grouping leads for display.
func ClassifyStage(raw string) Stage {
	switch Stage(raw) {
	case StageAwareness, StageInterest, StageIntent, StageEvaluation, StagePurchase:
		return Stage(raw)
	default:
		return StageAwareness
	}
}
