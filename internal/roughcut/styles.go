// Package roughcut assembles a RoughCutPlan from analyzed clips,
// dispatching between the marker-driven, narrative-arc, and
// quality-based assembly pipelines per style.
package roughcut

// CutStyle selects which section structure and pacing rules a rough
// cut should follow.
type CutStyle string

const (
	StyleDOC        CutStyle = "doc"
	StyleInterview  CutStyle = "interview"
	StyleEpisode    CutStyle = "episode"
	StyleTutorial   CutStyle = "tutorial"
	StyleReview     CutStyle = "review"
	StyleUnboxing   CutStyle = "unboxing"
	StyleComparison CutStyle = "comparison"
	StyleSetup      CutStyle = "setup"
	StyleExplainer  CutStyle = "explainer"
)

// StyleConfig is the per-style configuration row from spec section 4.6.
type StyleConfig struct {
	Sections          []string
	Pacing            string
	MinSegment        float64
	MaxSegment        float64
	TargetRatio       float64
	PreHandle         float64
	PostHandle        float64
	MergeGapThreshold float64

	FeatureDetection    bool
	ProsConsDetection   bool
	RevealDetection     bool
	ComparisonDetection bool
	StepDetection       bool
	ConceptDetection    bool
}

// styleTable mirrors STYLE_STRUCTURES: one row per CutStyle.
var styleTable = map[CutStyle]StyleConfig{
	StyleDOC: {
		Sections: []string{"opening", "context", "main_story", "reflection", "closing"},
		Pacing: "slow", MinSegment: 3.0, MaxSegment: 90.0, TargetRatio: 0.8,
		PreHandle: 1.0, PostHandle: 0.5, MergeGapThreshold: 2.0,
	},
	StyleInterview: {
		Sections: []string{"intro", "q1", "q2", "q3", "highlight", "closing"},
		Pacing: "medium", MinSegment: 3.0, MaxSegment: 45.0, TargetRatio: 0.5,
		PreHandle: 0.75, PostHandle: 0.4, MergeGapThreshold: 2.0,
	},
	StyleEpisode: {
		Sections: []string{"hook", "intro", "main_content", "climax", "outro", "cta"},
		Pacing: "fast", MinSegment: 2.0, MaxSegment: 30.0, TargetRatio: 0.4,
		PreHandle: 0.3, PostHandle: 0.2, MergeGapThreshold: 1.0,
	},
	StyleTutorial: {
		Sections: []string{"hook", "intro", "step_1", "step_2", "step_3", "summary", "cta"},
		Pacing: "very_fast", MinSegment: 1.0, MaxSegment: 20.0, TargetRatio: 0.3,
		PreHandle: 0.1, PostHandle: 0.1, MergeGapThreshold: 0.5,
		StepDetection: true,
	},
	StyleReview: {
		Sections: []string{"hook", "intro", "overview", "features", "pros", "cons", "verdict", "cta"},
		Pacing: "medium_fast", MinSegment: 2.5, MaxSegment: 45.0, TargetRatio: 0.5,
		PreHandle: 0.4, PostHandle: 0.3, MergeGapThreshold: 1.5,
		FeatureDetection: true, ProsConsDetection: true,
	},
	StyleUnboxing: {
		Sections: []string{"hook", "intro", "unboxing", "first_look", "initial_thoughts", "cta"},
		Pacing: "fast", MinSegment: 1.5, MaxSegment: 25.0, TargetRatio: 0.4,
		PreHandle: 0.2, PostHandle: 0.2, MergeGapThreshold: 1.0,
		RevealDetection: true,
	},
	StyleComparison: {
		Sections: []string{"hook", "intro", "product_a", "product_b", "side_by_side", "winner", "cta"},
		Pacing: "medium", MinSegment: 3.0, MaxSegment: 60.0, TargetRatio: 0.6,
		PreHandle: 0.5, PostHandle: 0.4, MergeGapThreshold: 1.5,
		ComparisonDetection: true,
	},
	StyleSetup: {
		Sections: []string{"hook", "intro", "prerequisites", "step_1", "step_2", "step_3", "verification", "troubleshooting", "cta"},
		Pacing: "medium", MinSegment: 2.0, MaxSegment: 30.0, TargetRatio: 0.5,
		PreHandle: 0.3, PostHandle: 0.3, MergeGapThreshold: 1.0,
		StepDetection: true,
	},
	StyleExplainer: {
		Sections: []string{"hook", "intro", "concept_intro", "explanation", "examples", "summary", "cta"},
		Pacing: "slow_medium", MinSegment: 4.0, MaxSegment: 90.0, TargetRatio: 0.7,
		PreHandle: 0.6, PostHandle: 0.5, MergeGapThreshold: 2.0,
		ConceptDetection: true,
	},
}

// Config returns the style's static configuration row.
func Config(style CutStyle) (StyleConfig, bool) {
	c, ok := styleTable[style]
	return c, ok
}
