package engine

// The map-planning checks delegate to external analyzers. Only the shapes
// below are owned by this package; implementations live outside the engine
// (see pkg/validators for the defaults wired by the CLI).

// SimilarPair is one cannibalization candidate reported by the lexical
// overlap detector.
type SimilarPair struct {
	TopicA     string
	TopicB     string
	TitleA     string
	TitleB     string
	Similarity float64 // in [0,1]
}

// CannibalizationDetector finds topic pairs competing for the same query.
type CannibalizationDetector interface {
	Detect(topics []Topic) []SimilarPair
}

// FrameCoverage reports how well one semantic frame is covered by the map.
type FrameCoverage struct {
	Frame       string
	CoveredCore []string
	MissingCore []string
}

// FrameAnalyzer evaluates semantic frame coverage over topic titles.
type FrameAnalyzer interface {
	Analyze(titles []string) []FrameCoverage
}

// DepthReport is the depth-balance analyzer's view of the cluster tree.
type DepthReport struct {
	Ratio              float64
	Balanced           bool
	ClusterTopicCounts map[string]int
	ShallowClusters    []string
	DeepClusters       []string
}

// DepthAnalyzer measures how evenly topics spread across clusters.
type DepthAnalyzer interface {
	Analyze(clusters map[string][]string) DepthReport
}

// BorderRisk classifies a topic relative to the topical border.
type BorderRisk string

const (
	BorderNone    BorderRisk = "none"
	BorderAtRisk  BorderRisk = "at_risk"
	BorderOutside BorderRisk = "outside"
)

// BorderResult is the per-topic classification of the border validator.
type BorderResult struct {
	Title string
	Risk  BorderRisk
}

// BorderValidator classifies topics against the central entity. The
// distance function is supplied by the caller as a fallback metric.
type BorderValidator interface {
	Validate(centralEntity string, titles []string, distance func(a, b string) float64) []BorderResult
}

// PageSignals is the per-topic tuple fed to the index-construction rule.
type PageSignals struct {
	Title        string
	SearchVolume int
	Intent       string
	ParentTitle  string
	ChildCount   int
}

// Index-construction decisions.
const (
	DecisionKeep            = "keep"
	DecisionMergeIntoParent = "merge_into_parent"
)

// IndexDecision is the rule's verdict for one topic.
type IndexDecision struct {
	Title      string
	Decision   string
	Confidence float64 // in [0,1]
}

// IndexRule decides whether each topic deserves its own page.
type IndexRule interface {
	Evaluate(signals []PageSignals) []IndexDecision
}

// MapValidators bundles the five external validators consumed by the
// map-planning composition.
type MapValidators struct {
	Cannibalization CannibalizationDetector
	Frames          FrameAnalyzer
	Depth           DepthAnalyzer
	Border          BorderValidator
	Worthiness      IndexRule
}
