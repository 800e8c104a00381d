package engine

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/textdist"
)

// Validator names recorded for the map-planning step.
const (
	ValidatorTitleCannibalization = "title_cannibalization"
	ValidatorFrameCoverage        = "frame_coverage"
	ValidatorDepthBalance         = "depth_balance"
	ValidatorTopicalBorder        = "topical_border"
	ValidatorPageWorthiness       = "page_worthiness"
)

// checkOutcome is the total result of one map-planning check: either a
// findings contribution or a skip with its reason. Bookkeeping of the
// run/skipped sets is a function of this value, not of exception flow.
type checkOutcome struct {
	findings []Finding
	skipped  bool
	reason   string
}

func skip(reason string) checkOutcome {
	return checkOutcome{skipped: true, reason: reason}
}

// analyzeMapPlanning runs the five checks, each in its own fault boundary.
// A failing validator is converted into a skip and never aborts the rest.
func (a *Analyzer) analyzeMapPlanning(in MapPlanningInput) ([]Finding, []string, []string) {
	names := []string{
		ValidatorTitleCannibalization,
		ValidatorFrameCoverage,
		ValidatorDepthBalance,
		ValidatorTopicalBorder,
		ValidatorPageWorthiness,
	}

	if len(in.Topics) == 0 {
		return nil, nil, names
	}

	checks := map[string]func() checkOutcome{
		ValidatorTitleCannibalization: func() checkOutcome { return a.checkCannibalization(in) },
		ValidatorFrameCoverage:        func() checkOutcome { return a.checkFrameCoverage(in) },
		ValidatorDepthBalance:         func() checkOutcome { return a.checkDepthBalance(in) },
		ValidatorTopicalBorder:        func() checkOutcome { return a.checkTopicalBorder(in) },
		ValidatorPageWorthiness:       func() checkOutcome { return a.checkPageWorthiness(in) },
	}

	var findings []Finding
	var run, skipped []string
	for _, name := range names {
		outcome := runIsolated(checks[name])
		if outcome.skipped {
			a.logger.Debug("map-planning check skipped",
				zap.String("validator", name),
				zap.String("reason", outcome.reason))
			skipped = append(skipped, name)
			continue
		}
		run = append(run, name)
		findings = append(findings, outcome.findings...)
	}
	return findings, run, skipped
}

// runIsolated converts a panicking check into a skip record.
func runIsolated(check func() checkOutcome) (outcome checkOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = skip(fmt.Sprintf("validator failure: %v", r))
		}
	}()
	return check()
}

func (a *Analyzer) checkCannibalization(in MapPlanningInput) checkOutcome {
	if a.validators.Cannibalization == nil {
		return skip("no cannibalization detector configured")
	}

	var findings []Finding
	for _, pair := range a.validators.Cannibalization.Detect(in.Topics) {
		severity := SeverityHigh
		if pair.Similarity > 0.85 {
			severity = SeverityCritical
		}
		findings = append(findings, NewFinding(CategoryTitleCannibalization, severity,
			fmt.Sprintf("Topics %q and %q compete for the same query", pair.TitleA, pair.TitleB),
			fmt.Sprintf("Title similarity is %.0f%%; both pages would split ranking signals.", pair.Similarity*100),
			"Merge the topics or sharpen one title toward a distinct intent.",
			[]string{pair.TopicA, pair.TopicB}))
	}
	return checkOutcome{findings: findings}
}

func (a *Analyzer) checkFrameCoverage(in MapPlanningInput) checkOutcome {
	if a.validators.Frames == nil {
		return skip("no frame analyzer configured")
	}

	var uncovered []FrameCoverage
	for _, fc := range a.validators.Frames.Analyze(topicTitles(in.Topics)) {
		if len(fc.CoveredCore) == 0 && len(fc.MissingCore) > 0 {
			uncovered = append(uncovered, fc)
		}
	}

	severity := SeverityMedium
	if len(uncovered) > 3 {
		severity = SeverityHigh
	}

	var findings []Finding
	for _, fc := range uncovered {
		findings = append(findings, NewFinding(CategoryMissingFrame, severity,
			fmt.Sprintf("Semantic frame %q has no coverage", fc.Frame),
			fmt.Sprintf("Core elements not addressed by any topic: %s.", strings.Join(fc.MissingCore, ", ")),
			fmt.Sprintf("Add topics covering the %s frame's core elements.", fc.Frame),
			[]string{fc.Frame}))
	}
	return checkOutcome{findings: findings}
}

func (a *Analyzer) checkDepthBalance(in MapPlanningInput) checkOutcome {
	if a.validators.Depth == nil {
		return skip("no depth analyzer configured")
	}
	if len(in.Topics) < 3 {
		return skip("fewer than 3 topics")
	}

	report := a.validators.Depth.Analyze(clusterTree(in.Topics))

	var findings []Finding
	if !report.Balanced {
		severity := SeverityHigh
		if report.Ratio > 3.0 {
			severity = SeverityCritical
		}
		findings = append(findings, NewFinding(CategoryDepthImbalance, severity,
			"Topic map depth is unbalanced",
			fmt.Sprintf("Depth ratio is %.1f; shallow clusters: %s; deep clusters: %s.",
				report.Ratio,
				joinOrNone(report.ShallowClusters),
				joinOrNone(report.DeepClusters)),
			"Redistribute sub-topics so clusters develop at comparable depth.",
			append(append([]string{}, report.ShallowClusters...), report.DeepClusters...)))
	}

	if len(report.ClusterTopicCounts) > 1 {
		total := 0
		for _, count := range report.ClusterTopicCounts {
			total += count
		}
		mean := float64(total) / float64(len(report.ClusterTopicCounts))

		clusters := make([]string, 0, len(report.ClusterTopicCounts))
		for name := range report.ClusterTopicCounts {
			clusters = append(clusters, name)
		}
		sort.Strings(clusters)

		for _, name := range clusters {
			count := report.ClusterTopicCounts[name]
			if float64(count) < mean*0.3 {
				findings = append(findings, NewFinding(CategoryDepthImbalance, SeverityMedium,
					fmt.Sprintf("Cluster %q is underdeveloped", name),
					fmt.Sprintf("It holds %d topic(s) against a mean of %.1f per cluster.", count, mean),
					fmt.Sprintf("Plan additional sub-topics for %q or fold it into a neighbor.", name),
					[]string{name}))
			}
		}
	}

	return checkOutcome{findings: findings}
}

func (a *Analyzer) checkTopicalBorder(in MapPlanningInput) checkOutcome {
	if a.validators.Border == nil {
		return skip("no border validator configured")
	}
	if strings.TrimSpace(in.CentralEntity) == "" {
		return skip("no central entity")
	}

	results := a.validators.Border.Validate(in.CentralEntity, topicTitles(in.Topics), textdist.Jaccard)

	var outside, atRisk []string
	for _, r := range results {
		switch r.Risk {
		case BorderOutside:
			outside = append(outside, r.Title)
		case BorderAtRisk:
			atRisk = append(atRisk, r.Title)
		}
	}

	var findings []Finding
	if len(outside) > 0 {
		severity := SeverityHigh
		if len(outside) > 3 {
			severity = SeverityCritical
		}
		display, affected := truncateItems(outside, 5)
		findings = append(findings, NewFinding(CategoryBorderViolation, severity,
			fmt.Sprintf("%d topic(s) fall outside the topical border", len(outside)),
			fmt.Sprintf("Topics unrelated to %q: %s.", in.CentralEntity, display),
			"Remove the off-topic pages or connect them to the central entity.",
			affected))
	}
	if len(atRisk) > 0 {
		display, affected := truncateItems(atRisk, 5)
		findings = append(findings, NewFinding(CategoryBorderViolation, SeverityMedium,
			fmt.Sprintf("%d topic(s) sit at the edge of the topical border", len(atRisk)),
			fmt.Sprintf("Weakly related to %q: %s.", in.CentralEntity, display),
			"Strengthen these titles' connection to the central entity.",
			affected))
	}
	return checkOutcome{findings: findings}
}

func (a *Analyzer) checkPageWorthiness(in MapPlanningInput) checkOutcome {
	if a.validators.Worthiness == nil {
		return skip("no index rule configured")
	}

	childCounts := map[string]int{}
	titleByID := map[string]string{}
	for _, t := range in.Topics {
		titleByID[t.ID] = t.Title
		if t.ParentID != "" {
			childCounts[t.ParentID]++
		}
	}

	signals := make([]PageSignals, 0, len(in.Topics))
	for _, t := range in.Topics {
		signals = append(signals, PageSignals{
			Title:        t.Title,
			SearchVolume: t.SearchVolume,
			Intent:       t.Intent,
			ParentTitle:  titleByID[t.ParentID],
			ChildCount:   childCounts[t.ID],
		})
	}

	var merges []string
	for _, d := range a.validators.Worthiness.Evaluate(signals) {
		if d.Decision == DecisionMergeIntoParent && d.Confidence >= 0.5 {
			merges = append(merges, d.Title)
		}
	}
	if len(merges) == 0 {
		return checkOutcome{}
	}

	severity := SeverityMedium
	if len(merges) > 5 {
		severity = SeverityHigh
	}
	display, affected := truncateItems(merges, 5)
	return checkOutcome{findings: []Finding{NewFinding(CategoryPageWorthiness, severity,
		fmt.Sprintf("%d topic(s) may not deserve their own page", len(merges)),
		fmt.Sprintf("Merge candidates: %s.", display),
		"Fold these topics into their parent pages as sections.",
		affected)}}
}

func topicTitles(topics []Topic) []string {
	titles := make([]string, 0, len(topics))
	for _, t := range topics {
		titles = append(titles, t.Title)
	}
	return titles
}

// clusterTree assigns each topic to a cluster: a pillar clusters itself,
// anything else clusters under its parent's title, falling back to its own.
func clusterTree(topics []Topic) map[string][]string {
	titleByID := map[string]string{}
	for _, t := range topics {
		titleByID[t.ID] = t.Title
	}

	clusters := map[string][]string{}
	for _, t := range topics {
		cluster := t.Title
		if !strings.EqualFold(t.ClusterRole, "pillar") {
			if parent, ok := titleByID[t.ParentID]; ok && parent != "" {
				cluster = parent
			}
		}
		clusters[cluster] = append(clusters[cluster], t.Title)
	}
	return clusters
}

// truncateItems renders up to max items, appending a "+N more" suffix when
// the list is longer. The affected slice carries only the shown items.
func truncateItems(items []string, max int) (string, []string) {
	if len(items) <= max {
		return strings.Join(items, ", "), items
	}
	shown := items[:max]
	display := fmt.Sprintf("%s, +%d more", strings.Join(shown, ", "), len(items)-max)
	return display, shown
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
