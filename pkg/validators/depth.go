package validators

import (
	"sort"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
)

// ClusterDepthAnalyzer measures topic spread across clusters.
type ClusterDepthAnalyzer struct {
	// BalanceLimit is the max/min cluster-size ratio still considered
	// balanced.
	BalanceLimit float64
}

// NewClusterDepthAnalyzer returns an analyzer with the standard limit.
func NewClusterDepthAnalyzer() *ClusterDepthAnalyzer {
	return &ClusterDepthAnalyzer{BalanceLimit: 2.0}
}

// Analyze computes the depth ratio and the shallow/deep cluster lists.
// Shallow clusters hold less than half the mean topic count, deep ones
// more than one and a half times the mean.
func (a *ClusterDepthAnalyzer) Analyze(clusters map[string][]string) engine.DepthReport {
	counts := make(map[string]int, len(clusters))
	for name, topics := range clusters {
		counts[name] = len(topics)
	}

	report := engine.DepthReport{Ratio: 1, Balanced: true, ClusterTopicCounts: counts}
	if len(counts) == 0 {
		return report
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	minCount, maxCount, total := counts[names[0]], counts[names[0]], 0
	for _, name := range names {
		c := counts[name]
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
		total += c
	}
	if minCount < 1 {
		minCount = 1
	}

	report.Ratio = float64(maxCount) / float64(minCount)
	report.Balanced = report.Ratio <= a.BalanceLimit

	mean := float64(total) / float64(len(counts))
	for _, name := range names {
		c := float64(counts[name])
		if c < mean*0.5 {
			report.ShallowClusters = append(report.ShallowClusters, name)
		} else if c > mean*1.5 {
			report.DeepClusters = append(report.DeepClusters, name)
		}
	}
	return report
}
