package engine

import (
	"encoding/json"
	"strconv"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/eav"
)

// Step selects which pipeline step a payload belongs to.
type Step string

const (
	StepStrategy    Step = "strategy"
	StepEav         Step = "eav"
	StepMapPlanning Step = "map_planning"
)

// BusinessInfo carries locale/industry context. The engine core does not
// consume it; it is forwarded to downstream prompt construction.
type BusinessInfo struct {
	Locale   string `json:"locale"`
	Industry string `json:"industry"`
}

// DialogueContext holds state recovered from an earlier exchange. Only the
// previously confirmed central entity is consumed here, and only when the
// map-planning payload lacks one.
type DialogueContext struct {
	ConfirmedCentralEntity string `json:"confirmed_central_entity"`
}

// StrategyInput is the typed form of a strategy-step payload.
type StrategyInput struct {
	CentralEntity       string   `json:"central_entity"`
	SourceContext       string   `json:"source_context"`
	CentralSearchIntent string   `json:"central_search_intent"`
	Predicates          []string `json:"predicates"`
}

// EavInput is the typed form of an EAV-step payload.
type EavInput struct {
	Triples []eav.Triple `json:"triples"`
}

// Topic is one record of a topical map.
type Topic struct {
	ID           string `json:"id"`
	ParentID     string `json:"parent_id"`
	Title        string `json:"title"`
	ClusterRole  string `json:"cluster_role"`
	SearchVolume int    `json:"search_volume"`
	Intent       string `json:"intent"`
}

// MapPlanningInput is the typed form of a map-planning payload.
type MapPlanningInput struct {
	Topics        []Topic `json:"topics"`
	CentralEntity string  `json:"central_entity"`
}

// The parse functions below narrow an untyped step payload into its typed
// form. Absent or malformed fields default to empty values; they never
// raise. Upstream emits camelCase keys, stored fixtures use snake_case, so
// both spellings are accepted.

// ParseStrategyInput narrows a raw strategy payload.
func ParseStrategyInput(raw any) StrategyInput {
	if typed, ok := raw.(StrategyInput); ok {
		return typed
	}
	m := asMap(raw)
	return StrategyInput{
		CentralEntity:       stringField(m, "centralEntity", "central_entity"),
		SourceContext:       stringField(m, "sourceContext", "source_context"),
		CentralSearchIntent: stringField(m, "centralSearchIntent", "central_search_intent"),
		Predicates:          stringSlice(m, "predicates"),
	}
}

// ParseEavInput narrows a raw EAV payload.
func ParseEavInput(raw any) EavInput {
	if typed, ok := raw.(EavInput); ok {
		return typed
	}
	m := asMap(raw)
	list := listField(m, "eavs", "triples", "eav_triples")
	triples := make([]eav.Triple, 0, len(list))
	for _, item := range list {
		// Round-trip through JSON so the triple's flexible value decoding
		// applies to map entries as well.
		data, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var t eav.Triple
		if err := json.Unmarshal(data, &t); err != nil {
			continue
		}
		triples = append(triples, t)
	}
	return EavInput{Triples: triples}
}

// ParseMapPlanningInput narrows a raw map-planning payload.
func ParseMapPlanningInput(raw any) MapPlanningInput {
	if typed, ok := raw.(MapPlanningInput); ok {
		return typed
	}
	m := asMap(raw)
	list := listField(m, "topics", "topicRecords", "topic_records")
	topics := make([]Topic, 0, len(list))
	for _, item := range list {
		tm := asMap(item)
		if tm == nil {
			continue
		}
		topics = append(topics, Topic{
			ID:           stringField(tm, "id", "topicId", "topic_id"),
			ParentID:     stringField(tm, "parentId", "parent_id"),
			Title:        stringField(tm, "title"),
			ClusterRole:  stringField(tm, "clusterRole", "cluster_role", "role"),
			SearchVolume: intField(tm, "searchVolume", "search_volume"),
			Intent:       stringField(tm, "intent"),
		})
	}
	return MapPlanningInput{
		Topics:        topics,
		CentralEntity: stringField(m, "centralEntity", "central_entity"),
	}
}

func asMap(raw any) map[string]any {
	if m, ok := raw.(map[string]any); ok {
		return m
	}
	return nil
}

func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			switch val := v.(type) {
			case string:
				return val
			case json.Number:
				return val.String()
			case float64:
				return strconv.FormatFloat(val, 'f', -1, 64)
			}
		}
	}
	return ""
}

func intField(m map[string]any, keys ...string) int {
	for _, key := range keys {
		switch val := m[key].(type) {
		case int:
			return val
		case float64:
			return int(val)
		case json.Number:
			if n, err := val.Int64(); err == nil {
				return int(n)
			}
		case string:
			if n, err := strconv.Atoi(val); err == nil {
				return n
			}
		}
	}
	return 0
}

func listField(m map[string]any, keys ...string) []any {
	for _, key := range keys {
		if list, ok := m[key].([]any); ok {
			return list
		}
	}
	return nil
}

func stringSlice(m map[string]any, keys ...string) []string {
	var out []string
	for _, item := range listField(m, keys...) {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
