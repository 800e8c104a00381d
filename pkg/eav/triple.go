package eav

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Triple is one entity-attribute-value statement extracted during planning.
// Category tags the semantic layer (ROOT, UNIQUE, COMMON, ...), ValueType is
// an optional type hint (text, number, date, ...), and Source identifies
// where the statement came from (the topical map or a specific brief).
type Triple struct {
	Subject    string  `json:"subject"`
	Attribute  string  `json:"attribute"`
	Value      string  `json:"value"`
	Category   string  `json:"category,omitempty"`
	ValueType  string  `json:"value_type,omitempty"`
	Source     string  `json:"source,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// UnmarshalJSON accepts scalar values of any JSON type and stores their
// string form, so upstream payloads carrying numbers or booleans do not
// fail to decode.
func (t *Triple) UnmarshalJSON(data []byte) error {
	type alias Triple
	aux := struct {
		*alias
		Value any `json:"value"`
	}{alias: (*alias)(t)}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&aux); err != nil {
		return err
	}
	t.Value = stringifyValue(aux.Value)
	return nil
}

func stringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

// DocumentTriples holds the triples attributed to one content brief.
type DocumentTriples struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Triples []Triple `json:"triples"`
}

// SourceLabel returns the tag used for this document in audit locations.
func (d DocumentTriples) SourceLabel() string {
	if strings.TrimSpace(d.Title) != "" {
		return d.Title
	}
	if strings.TrimSpace(d.ID) != "" {
		return d.ID
	}
	return "unknown_brief"
}
