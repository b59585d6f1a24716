package repository

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// decodeDedications reads the professor_dedications payload of a section.
//
// The current form is an object of professor ID to percentage. Two legacy
// list forms are still found in older databases and are converted here:
// objects carrying an ID and a percentage, and bare professor IDs, each of
// which counts as full dedication. A payload that fits none of these yields
// an empty map and malformed=true.
func decodeDedications(raw string) (dedications map[string]float64, malformed bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return map[string]float64{}, false
	}

	var byID map[string]json.Number
	if err := json.Unmarshal([]byte(raw), &byID); err == nil {
		out := make(map[string]float64, len(byID))
		for id, n := range byID {
			pct, err := n.Float64()
			if err != nil {
				return map[string]float64{}, true
			}
			out[id] = pct
		}
		return out, false
	}

	var list []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return map[string]float64{}, true
	}
	out := make(map[string]float64, len(list))
	for _, item := range list {
		id, pct, ok := decodeLegacyEntry(item)
		if !ok {
			return map[string]float64{}, true
		}
		out[id] = pct
	}
	return out, false
}

// legacyEntry is one element of the list-of-objects form.
type legacyEntry struct {
	ID          string      `json:"id"`
	ProfessorID string      `json:"professor_id"`
	Profesor    string      `json:"profesor"`
	Percentage  json.Number `json:"percentage"`
	Porcentaje  json.Number `json:"porcentaje"`
	Dedicacion  json.Number `json:"dedicacion"`
}

func decodeLegacyEntry(item json.RawMessage) (string, float64, bool) {
	var id string
	if err := json.Unmarshal(item, &id); err == nil {
		if id == "" {
			return "", 0, false
		}
		return id, 100, true
	}

	var e legacyEntry
	if err := json.Unmarshal(item, &e); err != nil {
		return "", 0, false
	}
	id = firstNonEmpty(e.ID, e.ProfessorID, e.Profesor)
	if id == "" {
		return "", 0, false
	}
	n := json.Number(firstNonEmpty(string(e.Percentage), string(e.Porcentaje), string(e.Dedicacion)))
	if n == "" {
		return id, 100, true
	}
	pct, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return "", 0, false
	}
	return id, pct, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// encodeDedications writes the canonical object form.
func encodeDedications(dedications map[string]float64) (string, error) {
	if len(dedications) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(dedications)
	if err != nil {
		return "", fmt.Errorf("encoding dedications: %w", err)
	}
	return string(b), nil
}
