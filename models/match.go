package models

import (
	"encoding/json"
	"fmt"
)

type MatchStatus = string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusPlayed    MatchStatus = "played"
)

// Match is a fixture. Besides the known fields the admin panel attaches
// arbitrary extra keys (scores, venue, notes); those survive in Extra and
// are folded back into the top level of the JSON document.
// Date is an ISO-8601 string and is ordered lexicographically.
type Match struct {
	ID       int64       `json:"id"`
	HomeTeam string      `json:"homeTeam"`
	AwayTeam string      `json:"awayTeam"`
	Matchday int         `json:"matchday"`
	Date     string      `json:"date"`
	Status   MatchStatus `json:"status"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (m Match) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.Extra)+6)
	for key, value := range m.Extra {
		out[key] = value
	}
	known := map[string]interface{}{
		"id":       m.ID,
		"homeTeam": m.HomeTeam,
		"awayTeam": m.AwayTeam,
		"matchday": m.Matchday,
		"date":     m.Date,
		"status":   m.Status,
	}
	for key, value := range known {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		out[key] = raw
	}
	return json.Marshal(out)
}

func (m *Match) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Extra = nil
	for key, value := range raw {
		if err := m.setField(key, value); err != nil {
			return err
		}
	}
	return nil
}

// ApplyPatch shallow-merges the given top-level fields into the match.
// Keys absent from the patch are left untouched; the id is not patchable.
func (m *Match) ApplyPatch(patch map[string]json.RawMessage) error {
	for key, value := range patch {
		if key == "id" {
			continue
		}
		if err := m.setField(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (m *Match) setField(key string, value json.RawMessage) error {
	var err error
	switch key {
	case "id":
		err = json.Unmarshal(value, &m.ID)
	case "homeTeam":
		err = json.Unmarshal(value, &m.HomeTeam)
	case "awayTeam":
		err = json.Unmarshal(value, &m.AwayTeam)
	case "matchday":
		err = json.Unmarshal(value, &m.Matchday)
	case "date":
		err = json.Unmarshal(value, &m.Date)
	case "status":
		err = json.Unmarshal(value, &m.Status)
	default:
		if m.Extra == nil {
			m.Extra = make(map[string]json.RawMessage)
		}
		m.Extra[key] = value
	}
	if err != nil {
		return fmt.Errorf("match field %q: %w", key, err)
	}
	return nil
}
