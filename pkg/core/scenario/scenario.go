// Package scenario reads projector inputs written by hand or pasted from
// elsewhere. Payloads may be strict JSON, slightly broken JSON, or Hjson.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"roi_projector/pkg/core/roi"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Scenario overrides some or all of the controls. Zero fields keep the
// base value they are applied to.
type Scenario struct {
	Name             string  `json:"name,omitempty"`
	Mode             string  `json:"mode,omitempty"`
	AreaType         string  `json:"area_type,omitempty"`
	InvitedMembers   int     `json:"invited_members,omitempty"`
	InviteMultiplier int     `json:"invite_multiplier,omitempty"`
	MonthlySpend     float64 `json:"monthly_spend,omitempty"`

	// LandBase fixes the base land sample instead of drawing one.
	LandBase *int `json:"land_base,omitempty"`
}

// Parse tries strict JSON, then Hjson, then json-repair. Hjson goes
// before repair: the repairer folds unquoted multi-line input into the
// first string field instead of failing.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err == nil {
		return &s, nil
	}

	s = Scenario{}
	hjsonErr := hjson.Unmarshal(data, &s)
	if hjsonErr == nil {
		return &s, nil
	}

	if repaired, err := jsonrepair.RepairJSON(string(data)); err == nil {
		s = Scenario{}
		if err := json.Unmarshal([]byte(repaired), &s); err == nil && !s.hasMultilineField() {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("scenario: all parsing strategies failed: %w", hjsonErr)
}

// hasMultilineField flags a repair that swallowed following lines.
func (s *Scenario) hasMultilineField() bool {
	for _, v := range []string{s.Name, s.Mode, s.AreaType} {
		if strings.ContainsAny(v, "\r\n") {
			return true
		}
	}
	return false
}

// ParseHJSON parses Hjson directly (comments, unquoted keys and strings).
func ParseHJSON(data []byte) (*Scenario, error) {
	var s Scenario
	if err := hjson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: hjson: %w", err)
	}
	return &s, nil
}

// LoadFile reads a scenario file; .hjson files skip the JSON attempts.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".hjson") {
		return ParseHJSON(data)
	}
	return Parse(data)
}

// Apply overlays the scenario on base and clamps the result to the
// slider bounds. The land value is carried over from base unless
// LandBase is set.
func (s *Scenario) Apply(base roi.Inputs) (roi.Inputs, error) {
	in := base
	if s.Mode != "" {
		m, err := roi.ParseMode(s.Mode)
		if err != nil {
			return base, err
		}
		in.Mode = m
	}
	if s.AreaType != "" {
		a, err := roi.ParseAreaType(s.AreaType)
		if err != nil {
			return base, err
		}
		in.AreaType = a
	}
	if s.InvitedMembers != 0 {
		in.InvitedMembers = s.InvitedMembers
	}
	if s.InviteMultiplier != 0 {
		in.InviteMultiplier = s.InviteMultiplier
	}
	if s.MonthlySpend != 0 {
		in.MonthlySpend = s.MonthlySpend
	}
	in = in.Clamp()
	if s.LandBase != nil {
		in.LandValue = roi.LandValueFor(*s.LandBase, in.Mode, in.AreaType)
	}
	return in, nil
}
