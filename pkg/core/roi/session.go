package roi

import (
	"github.com/google/uuid"
)

// Session holds the controls of one projector view. Every setter leaves
// the land value untouched; only RecalculateLandValue changes it.
// A Session is not safe for concurrent use.
type Session struct {
	ID string // uuid; reported as session_id in JSON output

	inputs  Inputs
	sampler *LandValueSampler
}

// NewSession starts a session from initial, clamped to the slider
// bounds. The land value of initial is kept; DefaultInputs starts at 0.
func NewSession(initial Inputs, sampler *LandValueSampler) *Session {
	if sampler == nil {
		sampler = NewLandValueSampler(nil)
	}
	in := initial.Clamp()
	if in.LandValue < 0 {
		in.LandValue = 0
	}
	return &Session{
		ID:      uuid.New().String(),
		inputs:  in,
		sampler: sampler,
	}
}

// Inputs returns the current snapshot.
func (s *Session) Inputs() Inputs { return s.inputs }

// LandValue is the last sampled (or fixed) land value.
func (s *Session) LandValue() float64 { return s.inputs.LandValue }

// SetMode and SetAreaType change the selectors without resampling land.
func (s *Session) SetMode(m Mode) { s.inputs.Mode = m }

func (s *Session) SetAreaType(a AreaType) { s.inputs.AreaType = a }

// SetInvitedMembers, SetInviteMultiplier and SetMonthlySpend clamp to
// the slider bounds.
func (s *Session) SetInvitedMembers(n int) {
	s.inputs.InvitedMembers = clampInt(n, MinInvitedMembers, MaxInvitedMembers)
}

func (s *Session) SetInviteMultiplier(pct int) {
	s.inputs.InviteMultiplier = clampInt(pct, MinInviteMultiplier, MaxInviteMultiplier)
}

func (s *Session) SetMonthlySpend(v float64) {
	s.inputs.MonthlySpend = clampFloat(v, MinMonthlySpend, MaxMonthlySpend)
}

// RecalculateLandValue samples a new land value for the current mode and
// area type and keeps it until the next call.
func (s *Session) RecalculateLandValue() float64 {
	s.inputs.LandValue = s.sampler.Sample(s.inputs.Mode, s.inputs.AreaType)
	return s.inputs.LandValue
}

// SetLandBase fixes the land value from a known base sample instead of
// drawing one.
func (s *Session) SetLandBase(base int) float64 {
	s.inputs.LandValue = LandValueFor(base, s.inputs.Mode, s.inputs.AreaType)
	return s.inputs.LandValue
}

// Projection recomputes every figure from the current snapshot.
func (s *Session) Projection() Projection {
	return Project(s.inputs)
}
