// Package roi implements the referral ROI projection engine.
// Five control values plus one sampled land value map to a fixed set of
// revenue-share projections. Everything in this package except the
// land value sampler is a pure function of its inputs.
package roi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode is returned by ParseMode and Inputs.Validate.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrUnknownArea is returned by ParseAreaType and Inputs.Validate.
	ErrUnknownArea = errors.New("unknown area type")
	// ErrOutOfRange marks a control value outside its slider bounds.
	ErrOutOfRange = errors.New("value out of range")
)

// Mode is the geographic granularity used to price land.
type Mode string

const (
	ModePostal Mode = "postal"
	ModeZip    Mode = "zip"
	ModeRegion Mode = "region"
)

// Modes lists the selectable modes in display order.
var Modes = []Mode{ModePostal, ModeZip, ModeRegion}

// ParseMode accepts any casing ("ZIP", "Zip", "zip").
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModePostal, ModeZip, ModeRegion:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// AreaType is the density class of the land.
type AreaType string

const (
	AreaRural AreaType = "rural"
	AreaUrban AreaType = "urban"
	AreaCity  AreaType = "city"
)

// AreaTypes lists the selectable density classes in display order.
var AreaTypes = []AreaType{AreaRural, AreaUrban, AreaCity}

// ParseAreaType accepts any casing, like ParseMode.
func ParseAreaType(s string) (AreaType, error) {
	a := AreaType(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AreaRural, AreaUrban, AreaCity:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownArea, s)
}

// Slider bounds of the input controls.
const (
	MinInvitedMembers   = 1
	MaxInvitedMembers   = 1000
	MinInviteMultiplier = 10
	MaxInviteMultiplier = 200
	MinMonthlySpend     = 1.0
	MaxMonthlySpend     = 1000.0
)

// Inputs is the immutable snapshot of the controls passed to Project.
type Inputs struct {
	Mode             Mode     `json:"mode" yaml:"mode"`
	AreaType         AreaType `json:"area_type" yaml:"area_type"`
	InvitedMembers   int      `json:"invited_members" yaml:"invited_members"`
	InviteMultiplier int      `json:"invite_multiplier" yaml:"invite_multiplier"` // percent
	MonthlySpend     float64  `json:"monthly_spend" yaml:"monthly_spend"`
	LandValue        float64  `json:"land_value" yaml:"-"`
}

// DefaultInputs returns the controls as a fresh widget shows them.
func DefaultInputs() Inputs {
	return Inputs{
		Mode:             ModePostal,
		AreaType:         AreaRural,
		InvitedMembers:   200,
		InviteMultiplier: 100,
		MonthlySpend:     200,
	}
}

// Validate reports the first field outside its control domain.
// Project never calls it; it exists for callers that accept raw input.
func (in Inputs) Validate() error {
	if _, err := ParseMode(string(in.Mode)); err != nil {
		return err
	}
	if _, err := ParseAreaType(string(in.AreaType)); err != nil {
		return err
	}
	if in.InvitedMembers < MinInvitedMembers || in.InvitedMembers > MaxInvitedMembers {
		return fmt.Errorf("%w: invited_members=%d not in [%d, %d]", ErrOutOfRange, in.InvitedMembers, MinInvitedMembers, MaxInvitedMembers)
	}
	if in.InviteMultiplier < MinInviteMultiplier || in.InviteMultiplier > MaxInviteMultiplier {
		return fmt.Errorf("%w: invite_multiplier=%d not in [%d, %d]", ErrOutOfRange, in.InviteMultiplier, MinInviteMultiplier, MaxInviteMultiplier)
	}
	if in.MonthlySpend < MinMonthlySpend || in.MonthlySpend > MaxMonthlySpend {
		return fmt.Errorf("%w: monthly_spend=%g not in [%g, %g]", ErrOutOfRange, in.MonthlySpend, MinMonthlySpend, MaxMonthlySpend)
	}
	if in.LandValue < 0 {
		return fmt.Errorf("%w: land_value=%g is negative", ErrOutOfRange, in.LandValue)
	}
	return nil
}

// Clamp returns a copy with every slider value pinned to its bounds.
func (in Inputs) Clamp() Inputs {
	in.InvitedMembers = clampInt(in.InvitedMembers, MinInvitedMembers, MaxInvitedMembers)
	in.InviteMultiplier = clampInt(in.InviteMultiplier, MinInviteMultiplier, MaxInviteMultiplier)
	in.MonthlySpend = clampFloat(in.MonthlySpend, MinMonthlySpend, MaxMonthlySpend)
	return in
}

// Projection holds every derived figure for one set of Inputs.
// Values are raw currency amounts; rounding is left to the renderer.
type Projection struct {
	Inputs Inputs `json:"inputs"`

	SecondHandInvites     float64 `json:"second_hand_invites"`
	GrossProfitFirstHand  float64 `json:"gross_profit_first_hand"`
	GrossProfitSecondHand float64 `json:"gross_profit_second_hand"`

	MembershipFirst  float64 `json:"membership_first"`
	MembershipSecond float64 `json:"membership_second"`
	BusinessFirst    float64 `json:"business_first"`
	BusinessSecond   float64 `json:"business_second"`

	LandlordShareOneTime         float64 `json:"landlord_share_one_time"`
	MonthlyLandlordSharedReturns float64 `json:"monthly_landlord_shared_returns"`

	TotalGrossRevenue      float64 `json:"total_gross_revenue"`
	NetRevenue             float64 `json:"net_revenue"`
	PreLandSaleRevenue     float64 `json:"pre_land_sale_revenue"`
	TotalPreLandSaleReturn float64 `json:"total_pre_land_sale_return"`
	PreFirstHand           float64 `json:"pre_first_hand"`
	PreSecondHand          float64 `json:"pre_second_hand"`

	FullYearProjection float64 `json:"full_year_projection"`
	LandValue          float64 `json:"land_value"`
}

// MembershipSecondDisplay is the figure shown on the second-hand monthly
// membership card. The full-year total uses the un-halved MembershipSecond.
func (p Projection) MembershipSecondDisplay() float64 {
	return p.MembershipSecond / 2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
