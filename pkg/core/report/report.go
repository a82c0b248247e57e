// Package report lays out a roi.Projection the way the projector widget
// shows it: titled sections of currency cards, each with a tooltip.
package report

import (
	"math"
	"strconv"
	"strings"

	"roi_projector/pkg/core/roi"
)

const Disclaimer = "This financial prediction calculator provides only an estimate based on available data and assumptions. " +
	"It does not guarantee future earnings and should not be considered financial advice. Actual results may vary due " +
	"to market conditions and individual circumstances. Use it as a guide, not a definitive forecast of financial outcomes."

var modeTooltips = map[roi.Mode]string{
	roi.ModePostal: "Postal code used primarily in Canada to identify specific geographic areas. Average Population 100.",
	roi.ModeZip:    "ZIP code used in the United States for location identification. Average Population 10,000.",
	roi.ModeRegion: "Refers to broader administrative or geographic zones such as provinces, states, or districts. Average Population 1,000.",
}

var areaTooltips = map[roi.AreaType]string{
	roi.AreaRural: "Refers to properties or users located in countryside or low-density areas.",
	roi.AreaUrban: "Refers to properties or users located in developed town centers or suburbs.",
	roi.AreaCity:  "Refers to properties or users located in large metropolitan city cores.",
}

func ModeTooltip(m roi.Mode) string { return modeTooltips[m] }

func AreaTooltip(a roi.AreaType) string { return areaTooltips[a] }

// Card is one displayed figure.
type Card struct {
	Title   string  `json:"title"`
	Amount  float64 `json:"amount"`
	Value   string  `json:"value"`
	Tooltip string  `json:"tooltip,omitempty"`
}

type SubSection struct {
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

type Section struct {
	Title       string       `json:"title"`
	SubSections []SubSection `json:"sub_sections"`
}

// Control is one input as displayed next to its slider or selector.
type Control struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Tooltip string `json:"tooltip,omitempty"`
}

type Report struct {
	Controls []Control `json:"controls"`
	Land     Card      `json:"land"`
	Sections []Section `json:"sections"`
	FullYear Card      `json:"full_year"`
}

// FormatCurrency renders v as whole dollars without separators, e.g. "$918115".
func FormatCurrency(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return "$" + strconv.FormatFloat(r, 'f', 0, 64)
}

func card(title string, amount float64, tooltip string) Card {
	return Card{Title: title, Amount: amount, Value: FormatCurrency(amount), Tooltip: tooltip}
}

// Build arranges p into the widget's sections. Only the second-hand
// monthly membership card shows the halved figure.
func Build(p roi.Projection) Report {
	in := p.Inputs
	return Report{
		Controls: []Control{
			{Label: "Location", Value: strings.ToUpper(string(in.Mode)), Tooltip: ModeTooltip(in.Mode)},
			{Label: "Area", Value: capitalize(string(in.AreaType)), Tooltip: AreaTooltip(in.AreaType)},
			{Label: "1st Hand Invite Rate", Value: strconv.Itoa(in.InvitedMembers), Tooltip: "Take your best guestimate on how many members you will refer."},
			{Label: "2nd Hand Invite Rate (%)", Value: strconv.Itoa(in.InviteMultiplier)},
			{Label: "Monthly Business ($)", Value: strconv.FormatFloat(in.MonthlySpend, 'f', -1, 64)},
		},
		Land: Card{
			Title:   "Estimated Land Price",
			Amount:  p.LandValue,
			Value:   FormatCurrency(p.LandValue),
			Tooltip: "Click the button below to generate a land cost estimate based on selected location type and area.",
		},
		Sections: []Section{
			{
				Title: "BEFORE SEP 1ST",
				SubSections: []SubSection{{
					Title: "PRE LAND SALE RETURNS",
					Cards: []Card{
						card("1st Hand Share", p.BusinessFirst, "Represents 21% of the gross profit generated by referring members who purchase virtual land."),
						card("2nd Hand Share", p.BusinessSecond, "Represents 3% of the gross profit generated by referred second hand members."),
					},
				}},
			},
			{
				Title: "AFTER SEP 1ST",
				SubSections: []SubSection{
					{
						Title: "LANDLORD SHARE RETURNS",
						Cards: []Card{
							card("One Time", p.LandlordShareOneTime, "One-time return after land sale from business activity revenue (2% share)."),
							card("Monthly", p.MonthlyLandlordSharedReturns, "Ongoing return from total member business activity (2% share)."),
						},
					},
					{
						Title: "MONTHLY MEMBERSHIP RETURNS",
						Cards: []Card{
							card("1st Hand Share", p.MembershipFirst, "Monthly income from direct members' subscriptions (21% share)."),
							card("2nd Hand Share", p.MembershipSecondDisplay(), "Monthly income from indirect members' subscriptions (3% share)."),
						},
					},
					{
						Title: "MONTHLY BUSINESS RETURNS",
						Cards: []Card{
							card("1st Hand Share", p.BusinessFirst, "Business revenue share from direct referrals (21%)."),
							card("2nd Hand Share", p.BusinessSecond, "Business revenue share from indirect referrals (3%)."),
						},
					},
				},
			},
		},
		FullYear: card("1st YEAR PROJECTION", p.FullYearProjection, ""),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
