package roi

// Subscription brackets: share of a member cohort and its monthly price.
const (
	bracketPremiumShare  = 0.05
	bracketPremiumPrice  = 99.95
	bracketPlusShare     = 0.15
	bracketPlusPrice     = 24.95
	bracketStandardShare = 0.30
	bracketStandardPrice = 9.95
	bracketBasicShare    = 0.50
	bracketBasicPrice    = 2.95
)

// Revenue split rates.
const (
	GrossProfitMargin = 0.5  // bracket revenue kept as gross profit; also net margin on spend
	FirstHandRate     = 0.21 // share paid on direct referrals
	SecondHandRate    = 0.03 // share paid on indirect referrals
	SecondHandMargin  = 0.25 // portion of second-hand spend counted as business revenue
	LandSaleShare     = 0.25 // portion of net revenue routed to land
	LandlordRate      = 0.02 // landlord cut of the land portion

	// Monthly landlord returns accrue for the 11 months after the one-time payout.
	LandlordMonths = 11
	YearMonths     = 12
)

// GrossProfitFromBrackets splits count members over the four subscription
// brackets and returns half of the resulting monthly revenue.
func GrossProfitFromBrackets(count float64) float64 {
	totalBracketRevenue := (count * bracketPremiumShare * bracketPremiumPrice) +
		(count * bracketPlusShare * bracketPlusPrice) +
		(count * bracketStandardShare * bracketStandardPrice) +
		(count * bracketBasicShare * bracketBasicPrice)
	return totalBracketRevenue * GrossProfitMargin
}

// SecondHandInvites is quadratic in InvitedMembers: every first-hand
// member brings multiplier% of the first-hand cohort size.
func SecondHandInvites(in Inputs) float64 {
	invited := float64(in.InvitedMembers)
	return invited * (float64(in.InviteMultiplier) / 100) * invited
}

// Project computes every derived figure for in. It does not validate
// in; out-of-domain inputs yield whatever the formulas produce.
func Project(in Inputs) Projection {
	invited := float64(in.InvitedMembers)
	second := SecondHandInvites(in)
	spend := in.MonthlySpend

	p := Projection{
		Inputs:            in,
		SecondHandInvites: second,
		LandValue:         in.LandValue,
	}

	p.GrossProfitFirstHand = GrossProfitFromBrackets(invited)
	p.GrossProfitSecondHand = GrossProfitFromBrackets(second)

	p.MembershipFirst = p.GrossProfitFirstHand * FirstHandRate
	p.MembershipSecond = p.GrossProfitSecondHand * SecondHandRate

	p.BusinessFirst = invited * spend * GrossProfitMargin * FirstHandRate
	p.BusinessSecond = second * spend * SecondHandMargin * SecondHandRate

	p.LandlordShareOneTime = ((p.BusinessFirst + p.BusinessSecond) * GrossProfitMargin * LandSaleShare) * LandlordRate
	p.MonthlyLandlordSharedReturns = ((p.GrossProfitFirstHand + p.GrossProfitSecondHand) / GrossProfitMargin) * LandSaleShare * LandlordRate

	p.TotalGrossRevenue = (invited + second) * spend
	p.NetRevenue = p.TotalGrossRevenue * GrossProfitMargin
	p.PreLandSaleRevenue = p.NetRevenue * LandSaleShare
	p.TotalPreLandSaleReturn = p.PreLandSaleRevenue * LandlordRate

	// 0/0 when nobody was invited: both shares are zero.
	if members := invited + second; members != 0 {
		p.PreFirstHand = p.TotalPreLandSaleReturn * (invited / members)
		p.PreSecondHand = p.TotalPreLandSaleReturn * (second / members)
	}

	p.FullYearProjection = p.LandlordShareOneTime +
		(p.MonthlyLandlordSharedReturns * LandlordMonths) +
		p.TotalPreLandSaleReturn +
		((p.MembershipFirst + p.MembershipSecond) * YearMonths) +
		((p.BusinessFirst + p.BusinessSecond) * YearMonths)

	return p
}
