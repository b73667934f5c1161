// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package calc

// Etsy fee schedule, 2026 published rates.
const (
	// TransactionFeeRate applies to the item price.
	TransactionFeeRate = 0.065
	// ListingFeeFlat is charged per sale.
	ListingFeeFlat = 0.20
	// ProcessingFeeRate applies to price plus buyer-paid shipping.
	ProcessingFeeRate = 0.03
	// ProcessingFeeFlat is the fixed part of the payment processing fee.
	ProcessingFeeFlat = 0.25
	// OffsiteAdsRateStandard applies to attributed sales under $10k trailing revenue.
	OffsiteAdsRateStandard = 0.15
	// OffsiteAdsRateReduced applies above $10k trailing revenue.
	OffsiteAdsRateReduced = 0.12
)

// regulatoryFeeRates holds per-country regulatory operating fees as a
// fraction of the item price. Countries not listed pay nothing.
var regulatoryFeeRates = map[string]float64{
	"FR": 0.0040,
	"IT": 0.0032,
	"ES": 0.0040,
	"TR": 0.0110,
	"GB": 0.0025,
}

// Severity levels for a fee breakdown, used by result pages to pick the
// banner style.
const (
	SeverityLoss = "loss"
	SeverityWarn = "warn"
	SeverityOK   = "ok"
)

// warnMarginPercent is the margin under which a profitable sale still gets a
// warning banner.
const warnMarginPercent = 20.0

// FeeInput describes a single listing's economics.
type FeeInput struct {
	Price          float64 // Item price the buyer pays
	ShippingPrice  float64 // Shipping charged to the buyer
	ProductionCost float64 // Seller's cost to make the item
	ShippingCost   float64 // Seller's cost to ship the item
	Country        string  // ISO country code for regulatory fees, empty for none
	OffsiteAds     bool    // Whether the sale is attributed to Offsite Ads
	PremiumAdsTier bool    // Reduced 12% ads rate above $10k trailing revenue
	MonthlySales   int     // Units per month, for projections
}

// FeeBreakdown itemizes every fee on one sale plus the resulting unit and
// monthly economics.
type FeeBreakdown struct {
	TransactionFee float64 `json:"transaction_fee"`
	ListingFee     float64 `json:"listing_fee"`
	ProcessingFee  float64 `json:"processing_fee"`
	OffsiteAdsFee  float64 `json:"offsite_ads_fee"`
	RegulatoryFee  float64 `json:"regulatory_fee"`
	TotalFees      float64 `json:"total_fees"`

	NetRevenue     float64 `json:"net_revenue"`      // Price minus total fees
	Profit         float64 `json:"profit"`           // Net revenue minus production and shipping costs
	MarginPercent  float64 `json:"margin_percent"`   // Profit over price
	FeeRatePercent float64 `json:"fee_rate_percent"` // Total fees over price

	MonthlyRevenue float64 `json:"monthly_revenue"`
	MonthlyProfit  float64 `json:"monthly_profit"`
	AnnualProfit   float64 `json:"annual_profit"`

	Severity string `json:"severity"`
}

// Fees computes the full fee breakdown for one listing. The math is pure;
// input validation happens at the form/API boundary.
func Fees(in FeeInput) FeeBreakdown {
	out := FeeBreakdown{
		TransactionFee: in.Price * TransactionFeeRate,
		ListingFee:     ListingFeeFlat,
		ProcessingFee:  (in.Price+in.ShippingPrice)*ProcessingFeeRate + ProcessingFeeFlat,
		RegulatoryFee:  in.Price * regulatoryFeeRates[in.Country],
	}

	if in.OffsiteAds {
		rate := OffsiteAdsRateStandard
		if in.PremiumAdsTier {
			rate = OffsiteAdsRateReduced
		}
		out.OffsiteAdsFee = in.Price * rate
	}

	out.TotalFees = out.TransactionFee + out.ListingFee + out.ProcessingFee +
		out.OffsiteAdsFee + out.RegulatoryFee
	out.NetRevenue = in.Price - out.TotalFees
	out.Profit = out.NetRevenue - in.ProductionCost - in.ShippingCost

	if in.Price > 0 {
		out.MarginPercent = out.Profit / in.Price * 100
		out.FeeRatePercent = out.TotalFees / in.Price * 100
	}

	sales := float64(in.MonthlySales)
	out.MonthlyRevenue = in.Price * sales
	out.MonthlyProfit = out.Profit * sales
	out.AnnualProfit = out.MonthlyProfit * 12

	switch {
	case out.Profit < 0:
		out.Severity = SeverityLoss
	case out.MarginPercent < warnMarginPercent:
		out.Severity = SeverityWarn
	default:
		out.Severity = SeverityOK
	}

	return out
}

// RegulatoryCountries returns the country codes with a regulatory operating
// fee, for rendering the country picker.
func RegulatoryCountries() []string {
	return []string{"FR", "IT", "ES", "TR", "GB"}
}
