// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package seo

// Presets builds the per-page Meta values from the canonical base URL.
// The public landing pages carry the heavy structured data; authenticated
// pages are noindex.
type Presets struct {
	baseURL string
}

// NewPresets binds presets to the deployment's canonical base URL.
func NewPresets(baseURL string) *Presets {
	return &Presets{baseURL: baseURL}
}

// Home is the root landing page.
func (p *Presets) Home() Meta {
	m := Meta{
		Title:       "Free Etsy Dashboard - Track Your Shop Analytics in Real-Time",
		Description: "Upload your Etsy CSV exports and get instant profit, customer, and SEO analytics. No spreadsheet wrangling, free to start.",
		Keywords:    []string{"etsy dashboard", "etsy analytics", "etsy seller tools", "etsy profit tracker"},
		JSONLD: []string{
			SoftwareApplication(p.baseURL),
			FAQPage([]FAQ{
				{Question: "Is the Etsy dashboard really free?", Answer: "Yes. The free plan includes the fee calculator and 10 full analyses per week. Premium removes the limits and unlocks insights."},
				{Question: "Do I need to connect my Etsy account?", Answer: "No. You upload the CSV exports Etsy already gives you; nothing connects to your shop."},
				{Question: "What files can I upload?", Answer: "Sold items, payments, and sold orders CSVs, the reviews JSON export, and your listings CSV."},
			}),
		},
	}
	return m.withDefaults(p.baseURL, "/")
}

// FeeCalculator is the public calculator landing page.
func (p *Presets) FeeCalculator() Meta {
	m := Meta{
		Title:       "Free Etsy Fee Calculator - Calculate Your Real Profit After All Fees",
		Description: "Transaction, listing, processing, Offsite Ads, and regulatory fees itemized per sale. See your real margin before you price.",
		Keywords:    []string{"etsy fee calculator", "etsy fees", "etsy profit calculator", "etsy pricing"},
		JSONLD: []string{
			HowTo("Calculate your Etsy fees", []HowToStep{
				{Name: "Enter your price", Text: "Fill in the item price and what you charge for shipping."},
				{Name: "Add your costs", Text: "Production and shipping costs give you the real margin, not just the fee total."},
				{Name: "Read the breakdown", Text: "Every fee is itemized, with monthly and annual projections from your sales volume."},
			}),
			BreadcrumbList([]Crumb{
				{Name: "Home", URL: p.baseURL + "/"},
				{Name: "Fee Calculator", URL: p.baseURL + "/calculate-fees"},
			}),
		},
	}
	return m.withDefaults(p.baseURL, "/calculate-fees")
}

// AnalyticsTool is the analytics landing page.
func (p *Presets) AnalyticsTool() Meta {
	m := Meta{
		Title:       "Etsy Analytics Tool - Track Profit, Customers & SEO | Free Tool",
		Description: "Three dashboards from your own exports: finance with fee-adjusted margins, customer retention and sentiment, and listing SEO scores.",
		Keywords:    []string{"etsy analytics tool", "etsy seo", "etsy customer analytics", "etsy sales data"},
		JSONLD: []string{
			BreadcrumbList([]Crumb{
				{Name: "Home", URL: p.baseURL + "/"},
				{Name: "Analytics Tool", URL: p.baseURL + "/analytics-tool"},
			}),
		},
	}
	return m.withDefaults(p.baseURL, "/analytics-tool")
}

// DashboardLanding is the marketing page for the dashboard product.
func (p *Presets) DashboardLanding() Meta {
	m := Meta{
		Title:       "Etsy Dashboard for Sellers - Finance, Customers & SEO in One Place",
		Description: "One dashboard for your whole shop: revenue after fees, repeat buyers, churn risk, review sentiment, and title scores.",
		Keywords:    []string{"etsy dashboard", "etsy shop dashboard", "etsy seller dashboard"},
		JSONLD:      []string{SoftwareApplication(p.baseURL)},
	}
	return m.withDefaults(p.baseURL, "/etsy-dashboard")
}

// Auth is the sign-in page. Not worth indexing.
func (p *Presets) Auth() Meta {
	m := Meta{
		Title:       "Sign In - Etsy Dashboard",
		Description: "Sign in to your Etsy Dashboard account.",
		Robots:      "noindex,follow",
	}
	return m.withDefaults(p.baseURL, "/auth")
}

// Pricing is the plans page.
func (p *Presets) Pricing() Meta {
	m := Meta{
		Title:       "Pricing - Etsy Dashboard Free & Premium Plans",
		Description: "Free forever for the calculator and 10 analyses a week. Premium unlocks unlimited analyses, insights, and exports.",
		Keywords:    []string{"etsy dashboard pricing", "etsy analytics premium"},
		JSONLD: []string{
			Product("Etsy Dashboard Premium", "Unlimited analyses, premium insights, and data export for Etsy sellers.", p.baseURL+"/pricing", "9.90"),
		},
	}
	return m.withDefaults(p.baseURL, "/pricing")
}

// Premium is the authenticated upgrade page. Not indexed.
func (p *Presets) Premium() Meta {
	m := Meta{
		Title:       "Premium - Etsy Dashboard",
		Description: "Upgrade to premium for unlimited analyses and insights.",
		Robots:      "noindex,nofollow",
	}
	return m.withDefaults(p.baseURL, "/premium")
}

// App is the generic preset for authenticated pages.
func (p *Presets) App(title, path string) Meta {
	m := Meta{
		Title:  title + " - Etsy Dashboard",
		Robots: "noindex,nofollow",
	}
	return m.withDefaults(p.baseURL, path)
}
