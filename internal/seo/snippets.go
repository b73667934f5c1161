// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package seo

import (
	"fmt"
	"html/template"

	"github.com/Brice601/etsydashboard-frontend/internal/config"
)

// Snippets holds the third-party analytics tags, pre-rendered once at
// startup. Empty IDs render nothing, so pages stay tag-free until the
// operator opts in.
type Snippets struct {
	GoogleAnalytics template.HTML
	MetaPixel       template.HTML
}

// NewSnippets renders the configured analytics tags. IDs come from config
// and are operator-controlled, not user input.
func NewSnippets(cfg *config.AnalyticsConfig) *Snippets {
	s := &Snippets{}

	if cfg.GoogleMeasurementID != "" {
		s.GoogleAnalytics = template.HTML(fmt.Sprintf(`<script async src="https://www.googletagmanager.com/gtag/js?id=%[1]s"></script>
<script>
  window.dataLayer = window.dataLayer || [];
  function gtag(){dataLayer.push(arguments);}
  gtag('js', new Date());
  gtag('config', '%[1]s');
</script>`, cfg.GoogleMeasurementID))
	}

	if cfg.MetaPixelID != "" {
		s.MetaPixel = template.HTML(fmt.Sprintf(`<script>
  !function(f,b,e,v,n,t,s){if(f.fbq)return;n=f.fbq=function(){n.callMethod?
  n.callMethod.apply(n,arguments):n.queue.push(arguments)};if(!f._fbq)f._fbq=n;
  n.push=n;n.loaded=!0;n.version='2.0';n.queue=[];t=b.createElement(e);t.async=!0;
  t.src=v;s=b.getElementsByTagName(e)[0];s.parentNode.insertBefore(t,s)}(window,
  document,'script','https://connect.facebook.net/en_US/fbevents.js');
  fbq('init', '%[1]s');
  fbq('track', 'PageView');
</script>`, cfg.MetaPixelID))
	}

	return s
}
