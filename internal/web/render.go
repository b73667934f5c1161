// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package web renders the server-side HTML pages. Templates are embedded in
// the binary; each page template is parsed into its own set cloned from the
// shared layout so every page can define its own "content" block.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Brice601/etsydashboard-frontend/internal/authz"
	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/format"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
	"github.com/Brice601/etsydashboard-frontend/internal/seo"
)

//go:embed templates
var templateFS embed.FS

// AppInfo is the slice of config every page needs.
type AppInfo struct {
	Name            string
	BaseURL         string
	Environment     string
	SupportEmail    string
	PremiumPriceUSD float64
}

// Page is the data every template executes against. Handlers fill Data with
// the page-specific view model; the rest is chrome.
type Page struct {
	Meta     seo.Meta
	Account  *models.Account // nil when anonymous
	CSRF     string
	Flash    string
	Errors   map[string]string // Field name to inline message
	Form     map[string]string // Submitted values echoed back on error
	Data     any
	App      AppInfo
	Snippets *seo.Snippets
	Year     int
}

// SignedIn reports whether the page renders for an authenticated account.
func (p Page) SignedIn() bool {
	return p.Account != nil
}

// FieldError returns the inline message for a form field, if any.
func (p Page) FieldError(field string) string {
	return p.Errors[field]
}

// FormValue returns the echoed submitted value for a form field.
func (p Page) FormValue(field string) string {
	return p.Form[field]
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages    map[string]*template.Template
	app      AppInfo
	snippets *seo.Snippets
	gate     *authz.Gate
}

// NewRenderer parses the embedded layout and page templates. The gate backs
// the template-level plan checks so premium teasers render locked for free
// accounts.
func NewRenderer(cfg *config.AppConfig, snippets *seo.Snippets, gate *authz.Gate) (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template),
		app: AppInfo{
			Name:            cfg.Name,
			BaseURL:         cfg.BaseURL,
			Environment:     cfg.Environment,
			SupportEmail:    cfg.SupportEmail,
			PremiumPriceUSD: cfg.PremiumPriceUSD,
		},
		snippets: snippets,
		gate:     gate,
	}

	base, err := template.New("base").Funcs(r.funcMap()).ParseFS(templateFS, "templates/layout/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout templates: %w", err)
	}

	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("globbing page templates: %w", err)
	}

	for _, file := range pageFiles {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", file, err)
		}
		set, err = set.ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		r.pages[name] = set
	}

	return r, nil
}

// NewPage builds a Page with the chrome filled in. Handlers set Meta, Data,
// and the session-derived fields afterwards.
func (r *Renderer) NewPage() Page {
	return Page{
		App:      r.app,
		Snippets: r.snippets,
		Year:     time.Now().Year(),
		Errors:   map[string]string{},
		Form:     map[string]string{},
	}
}

// Render executes the named page template into a buffer and writes it out.
// Buffering keeps a template error from producing a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	set, ok := r.pages[name]
	if !ok {
		logging.Error().Str("template", name).Msg("Unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "base", page); err != nil {
		logging.Err(err).Str("template", name).Msg("Template execution failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RenderError renders the shared error page.
func (r *Renderer) RenderError(w http.ResponseWriter, status int, message string) {
	page := r.NewPage()
	page.Meta = seo.Meta{Title: "Something went wrong - " + r.app.Name, Robots: "noindex,nofollow"}
	page.Data = map[string]any{
		"Status":  status,
		"Message": message,
	}
	r.Render(w, status, "error", page)
}

// funcMap exposes the formatting helpers and plan checks to templates.
func (r *Renderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"currency": func(v float64) string { return format.Currency(v, "USD") },
		// pct takes percent units (35.6 -> "35.6%"); ratio takes fractions
		// (0.356 -> "36%"). View models mostly carry percent units.
		"pct":      func(v float64) string { return format.Percentage(v/100, 1, false) },
		"ratio":    func(v float64) string { return format.Percentage(v, 0, false) },
		"number":   func(v float64) string { return format.Number(v, 0) },
		"truncate": format.TruncateText,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("Jan 2, 2006")
		},
		"canView": func(plan, surface string) bool {
			return r.gate.CanView(plan, surface)
		},
		"jsonld": func(block string) template.HTML {
			// Blocks come from the seo package renderer, never user input.
			return template.HTML(`<script type="application/ld+json">` + block + `</script>`)
		},
		"add": func(a, b int) int { return a + b },
	}
}
