// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package authz gates product surfaces by plan tier with Casbin.
//
// The model is deliberately small: subject = plan (free or premium),
// object = surface, action = view or use. Premium inherits everything free
// can do. Model and policy live in code so a bad deploy cannot ship a
// server that fails open (or closed) because a policy file went missing.
package authz

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/Brice601/etsydashboard-frontend/internal/models"
)

// Product surfaces the policy knows about.
const (
	SurfaceFinanceDashboard   = "dashboard_finance"
	SurfaceCustomersDashboard = "dashboard_customers"
	SurfaceSEODashboard       = "dashboard_seo"
	SurfaceCalculator         = "calculator"
	SurfaceUpload             = "upload"

	// Premium-only surfaces.
	SurfaceInsights          = "insights"
	SurfacePremiumRecommends = "premium_recommendations"
	SurfaceExport            = "export"
	SurfaceUnlimitedAnalyses = "unlimited_analyses"
)

// Actions.
const (
	ActionView = "view"
	ActionUse  = "use"
)

const gateModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// gatePolicy is [subject, object, action] rows plus the premium->free
// inheritance below.
var gatePolicy = [][]string{
	{models.PlanFree, SurfaceFinanceDashboard, ActionView},
	{models.PlanFree, SurfaceFinanceDashboard, ActionUse},
	{models.PlanFree, SurfaceCustomersDashboard, ActionView},
	{models.PlanFree, SurfaceCustomersDashboard, ActionUse},
	{models.PlanFree, SurfaceSEODashboard, ActionView},
	{models.PlanFree, SurfaceSEODashboard, ActionUse},
	{models.PlanFree, SurfaceCalculator, ActionView},
	{models.PlanFree, SurfaceCalculator, ActionUse},
	{models.PlanFree, SurfaceUpload, ActionView},
	{models.PlanFree, SurfaceUpload, ActionUse},

	{models.PlanPremium, SurfaceInsights, ActionView},
	{models.PlanPremium, SurfaceInsights, ActionUse},
	{models.PlanPremium, SurfacePremiumRecommends, ActionView},
	{models.PlanPremium, SurfacePremiumRecommends, ActionUse},
	{models.PlanPremium, SurfaceExport, ActionView},
	{models.PlanPremium, SurfaceExport, ActionUse},
	{models.PlanPremium, SurfaceUnlimitedAnalyses, ActionUse},
}

// Gate answers "may this plan touch this surface".
type Gate struct {
	enforcer *casbin.SyncedEnforcer
}

// New builds the enforcer from the in-code model and policy.
func New() (*Gate, error) {
	m, err := model.NewModelFromString(gateModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create authz enforcer: %w", err)
	}

	for _, rule := range gatePolicy {
		if _, err := enforcer.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			return nil, fmt.Errorf("add authz policy %v: %w", rule, err)
		}
	}
	// Premium can do everything free can.
	if _, err := enforcer.AddGroupingPolicy(models.PlanPremium, models.PlanFree); err != nil {
		return nil, fmt.Errorf("add authz inheritance: %w", err)
	}

	return &Gate{enforcer: enforcer}, nil
}

// Can reports whether plan may perform action on surface. Unknown plans are
// normalized to free, so a corrupt record degrades to the weakest tier.
func (g *Gate) Can(plan, surface, action string) bool {
	ok, err := g.enforcer.Enforce(models.NormalizePlan(plan), surface, action)
	return err == nil && ok
}

// CanView is the template helper form of Can.
func (g *Gate) CanView(plan, surface string) bool {
	return g.Can(plan, surface, ActionView)
}
