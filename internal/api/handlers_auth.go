// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/backend"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
)

// authView is the sign-in page's view model.
type authView struct {
	SSOEnabled        bool
	AccessKeyRequired bool
	Next              string
}

// safeNext keeps post-login redirects on-site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/dashboard"
	}
	return next
}

func (s *Server) authView(next string) authView {
	return authView{
		SSOEnabled:        s.sso != nil,
		AccessKeyRequired: s.keys.Enabled(),
		Next:              safeNext(next),
	}
}

func (s *Server) authPage(w http.ResponseWriter, r *http.Request) {
	if auth.SessionFrom(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	page := s.pageFor(r)
	page.Meta = s.presets.Auth()
	page.Data = s.authView(r.URL.Query().Get("next"))
	s.render.Render(w, http.StatusOK, "auth", page)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	remember := r.PostFormValue("remember") != ""
	next := safeNext(r.PostFormValue("next"))

	page := s.pageFor(r)
	page.Meta = s.presets.Auth()
	page.Form["email"] = email

	if email == "" {
		page.Errors["email"] = "Enter your email."
	}
	if password == "" {
		page.Errors["password"] = "Enter your password."
	}

	// Access keys ride along with the login form while early access lasts.
	accessKeyOK := false
	if s.keys.Enabled() {
		key := r.PostFormValue("access_key")
		if key != "" {
			accessKeyOK = s.keys.Check(clientIP(r), key)
			if !accessKeyOK {
				page.Errors["access_key"] = "That access key is not valid."
			}
		}
	}

	if len(page.Errors) > 0 {
		page.Data = s.authView(next)
		s.render.Render(w, http.StatusOK, "auth", page)
		return
	}

	resp, err := s.backend.Login(r.Context(), models.LoginRequest{Email: email, Password: password})
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			page.Errors["password"] = "Invalid email or password."
		case errors.Is(err, backend.ErrRateLimited):
			page.Flash = "Too many attempts. Wait a minute and try again."
		default:
			page.Flash = backendDownMessage
		}
		page.Data = s.authView(next)
		s.render.Render(w, http.StatusOK, "auth", page)
		return
	}

	sess, err := s.sessions.Create(w, resp.User.Account(), resp.AccessToken, remember)
	if err != nil {
		logging.Err(err).Msg("Failed to create session after login")
		s.render.RenderError(w, http.StatusInternalServerError, backendDownMessage)
		return
	}
	if accessKeyOK {
		sess.AccessKeyOK = true
		if err := s.sessions.Save(sess); err != nil {
			logging.Warn().Err(err).Msg("Failed to persist access key flag")
		}
	}

	metrics.SessionsCreated.WithLabelValues("password").Inc()
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	req := models.RegisterRequest{
		Email:         strings.TrimSpace(r.PostFormValue("email")),
		Password:      r.PostFormValue("password"),
		Username:      strings.TrimSpace(r.PostFormValue("username")),
		ShopName:      strings.TrimSpace(r.PostFormValue("shop_name")),
		DataConsent:   r.PostFormValue("data_consent") != "",
		AcceptedTerms: r.PostFormValue("accepted_terms") != "",
	}

	page := s.pageFor(r)
	page.Meta = s.presets.Auth()
	page.Form["email"] = req.Email
	page.Form["username"] = req.Username
	page.Form["shop_name"] = req.ShopName

	if req.Email == "" {
		page.Errors["signup_email"] = "Enter your email."
	}
	if req.Username == "" {
		page.Errors["username"] = "Enter a display name."
	}
	if len(req.Password) < 8 {
		page.Errors["signup_password"] = "Use at least 8 characters."
	}
	if !req.AcceptedTerms {
		page.Errors["accepted_terms"] = "You must accept the terms to sign up."
	}

	if len(page.Errors) > 0 {
		page.Data = s.authView("")
		s.render.Render(w, http.StatusOK, "auth", page)
		return
	}

	resp, err := s.backend.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			page.Errors["signup_email"] = "An account with this email may already exist."
		} else {
			page.Flash = backendDownMessage
		}
		page.Data = s.authView("")
		s.render.Render(w, http.StatusOK, "auth", page)
		return
	}

	if _, err := s.sessions.Create(w, resp.User.Account(), resp.AccessToken, false); err != nil {
		logging.Err(err).Msg("Failed to create session after signup")
		s.render.RenderError(w, http.StatusInternalServerError, backendDownMessage)
		return
	}

	metrics.SessionsCreated.WithLabelValues("signup").Inc()
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ===== SSO =====

func (s *Server) ssoLogin(w http.ResponseWriter, r *http.Request) {
	if s.sso == nil {
		s.notFound(w, r)
		return
	}

	authURL, err := s.sso.BeginLogin(safeNext(r.URL.Query().Get("next")))
	if err != nil {
		logging.Err(err).Msg("Failed to begin SSO login")
		s.render.RenderError(w, http.StatusInternalServerError, backendDownMessage)
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}

func (s *Server) ssoCallback(w http.ResponseWriter, r *http.Request) {
	if s.sso == nil {
		s.notFound(w, r)
		return
	}

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		s.render.RenderError(w, http.StatusBadRequest, "The sign-on response is incomplete. Start again from the sign-in page.")
		return
	}

	identity, next, err := s.sso.HandleCallback(r.Context(), code, state)
	if err != nil {
		logging.Err(err).Msg("SSO callback failed")
		s.render.RenderError(w, http.StatusBadRequest, "Single sign-on failed. Start again from the sign-in page.")
		return
	}

	resp, err := s.backend.LoginSSO(r.Context(), models.SSORequest{
		Email:    identity.Email,
		Subject:  identity.Subject,
		Provider: "oidc",
	})
	if err != nil {
		logging.Err(err).Msg("Backend rejected SSO identity")
		s.render.RenderError(w, http.StatusServiceUnavailable, backendDownMessage)
		return
	}

	if _, err := s.sessions.Create(w, resp.User.Account(), resp.AccessToken, false); err != nil {
		logging.Err(err).Msg("Failed to create session after SSO")
		s.render.RenderError(w, http.StatusInternalServerError, backendDownMessage)
		return
	}

	metrics.SessionsCreated.WithLabelValues("sso").Inc()
	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

// clientIP keys the access-key rate limiter. RealIP middleware has already
// normalized RemoteAddr.
func clientIP(r *http.Request) string {
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}
