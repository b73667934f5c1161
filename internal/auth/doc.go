// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

/*
Package auth implements sessions and sign-in for the dashboards.

The frontend never stores passwords. Login and signup forms post here, the
backend verifies credentials, and on success a server-side session record is
written to the shared Badger store. The browser holds only an HTTP-only
cookie with a signed JWT (HS256) whose sid claim points at that record.
Sessions last 24 hours, or 30 days with "remember me".

Also here: the early-access key check (bcrypt against configured hashes,
rate limited per client), per-session CSRF tokens for form posts, and the
optional OIDC single sign-on flow (zitadel/oidc relying party with PKCE).
SSO routes only exist when an issuer is configured.
*/
package auth
