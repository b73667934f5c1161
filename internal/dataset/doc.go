// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

/*
Package dataset parses the seller export files uploaded to the dashboards.

Five kinds are accepted: sold_items, payments, and sold_orders CSVs, a
reviews JSON export, and a listings CSV. Headers resolve through a
case-insensitive alias table covering the English and French export column
names Etsy has shipped over the years.

Cleaning rules for sales rows:
  - currency symbols and separators are stripped from money fields
  - dates parse from MM/DD/YY, MM/DD/YYYY, YYYY-MM-DD, and DD/MM/YYYY
  - rows with an unparseable date or price, or price <= 0, are dropped
  - Quantity defaults to 1; Shipping and Cost default to 0

Uploads decode from UTF-8, Windows-1252, or Latin-1 (in that order of
preference); a UTF-8 BOM is stripped.

Parsing is pure: no I/O, no state. Persistence of parsed datasets is the
session store's concern (internal/storage), archival the collector's
(internal/collect).
*/
package dataset
