// Package tenders extracts public tender publications from an
// infinite-scroll listing site and its per-item detail pages, normalizes
// the labeled fields into a fixed record schema and persists the rows.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package tenders
