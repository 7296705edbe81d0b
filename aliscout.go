// Package aliscout scrapes AliExpress keyword searches and loads the
// results into a relational store. A collection loop pages through
// rendered search results until a target sample size is reached, the raw
// listings are snapshotted to a CSV file, and a category-scoped ingest
// pipeline persists them for later querying by keyword.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, goquery/).
package aliscout
