// Package docsearch provides instant, offline search over the titles and
// headings of a static documentation site. It loads a precomputed search
// index, ranks entries against a free-text query, and drives an
// interactive result list through a small keyboard/pointer state machine.
//
// This package contains domain types, the matcher and the interaction
// state machine following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, http/, goquery/).
package docsearch
