// Package sitesearch provides a local, CLI-based site search engine.
// It crawls a closed corpus of hyperlinked HTML pages breadth-first,
// tokenizes and indexes the extracted text, and ranks query results with
// TF-IDF weighted by link popularity.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, bloom/).
package sitesearch
