// Package notes turns web page URLs into structured, citation-bearing notes:
// clean Markdown, length-bounded bullet summaries, navigable outlines, and
// merged multi-URL study guides.
//
// This package contains domain types, interfaces, and the pure pipeline
// algorithms (section indexing, summarization, outlining) following Ben
// Johnson's Standard Package Layout. Implementations live in subdirectories
// named after their primary dependency (e.g., http/, goquery/,
// htmltomarkdown/).
package notes
