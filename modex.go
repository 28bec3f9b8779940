// Package modex turns a documentation website into a structured catalogue of
// product modules and submodules. It crawls a documentation site within its
// own domain, preprocesses the pages into structured text, and runs a
// two-pass LLM extraction pipeline (raw extraction over token-bounded chunks,
// then a synthesis pass that merges and deduplicates the results).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, goquery/, sqlite/);
// orchestration lives in crawl/ and extract/.
package modex
