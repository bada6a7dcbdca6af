// Package frontpage builds a categorized snapshot of the day's news from a
// configured set of news homepages. It fetches each homepage, strips the
// markup down to readable text, asks an LLM to classify the combined text
// into a fixed set of categories, and persists the result as a single
// snapshot document that replaces the previous one.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, gemini/, mongo/).
package frontpage
