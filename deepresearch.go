// Package deepresearch provides an archive of AI research conversations.
// Users submit URLs pointing to conversations or documents shared from AI
// chat providers; the page is fetched, its readable content extracted with
// provider-aware selectors, optionally enhanced by an LLM, and stored as a
// Research record that can be searched and ranked.
//
// This package contains domain types, interfaces and pure ranking logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goquery/, anthropic/).
package deepresearch
