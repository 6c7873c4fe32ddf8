// Package render implements the built-in display renderers: box,
// table, tree, list, bar chart and progress. Each renderer is a pure
// function from typed data and options to a width-uniform Block; it
// validates its input eagerly and never returns a partially rendered
// result. Overflow conditions (long titles, long words, values past
// their total) degrade gracefully by policy and are never errors.
package render
