// Package block defines the Block type, the common currency between
// renderers: an immutable, ordered sequence of lines that all share
// the same display width. Renderers produce Blocks, composition stacks
// them, and String() is the single point where a Block becomes plain
// multi-line text.
package block
