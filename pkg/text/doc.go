// Package text provides the single-line primitives the renderers are
// built from: word wrapping with an overflow policy, alignment padding,
// and horizontal rules. All width math is in display columns so that
// wide runes in input data are measured correctly, even though every
// frame glyph textkit emits is plain ASCII.
package text
