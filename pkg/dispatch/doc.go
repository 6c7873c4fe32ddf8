// Package dispatch maps a display-kind tag and an options bag to the
// matching renderer. The six built-in kinds are registered on
// construction; external code adds custom kinds through Register. A
// custom renderer receives the dispatcher itself so it can invoke
// built-in or other custom kinds for nested sections, and Compose so
// it can stack the resulting blocks. Higher-level report displays are
// assembled from lower-level ones without re-implementing layout.
package dispatch
