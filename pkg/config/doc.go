// Package config holds the rendering configuration shared by every
// renderer: today a single default layout width. Configuration is
// loaded from embedded defaults, an optional textkit.toml (XDG config
// directory, then the working directory), and TEXTKIT_* environment
// variables, in that order of precedence.
//
// The package-level default is set during application initialization
// and read by render calls; callers that need per-call isolation pass
// an explicit width to the renderer instead of mutating the default.
package config
