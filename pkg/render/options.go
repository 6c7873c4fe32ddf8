package render

import (
	"github.com/arthur-debert/textkit/pkg/config"
	"github.com/arthur-debert/textkit/pkg/errors"
)

// Option configures a renderer call. Options not recognized by a
// renderer are ignored, mirroring the options-bag model of the
// dispatch layer.
type Option func(*options)

type options struct {
	width      int
	widthSet   bool
	cfg        *config.Config
	title      string
	label      string
	style      ListStyle
	numbered   bool
	showValues bool
}

// WithWidth overrides the configured default width for this call.
// This is the per-call isolation hook: callers that must not depend on
// the process-wide default pass an explicit width instead.
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = width
		o.widthSet = true
	}
}

// WithConfig threads an explicit configuration instead of the
// process-wide default
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithTitle sets the box title
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithLabel sets the progress bar label
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithStyle sets the list item prefix style
func WithStyle(style ListStyle) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithNumbered numbers list items instead of prefixing them
func WithNumbered() Option {
	return func(o *options) {
		o.numbered = true
	}
}

// WithShowValues appends the raw numeric value to each chart bar
func WithShowValues() Option {
	return func(o *options) {
		o.showValues = true
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// resolveWidth returns the effective total width for this call:
// explicit option, then threaded config, then the process default.
func (o *options) resolveWidth() (int, error) {
	if o.widthSet {
		if o.width <= 0 {
			return 0, errors.Newf(errors.ErrInvalidConfig, "width must be positive, got %d", o.width)
		}
		return o.width, nil
	}
	if o.cfg != nil {
		if err := o.cfg.Validate(); err != nil {
			return 0, err
		}
		return o.cfg.Width, nil
	}
	return config.Get().Width, nil
}
