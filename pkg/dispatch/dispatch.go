package dispatch

import (
	"time"

	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/config"
	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/logging"
	"github.com/arthur-debert/textkit/pkg/registry"
)

// Built-in display kinds
const (
	KindBox      = "box"
	KindTable    = "table"
	KindTree     = "tree"
	KindList     = "list"
	KindBarChart = "bar_chart"
	KindProgress = "progress"
)

// RendererFunc renders data with options into a Block. The dispatcher
// is passed so renderers can recursively render nested sections.
type RendererFunc func(data interface{}, opts Options, d *Dispatcher) (*block.Block, error)

// Dispatcher routes (kind, data, options) to registered renderers.
// The zero value is not usable; construct with New.
type Dispatcher struct {
	renderers registry.Registry[RendererFunc]
	cfg       *config.Config
}

// New creates a dispatcher with the built-in kinds registered. A nil
// cfg means every render reads the process-wide default configuration
// at call time.
func New(cfg *config.Config) *Dispatcher {
	d := &Dispatcher{
		renderers: registry.New[RendererFunc](),
		cfg:       cfg,
	}
	for kind, fn := range builtins() {
		registry.MustRegister(d.renderers, kind, fn)
	}
	return d
}

// Register adds a custom renderer for kind. Registering an existing
// kind fails with ALREADY_EXISTS; registration is explicit insertion
// at startup, not override.
func (d *Dispatcher) Register(kind string, fn RendererFunc) error {
	if fn == nil {
		return errors.New(errors.ErrInvalidInput, "renderer must not be nil")
	}
	return d.renderers.Register(kind, fn)
}

// Kinds returns the registered display kinds in sorted order
func (d *Dispatcher) Kinds() []string {
	return d.renderers.List()
}

// Render routes data to the renderer registered for kind. Renderer
// errors propagate unchanged; the dispatcher adds nothing and masks
// nothing.
func (d *Dispatcher) Render(kind string, data interface{}, opts Options) (*block.Block, error) {
	fn, err := d.renderers.Get(kind)
	if err != nil {
		return nil, errors.Newf(errors.ErrUnknownDisplayKind, "no renderer registered for kind %q", kind)
	}

	logger := logging.GetLogger("dispatch")
	logger.Trace().Str("kind", kind).Msg("rendering")
	defer logging.LogDuration(time.Now(), "render."+kind)

	return fn(data, opts, d)
}

// Compose concatenates blocks vertically with spacing blank lines
// between them. It is exposed here so custom renderers can assemble
// sub-blocks produced by other kinds.
func Compose(blocks []*block.Block, spacing int) (*block.Block, error) {
	return block.Stack(blocks, spacing)
}
