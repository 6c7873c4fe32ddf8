package dispatch

// Options is the loosely typed options bag supplied by external
// collaborators alongside data and a display kind. Renderers read
// recognized keys through the typed getters; unrecognized keys are
// ignored.
type Options map[string]interface{}

// Recognized option keys for the built-in kinds
const (
	OptWidth      = "width"
	OptTitle      = "title"
	OptStyle      = "style"
	OptNumbered   = "numbered"
	OptShowValues = "show_values"
	OptLabel      = "label"
)

// Int returns the integer at key, accepting float64 values as JSON
// decoders produce them, or def when absent or the wrong type
func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}

// Float returns the float at key, accepting integers, or def
func (o Options) Float(key string, def float64) float64 {
	switch v := o[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// Bool returns the bool at key, or def
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

// String returns the string at key, or def
func (o Options) String(key, def string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return def
}

// Has reports whether key is present
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Merge overlays o on top of defaults, returning a new bag. Keys in o
// win; neither input is modified.
func (o Options) Merge(defaults Options) Options {
	out := make(Options, len(defaults)+len(o))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range o {
		out[k] = v
	}
	return out
}
