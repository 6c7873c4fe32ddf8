package dispatch

import (
	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/render"
)

// builtins returns the renderer table for the built-in kinds
func builtins() map[string]RendererFunc {
	return map[string]RendererFunc{
		KindBox:      renderBox,
		KindTable:    renderTable,
		KindTree:     renderTree,
		KindList:     renderList,
		KindBarChart: renderBarChart,
		KindProgress: renderProgress,
	}
}

// renderOpts translates the options bag into renderer options,
// threading the dispatcher's configuration when one was supplied
func (d *Dispatcher) renderOpts(opts Options) []render.Option {
	var out []render.Option
	if d.cfg != nil {
		out = append(out, render.WithConfig(d.cfg))
	}
	if opts.Has(OptWidth) {
		out = append(out, render.WithWidth(opts.Int(OptWidth, 0)))
	}
	return out
}

func renderBox(data interface{}, opts Options, d *Dispatcher) (*block.Block, error) {
	ro := d.renderOpts(opts)
	if title := opts.String(OptTitle, ""); title != "" {
		ro = append(ro, render.WithTitle(title))
	}

	switch content := data.(type) {
	case string:
		return render.Box(content, ro...)
	case *block.Block:
		return render.BoxBlock(content, ro...)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "box expects string or Block content, got %T", data)
	}
}

func renderTable(data interface{}, opts Options, d *Dispatcher) (*block.Block, error) {
	td, ok := data.(render.TableData)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "table expects TableData, got %T", data)
	}
	return render.Table(td, d.renderOpts(opts)...)
}

func renderTree(data interface{}, opts Options, d *Dispatcher) (*block.Block, error) {
	root, ok := data.(*render.Node)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "tree expects a Node, got %T", data)
	}
	return render.Tree(root, d.renderOpts(opts)...)
}

func renderList(data interface{}, opts Options, d *Dispatcher) (*block.Block, error) {
	opts = opts.Merge(Options{OptStyle: string(render.StyleBullet)})

	var items []string
	switch v := data.(type) {
	case []string:
		items = v
	case []interface{}:
		items = make([]string, len(v))
		for i, item := range v {
			items[i] = render.FormatValue(item)
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "list expects a sequence of items, got %T", data)
	}

	ro := d.renderOpts(opts)
	ro = append(ro, render.WithStyle(render.ListStyle(opts.String(OptStyle, ""))))
	if opts.Bool(OptNumbered, false) {
		ro = append(ro, render.WithNumbered())
	}
	return render.List(items, ro...)
}

func renderBarChart(data interface{}, opts Options, d *Dispatcher) (*block.Block, error) {
	entries, ok := data.([]render.ChartEntry)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "bar_chart expects ChartEntry values, got %T", data)
	}

	ro := d.renderOpts(opts)
	if opts.Bool(OptShowValues, false) {
		ro = append(ro, render.WithShowValues())
	}
	return render.BarChart(entries, ro...)
}

func renderProgress(data interface{}, opts Options, d *Dispatcher) (*block.Block, error) {
	pd, ok := data.(render.ProgressData)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "progress expects ProgressData, got %T", data)
	}

	ro := d.renderOpts(opts)
	if label := opts.String(OptLabel, ""); label != "" {
		ro = append(ro, render.WithLabel(label))
	}
	return render.Progress(pd.Value, pd.Total, ro...)
}
