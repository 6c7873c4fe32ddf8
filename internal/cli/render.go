package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/textkit/pkg/dispatch"
	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		width      int
		title      string
		style      string
		label      string
		numbered   bool
		showValues bool
		value      float64
		total      float64
	)

	cmd := &cobra.Command{
		Use:   "render --kind KIND [file]",
		Short: "Render a data file as a plain-text display",
		Long: `Render reads JSON data from a file (or stdin when the file is "-")
and prints it as the given display kind. The box kind reads raw text
instead of JSON; the progress kind can take --value and --total flags
instead of a file.`,
		Example: `  # Render a table from a file
  textkit render --kind table data.json

  # Render a numbered list from stdin
  echo '["build", "test", "ship"]' | textkit render --kind list --numbered -

  # Render a progress bar from flags alone
  textkit render --kind progress --value 7 --total 10 --label sync`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			if kind == "" {
				return errors.New(errors.ErrInvalidInput, "--kind is required")
			}

			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			data, err := decodePayload(kind, raw, value, total)
			if err != nil {
				return err
			}

			opts := dispatch.Options{}
			if cmd.Flags().Changed("width") {
				opts[dispatch.OptWidth] = width
			}
			if title != "" {
				opts[dispatch.OptTitle] = title
			}
			if style != "" {
				opts[dispatch.OptStyle] = style
			}
			if label != "" {
				opts[dispatch.OptLabel] = label
			}
			if numbered {
				opts[dispatch.OptNumbered] = true
			}
			if showValues {
				opts[dispatch.OptShowValues] = true
			}

			d := dispatch.New(nil)
			block, err := d.Render(kind, data, opts)
			if err != nil {
				return err
			}

			log.Debug().Str("kind", kind).Int("height", block.Height()).Msg("Rendered display")
			fmt.Fprintln(cmd.OutOrStdout(), block.String())
			return nil
		},
	}

	cmd.Flags().String("kind", "", "Display kind (box, table, tree, list, bar_chart, progress)")
	cmd.Flags().IntVar(&width, "width", 0, "Target width in columns (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "Title embedded in the top border (box)")
	cmd.Flags().StringVar(&style, "style", "", "Item prefix style (list)")
	cmd.Flags().StringVar(&label, "label", "", "Label prefix (progress)")
	cmd.Flags().BoolVar(&numbered, "numbered", false, "Number items instead of prefixing them (list)")
	cmd.Flags().BoolVar(&showValues, "show-values", false, "Append numeric values after each bar (bar_chart)")
	cmd.Flags().Float64Var(&value, "value", 0, "Current value (progress, when no file is given)")
	cmd.Flags().Float64Var(&total, "total", 0, "Total value (progress, when no file is given)")

	return cmd
}

// readInput returns the payload bytes, or nil when no file argument was
// given. "-" reads from stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if args[0] == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read stdin")
		}
		return raw, nil
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to read %s", args[0])
	}
	return raw, nil
}

// decodePayload converts the raw input into the typed data the given
// display kind expects.
func decodePayload(kind string, raw []byte, value, total float64) (interface{}, error) {
	switch kind {
	case dispatch.KindBox:
		if raw == nil {
			return nil, errors.New(errors.ErrInvalidInput, "box requires a text file or stdin")
		}
		return strings.TrimRight(string(raw), "\n"), nil
	case dispatch.KindProgress:
		if raw == nil {
			return render.ProgressData{Value: value, Total: total}, nil
		}
		var pd struct {
			Value float64 `json:"value"`
			Total float64 `json:"total"`
		}
		if err := json.Unmarshal(raw, &pd); err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid progress payload")
		}
		return render.ProgressData{Value: pd.Value, Total: pd.Total}, nil
	case dispatch.KindTable:
		return decodeTable(raw)
	case dispatch.KindTree:
		return decodeTree(raw)
	case dispatch.KindList:
		return decodeList(raw)
	case dispatch.KindBarChart:
		return decodeChart(raw)
	default:
		// Let the dispatcher report unknown kinds uniformly.
		var data interface{}
		if raw == nil {
			return nil, nil
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid JSON payload")
		}
		return data, nil
	}
}

func decodeTable(raw []byte) (interface{}, error) {
	if raw == nil {
		return nil, errors.New(errors.ErrInvalidInput, "table requires a JSON file or stdin")
	}
	var payload struct {
		Headers []string          `json:"headers"`
		Rows    []json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid table payload")
	}

	data := render.TableData{Headers: payload.Headers}
	for i, rawRow := range payload.Rows {
		var cells []interface{}
		if err := json.Unmarshal(rawRow, &cells); err == nil {
			data.Rows = append(data.Rows, render.PositionalRow(cells...))
			continue
		}
		var keyed map[string]interface{}
		if err := json.Unmarshal(rawRow, &keyed); err != nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "row %d is neither an array nor an object", i)
		}
		data.Rows = append(data.Rows, render.KeyedRow(keyed))
	}
	return data, nil
}

// decodeTree maps JSON objects to nodes, arrays to sequences and scalars
// to leaves. Object keys are sorted so output is deterministic.
func decodeTree(raw []byte) (interface{}, error) {
	if raw == nil {
		return nil, errors.New(errors.ErrInvalidInput, "tree requires a JSON file or stdin")
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid tree payload")
	}
	return treeNode(payload), nil
}

func treeNode(obj map[string]interface{}) *render.Node {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := render.NewNode()
	for _, k := range keys {
		node.Add(k, treeValue(obj[k]))
	}
	return node
}

func treeValue(v interface{}) render.Value {
	switch tv := v.(type) {
	case map[string]interface{}:
		return treeNode(tv)
	case []interface{}:
		items := make([]interface{}, len(tv))
		copy(items, tv)
		return render.Seq(items...)
	default:
		return render.Leaf(v)
	}
}

func decodeList(raw []byte) (interface{}, error) {
	if raw == nil {
		return nil, errors.New(errors.ErrInvalidInput, "list requires a JSON file or stdin")
	}
	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid list payload")
	}
	return items, nil
}

// decodeChart accepts either an array of {label, value} objects, which
// preserves order, or a flat object whose keys are sorted.
func decodeChart(raw []byte) (interface{}, error) {
	if raw == nil {
		return nil, errors.New(errors.ErrInvalidInput, "bar_chart requires a JSON file or stdin")
	}

	var entries []struct {
		Label string  `json:"label"`
		Value float64 `json:"value"`
	}
	if err := json.Unmarshal(raw, &entries); err == nil {
		chart := make([]render.ChartEntry, len(entries))
		for i, e := range entries {
			chart[i] = render.ChartEntry{Label: e.Label, Value: e.Value}
		}
		return chart, nil
	}

	var flat map[string]float64
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid bar_chart payload")
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	chart := make([]render.ChartEntry, 0, len(keys))
	for _, k := range keys {
		chart = append(chart, render.ChartEntry{Label: k, Value: flat[k]})
	}
	return chart, nil
}
