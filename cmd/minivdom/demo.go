package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vango-dev/minivdom/internal/demo"
	"github.com/vango-dev/minivdom/internal/errors"
	"github.com/vango-dev/minivdom/pkg/render"
	"github.com/vango-dev/minivdom/pkg/vdom"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatHTML = "html"
)

func demoCmd(flags *globalFlags) *cobra.Command {
	var (
		actions []string
		format  string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the counter/list demo against the in-memory target",
		Long: `Mount the demo app, apply a sequence of actions, and print the
result.

The text format prints the mutation log, a per-primitive summary
and the final HTML. The json and yaml formats dump the current
tree. The html format prints only the container's HTML.

Actions: increment, decrement, change-text, add-list-item, style-toggle

Examples:
  minivdom demo
  minivdom demo --actions increment,increment,style-toggle
  minivdom demo --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), flags, actions, format, pretty)
		},
	}

	cmd.Flags().StringSliceVarP(&actions, "actions", "a", demo.Actions, "Actions to apply after mounting")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text, json, yaml, html)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print HTML output")

	return cmd
}

func runDemo(out io.Writer, flags *globalFlags, actions []string, format string, pretty bool) error {
	if err := checkFormat(format, formatText, formatJSON, formatYAML, formatHTML); err != nil {
		return err
	}

	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	s := newSession(cfg, newLogger(cfg, os.Stderr), true)
	if err := s.run(actions); err != nil {
		return err
	}

	html, err := render.NewRenderer(render.RendererConfig{Pretty: pretty}).InnerHTML(s.container)
	if err != nil {
		return err
	}
	_, current := s.app.Trees()

	switch format {
	case formatJSON:
		return writeTree(out, current, vdom.DumpJSON)
	case formatYAML:
		return writeTree(out, current, vdom.DumpYAML)
	case formatHTML:
		fmt.Fprintln(out, html)
		return nil
	}

	fmt.Fprintln(out, "Mutations:")
	for _, line := range s.recorder.Strings() {
		info(out, "%s", line)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Summary:")
	summary := s.recorder.Summary()
	ops := make([]vdom.Op, 0, len(summary))
	for op := range summary {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	for _, op := range ops {
		info(out, "%-20s %d", op, summary[op])
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "HTML:")
	fmt.Fprintln(out, html)
	success(out, "Applied %d actions, %d mutations", len(actions), s.recorder.Len())
	return nil
}

func writeTree(out io.Writer, n *vdom.Node, dump func(*vdom.Node) ([]byte, error)) error {
	data, err := dump(n)
	if err != nil {
		return err
	}
	out.Write(data)
	if len(data) == 0 || data[len(data)-1] != '\n' {
		fmt.Fprintln(out)
	}
	return nil
}

func checkFormat(format string, valid ...string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}
	return errors.New("E301").
		WithDetail(fmt.Sprintf("Unknown format %q. Valid formats: %v", format, valid))
}
