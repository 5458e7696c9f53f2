package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/minivdom/pkg/vdom"
)

func dumpCmd(flags *globalFlags) *cobra.Command {
	var (
		actions []string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the previous and current demo trees",
		Long: `Mount the demo app, apply actions, and print the tree before the
last render next to the current tree. Handles are omitted.

Examples:
  minivdom dump --actions add-list-item
  minivdom dump --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), flags, actions, format)
		},
	}

	cmd.Flags().StringSliceVarP(&actions, "actions", "a", []string{"increment"}, "Actions to apply after mounting")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format (json, yaml)")

	return cmd
}

func runDump(out io.Writer, flags *globalFlags, actions []string, format string) error {
	if err := checkFormat(format, formatJSON, formatYAML); err != nil {
		return err
	}
	dump := vdom.DumpJSON
	if format == formatYAML {
		dump = vdom.DumpYAML
	}

	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	s := newSession(cfg, newLogger(cfg, os.Stderr), false)
	if err := s.run(actions); err != nil {
		return err
	}

	previous, current := s.app.Trees()
	fmt.Fprintln(out, "# previous")
	if err := writeTree(out, previous, dump); err != nil {
		return err
	}
	fmt.Fprintln(out, "# current")
	return writeTree(out, current, dump)
}
