package main

import (
	"fmt"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"

	"github.com/htmltree-dev/htmltree"
	"github.com/htmltree-dev/htmltree/internal/document"
)

func newRenderCmd() *cobra.Command {
	var (
		output   string
		sanitize bool
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a YAML document model to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr())

			html, err := renderFile(args[0], sanitize)
			if err != nil {
				return err
			}
			logger.Debug("rendered document", "file", args[0], "bytes", len(html))

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), html)
				return nil
			}
			if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			logger.Info("wrote output", "file", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to a file instead of stdout")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "filter the output through a UGC policy")
	return cmd
}

// renderFile loads and compiles a document model, optionally filtering the
// result through bluemonday's UGC policy.
func renderFile(path string, sanitize bool) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		return "", err
	}
	var view htmltree.View = doc.Compile()
	if sanitize {
		view = htmltree.Sanitized(bluemonday.UGCPolicy(), view)
	}
	return htmltree.Render(view)
}
