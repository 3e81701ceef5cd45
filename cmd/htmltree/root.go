package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "htmltree",
		Short:         "Render YAML document models to HTML",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	return root
}

// newLogger creates a logger with timestamp formatting, writing to w and
// filtering at debug level when --verbose is set.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
