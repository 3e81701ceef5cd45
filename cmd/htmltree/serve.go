package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve a live preview of a YAML document model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr())
			file := args[0]

			r := chi.NewRouter()
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				// Re-render per request so edits to the model show up
				// on refresh.
				html, err := renderFile(file, false)
				if err != nil {
					logger.Error("render failed", "file", file, "err", err)
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Write([]byte(html))
			})

			logger.Info("serving preview", "file", file, "addr", addr)
			return http.ListenAndServe(addr, r)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}
