package main

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"katanatsl/internal/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the decoder over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := httpserver.NewRouter(httpserver.RouterDeps{Config: cfg})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
		}

		log.Printf("listening on %s (workers=%d, max body %d bytes)", cfg.ListenAddr, cfg.Workers, cfg.MaxBytes)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "listen address")
	serveCmd.Flags().Int64Var(&cfg.MaxBytes, "max-bytes", cfg.MaxBytes, "largest accepted request body")
	serveCmd.Flags().DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout")
	rootCmd.AddCommand(serveCmd)
}
