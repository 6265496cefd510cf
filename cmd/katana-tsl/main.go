package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"katanatsl"
	"katanatsl/internal/config"
	"katanatsl/internal/render"
)

var cfg = config.LoadFromEnv()

var rootCmd = &cobra.Command{
	Use:   "katana-tsl",
	Short: "Decode BOSS KATANA MkII TSL patch files",
	Long: `katana-tsl reads TSL patch banks exported by BOSS Tone Studio
for the KATANA MkII and prints the decoded patches.

Example: katana-tsl decode --format yaml liveset.tsl
Files are read from stdin when the path is "-" or missing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !render.Valid(cfg.Format) {
			return errUnknownFormat(cfg.Format)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: json, yaml or text")
	rootCmd.PersistentFlags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "patches decoded concurrently")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func loadDocument(cmd *cobra.Command, args []string) (*katanatsl.Document, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	return katanatsl.DecodeTSL(data, katanatsl.WithWorkers(cfg.Workers))
}
