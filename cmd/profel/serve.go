package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/LAWSA07/ProFel/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the matching HTTP API server",
	RunE:  runServeCmd,
}

var (
	serveConfigPath string
	serveAddr       string
	serveProfileDir string
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCommand.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to config or :8080)")
	serveCommand.Flags().StringVar(&serveProfileDir, "profile-dir", "", "Directory of stored profiles for file-backed fetching")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr = serveAddr
	}
	log := newLogger(cfg)

	ctx := context.Background()
	scorer, _, cleanup, err := buildScorer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{
		ListenAddr: cfg.ListenAddr,
		Scorer:     scorer,
		Registry:   buildRegistry(cfg, serveProfileDir),
		Logger:     log,
	})

	return srv.Start()
}
