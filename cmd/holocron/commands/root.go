package commands

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"holocron/internal/app"
)

var (
	cfgFile   string
	dataDir   string
	outDir    string
	swapiURL  string
	cacheDir  string
	noCache   bool
	logFormat string
	verbose   bool

	appCtx *app.App
)

// Execute runs the CLI with ctx as the base context of every command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "holocron",
		Short:        "Ingest, enrich and export Star Wars reference data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; real environment variables win.
			_ = godotenv.Load()

			path, mustExist := cfgFile, cmd.Flags().Changed("config")
			if path == "" {
				path = app.DefaultConfigFile
			}
			cfg, err := app.Load(path, mustExist)
			if err != nil {
				return err
			}
			applyFlags(cfg)

			logger, err := app.NewLogger(cfg.Log, verbose)
			if err != nil {
				return err
			}
			appCtx, err = app.New(cfg, logger)
			if err != nil {
				_ = logger.Sync()
				return err
			}
			logger.Debug("config loaded")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			appCtx.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./"+app.DefaultConfigFile+" if present)")
	pf.StringVar(&dataDir, "data-dir", "", "directory holding the input CSV and JSON files")
	pf.StringVar(&outDir, "out-dir", "", "directory the JSON artifacts are written to")
	pf.StringVar(&swapiURL, "swapi", "", "SWAPI base URL (e.g. https://swapi.py4e.com/api/)")
	pf.StringVar(&cacheDir, "cache-dir", "", "directory for the SWAPI response cache")
	pf.BoolVar(&noCache, "no-cache", false, "always fetch SWAPI resources over the network")
	pf.StringVar(&logFormat, "log-format", "", "log encoding: json or console")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(runCmd(), episodesCmd(), showCmd(), searchCmd(), verifyCmd())
	return root
}

// applyFlags lets explicit flags override the file and environment.
func applyFlags(cfg *app.Config) {
	if dataDir != "" {
		cfg.Paths.DataDir = dataDir
	}
	if outDir != "" {
		cfg.Paths.OutDir = outDir
	}
	if swapiURL != "" {
		cfg.SWAPI.BaseURL = swapiURL
	}
	if cacheDir != "" {
		cfg.Paths.CacheDir = cacheDir
	}
	if noCache {
		cfg.SWAPI.Cache = false
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
}
