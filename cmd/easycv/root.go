package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/easycv/internal/config"
	"github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/logging"
	"github.com/ironsheep/easycv/internal/ocr"
	"github.com/ironsheep/easycv/internal/selector"
	"github.com/ironsheep/easycv/internal/transforms"
)

// app holds what every subcommand needs. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string

	cfg      *config.Config
	logger   zerolog.Logger
	cache    *imaging.ImageCache
	engine   ocr.Engine
	registry *transforms.Registry
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "easycv",
		Short: "Image transforms from the command line or as an MCP server",
		Long: `easycv applies image transforms (blur, gradients, edges, color, crop,
drawing, OCR and more) to files or URLs. Run it as a command, chaining
transforms with --then, or as an MCP server over stdio with "easycv serve".

Configuration comes from $HOME/.easycv.yaml (or --config), a .env file and
EASYCV_* environment variables, e.g. EASYCV_LOG_LEVEL=debug.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default $HOME/.easycv.yaml)")
	flags.StringVar(&a.envFile, "env-file", "", "env file to load (default ./.env if present)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(
		newServeCommand(a),
		newApplyCommand(a),
		newListCommand(a),
		newDescribeCommand(a),
		newInfoCommand(a),
		newVersionCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{ConfigFile: a.configFile, EnvFile: a.envFile})
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}

	// Logs go to stderr; stdout is for results and the MCP protocol.
	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	cache := imaging.NewImageCache()
	cache.SetEnabled(cfg.Cache.Enabled)
	cache.SetHTTPClient(&http.Client{Timeout: cfg.Download.Timeout})

	engine := ocr.New(logger, cfg.OCR.Tessdata)

	a.cfg = cfg
	a.logger = logger
	a.cache = cache
	a.engine = engine
	a.registry = transforms.NewRegistry(selector.New(logger), engine)

	logger.Debug().
		Str("backend", imaging.Backend).
		Str("version", Version).
		Msg("easycv initialized")
	return nil
}
