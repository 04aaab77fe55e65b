package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/HerbHall/apidex/internal/catalog"
	"github.com/HerbHall/apidex/internal/config"
	"github.com/HerbHall/apidex/internal/version"
	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath  string
	catalogPath string
	debug       bool

	cfg    *config.Config
	logger *zap.Logger
	engine *catalog.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "apidex",
		Short:         "A directory of public APIs",
		Long:          `apidex loads a catalog of public API descriptors and lets you search, filter and browse it from the command line, over HTTP or as MCP tools.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to configuration file")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog file (.yaml or .json); defaults to the embedded catalog")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newMCPCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newRelatedCmd(a),
		newCategoriesCmd(a),
		newCategoryCmd(a),
		newStatsCmd(a),
	)
	return root
}

// init loads config, builds the logger and the engine.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.catalogPath != "" {
		cfg.Viper().Set("catalog.path", a.catalogPath)
	}
	a.cfg = cfg

	a.logger, err = newLogger(cmd.Name(), a.debug, cfg.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.engine, err = buildEngine(cfg, a.logger)
	return err
}

// newLogger picks a production logger for long-running commands and stays
// quiet for one-shot reads unless --debug is set.
func newLogger(command string, debug bool, level string) (*zap.Logger, error) {
	switch {
	case debug:
		return zap.NewDevelopment()
	case command == "serve" || command == "mcp":
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(lvl)
		return zc.Build()
	default:
		return zap.NewNop(), nil
	}
}

// buildEngine loads the configured catalog and wraps it in an engine.
func buildEngine(cfg *config.Config, logger *zap.Logger) (*catalog.Engine, error) {
	var (
		cat *pkgcatalog.Catalog
		err error
	)
	if path := cfg.GetString("catalog.path"); path != "" {
		cat, err = pkgcatalog.LoadFile(path,
			pkgcatalog.WithStrict(cfg.GetBool("catalog.strict")),
			pkgcatalog.WithLogger(logger),
		)
	} else {
		cat, err = pkgcatalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	locale, err := language.Parse(cfg.GetString("catalog.locale"))
	if err != nil {
		return nil, fmt.Errorf("catalog.locale: %w", err)
	}

	engine, err := catalog.NewEngine(cat,
		catalog.WithLocale(locale),
		catalog.WithFeatured(cfg.GetInt("catalog.featured")),
		catalog.WithRelatedLimit(cfg.GetInt("catalog.related_limit")),
	)
	if err != nil {
		return nil, fmt.Errorf("index catalog: %w", err)
	}

	logger.Info("catalog loaded",
		zap.Int("apis", cat.Len()),
		zap.Int("quarantined", len(cat.Quarantined())),
		zap.Int("categories", engine.Slugs().Len()),
	)
	return engine, nil
}
