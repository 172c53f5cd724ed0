package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"pubguide/internal/app"
	"pubguide/internal/content"
	"pubguide/internal/guide"
)

var (
	cfgFile string

	cfg      app.Config
	logger   = zap.NewNop()
	logLevel zap.AtomicLevel
)

var rootCmd = &cobra.Command{
	Use:   "pubguide",
	Short: "Guide to academic publishing",
	Long:  "pubguide serves and prints an interactive guide to academic publishing: publication types, journals, metrics, peer review and promotion.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = app.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, logLevel, err = app.NewLogger(cfg.Log)
		if err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("config loaded", zap.String("file", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .pubguide.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (json or console)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pubguide")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	app.BindEnv()

	// no config file is fine
	_ = viper.ReadInConfig()
}

func loadRenderer() (*guide.Renderer, error) {
	lib, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return guide.NewRenderer(lib)
}

// resolvePage accepts a page title ("Journal Metrics") or slug ("journal_metrics").
func resolvePage(arg string) (guide.PageID, error) {
	if id, err := guide.ParsePage(arg); err == nil {
		return id, nil
	}
	return guide.PageBySlug(arg)
}
