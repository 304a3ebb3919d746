package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lep/jassbot/internal/config"
	"github.com/lep/jassbot/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".jassbot.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	colorMode string
	cfg       config.Config

	// "::" lets dotted keys like "syntax.keyword" live inside theme.colors.
	v = viper.NewWithOptions(viper.KeyDelimiter("::"))
)

var rootCmd = &cobra.Command{
	Use:   "jassbot",
	Short: "Documentation, search and highlighting for Warcraft III JASS",
	Long: `jassbot serves the jassdoc documentation database as a website, searches
natives and functions by type through the jassbot API, and highlights JASS and
Lua code for browsers and terminals.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.jassbot.yaml or ~/.config/jassbot/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"enable debug logging (also JASSBOT_DEBUG=1)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto",
		"terminal colors: auto, always or never")
	rootCmd.PersistentFlags().String("db", "", "path to the jassdoc sqlite database")
	rootCmd.PersistentFlags().String("api", "", "jassbot search API endpoint")

	_ = v.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	_ = v.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
}

func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("db", d.DB)
	v.SetDefault("api", d.API)
	v.SetDefault("auto_reload", d.AutoReload)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("server::addr", d.Server.Addr)
	v.SetDefault("server::url_prefix", d.Server.URLPrefix)
	v.SetDefault("server::base_url", d.Server.BaseURL)
	v.SetDefault("search::debounce", d.Search.Debounce)
	v.SetDefault("search::timeout", d.Search.Timeout)
	v.SetDefault("cache::markdown_ttl", d.Cache.MarkdownTTL)
	v.SetDefault("ui::markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("theme::preset", d.Theme.Preset)
	v.SetDefault("tracing::enabled", d.Tracing.Enabled)
	v.SetDefault("tracing::exporter", d.Tracing.Exporter)
	v.SetDefault("tracing::file_path", d.Tracing.FilePath)
	v.SetDefault("tracing::otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing::sample_rate", d.Tracing.SampleRate)
}

func initConfig() {
	setDefaults(v)

	// JASSBOT_DB, JASSBOT_SERVER_ADDR, ...
	v.SetEnvPrefix("JASSBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("::", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .jassbot.yaml (current directory)
		// 2. ~/.config/jassbot/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "jassbot"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "jassbot: reading config: %v\n", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "jassbot: decoding config: %v\n", err)
	}
	if cfg.Tracing.FilePath == "" {
		cfg.Tracing.FilePath = config.DefaultTracesFilePath()
	}
}

// configFilePath is where `config set` writes: the file that was read, or the
// user config when there was none.
func configFilePath() string {
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	if cfgFile != "" {
		return cfgFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return localConfigPath
	}
	return filepath.Join(home, ".config", "jassbot", "config.yaml")
}

func debugEnabled() bool {
	return debugFlag || os.Getenv("JASSBOT_DEBUG") != ""
}

// initFileLogging sends logs to a file for commands that own the terminal.
// Without --debug logging stays off.
func initFileLogging(prefix string) (func(), error) {
	if !debugEnabled() {
		return func() {}, nil
	}
	logPath := os.Getenv("JASSBOT_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "jassbot starting", "debug", true, "logPath", logPath, "version", version)
	return cleanup, nil
}

// initStderrLogging logs to stderr at the configured level, or debug with --debug.
func initStderrLogging() error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if debugEnabled() {
		level = log.LevelDebug
	}
	log.InitWriter(os.Stderr, level)
	return nil
}

// searchTimeout is the configured search timeout, or the default.
func searchTimeout() time.Duration {
	if cfg.Search.Timeout > 0 {
		return cfg.Search.Timeout
	}
	return config.Defaults().Search.Timeout
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(ver string) {
	version = ver
	rootCmd.Version = ver
}
