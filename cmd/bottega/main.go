package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ivoiuliano/bottega"
	"github.com/ivoiuliano/bottega/site"
)

// version is set at build time via ldflags.
var version = "dev"

// config is the CLI configuration, merged from defaults, bottega.yaml,
// BOTTEGA_* environment variables and flags.
type config struct {
	Addr              string `mapstructure:"addr"`
	ContentDir        string `mapstructure:"content_dir"`
	StaticDir         string `mapstructure:"static_dir"`
	PublicDir         string `mapstructure:"public_dir"`
	SiteFile          string `mapstructure:"site_file"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
	Dev               bool   `mapstructure:"dev"`
}

var (
	cfgFile string
	cfg     config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "bottega",
	Short: "Localized website of a violin-making workshop",
	Long: `bottega serves the multilingual site of a luthier's workshop: landing page,
Markdown blog, legal pages, RSS, sitemap.xml, robots.txt and llms.txt.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return err
		}
		return initializeLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./bottega.yaml)")
	pf.String("content-dir", "", "directory holding <locale>/<slug>.md posts")
	pf.String("site-file", "", "YAML file overriding the compiled-in site metadata")
	pf.Bool("dev", false, "human-readable debug logging")

	rootCmd.AddCommand(versionCmd)
}

var flagKeys = map[string]string{
	"content-dir":         "content_dir",
	"site-file":           "site_file",
	"dev":                 "dev",
	"addr":                "addr",
	"static-dir":          "static_dir",
	"out":                 "public_dir",
	"requests-per-minute": "requests_per_minute",
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	v.SetDefault("addr", ":3000")
	v.SetDefault("content_dir", "content/blog")
	v.SetDefault("static_dir", "public")
	v.SetDefault("public_dir", "public")
	v.SetDefault("site_file", "")
	v.SetDefault("requests_per_minute", 300)
	v.SetDefault("dev", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("bottega")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BOTTEGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}

func initializeLogger() error {
	var err error
	if cfg.Dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return err
}

// loadSite returns the compiled-in registries, overlaid by cfg.SiteFile when set.
func loadSite() (site.Site, error) {
	if cfg.SiteFile == "" {
		return site.Default(), nil
	}
	return site.Load(cfg.SiteFile)
}

// newApp wires an App from the CLI configuration.
func newApp() (*bottega.App, error) {
	s, err := loadSite()
	if err != nil {
		return nil, err
	}
	return bottega.New(bottega.SiteConfig{
		Addr:              cfg.Addr,
		ContentDir:        cfg.ContentDir,
		StaticDir:         cfg.StaticDir,
		RequestsPerMinute: cfg.RequestsPerMinute,
	}, bottega.ViewFuncs{},
		bottega.WithSite(s),
		bottega.WithLogger(logger),
	)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bottega version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bottega %s\n", version)
	},
}
