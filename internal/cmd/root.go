// Package cmd implements the domainscout CLI.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/domainscout/domainscout/internal/config"
	"github.com/domainscout/domainscout/internal/observability"
)

var (
	cfgFile string
	verbose bool

	// cliLogger is initialized before any subcommand runs.
	cliLogger *zap.Logger

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by the main package to set version information.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "domainscout",
	Short: "Assess domain availability for candidate business names",
	Long: `DomainScout assesses domain availability for candidate business names.

Each name expands into a set of domain variations; each domain is probed
over DNS, WHOIS, and HTTP and the signals are combined into a scored,
confidence-labeled verdict.

Use the subcommands to perform specific operations.`,
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/domainscout/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig layers defaults, the config file, and environment
// variables into viper before any command runs.
func initConfig() {
	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(configDir, "domainscout"))
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("DOMAINSCOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: could not read config: %v\n", err)
		}
	}

	cliLogger = observability.NewCLILogger("domainscout", verbose)
}

// loadConfig decodes and validates the merged settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
