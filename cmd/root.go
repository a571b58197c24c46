// file: cmd/root.go
// version: 1.0.0
// guid: 3c9d2e71-8b4f-4a06-9d53-e7f1a0c6b284

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thriftpick/thriftpick/internal/catalog"
	"github.com/thriftpick/thriftpick/internal/collect"
	"github.com/thriftpick/thriftpick/internal/config"
	"github.com/thriftpick/thriftpick/internal/console"
	"github.com/thriftpick/thriftpick/internal/logging"
	"github.com/thriftpick/thriftpick/internal/recommend"
	"github.com/thriftpick/thriftpick/internal/session"
)

var cfgFile string
var catalogPath string
var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "thriftpick",
	Short: "Interactive thrift shop clothing recommender",
	Long: `Thriftpick holds a catalog of secondhand clothing, interviews you
about what you are looking for, and scores every item against your
stated preferences to surface the best matches.

Answers are matched fuzzily, so "outerware" still finds Outerwear.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.thriftpick.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file to load (default inventory.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")

	viper.BindPFlag("catalog_path", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(checkCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".thriftpick")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
	logging.Init(config.AppConfig.LogLevel, config.AppConfig.LogFile)
}

// runInteractive loads the catalog and drives the menu session until
// the user exits or interrupts.
func runInteractive(cmd *cobra.Command) error {
	cons := console.New(cmd.OutOrStdout())
	cat := loadCatalog(cons)

	// Ctrl+C lands mid-prompt; say goodbye instead of dying silently.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)
	go func() {
		<-interrupts
		cons.Interrupted()
		os.Exit(0)
	}()

	engine := recommend.New(
		recommend.WithWeights(recommend.WeightsWithOverrides(config.AppConfig.Weights)),
		recommend.WithScalarThreshold(config.AppConfig.ScalarThreshold),
		recommend.WithCutoff(config.AppConfig.GoodMatchCutoff),
		recommend.WithLimit(config.AppConfig.ResultLimit),
	)
	prompter := collect.NewConsolePrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	return session.New(session.Config{
		Catalog:    cat,
		Engine:     engine,
		Console:    cons,
		Prompter:   prompter,
		Collector:  collect.New(cat, prompter, cons, config.AppConfig.ResolveThreshold),
		ExportPath: config.AppConfig.ExportPath,
		Limit:      config.AppConfig.ResultLimit,
	}).Run()
}

// loadCatalog loads the configured catalog file and reports the outcome:
// loaded, created the default inventory (file missing), or fell back to
// the default after a load error.
func loadCatalog(cons *console.Console) *catalog.Catalog {
	cat, err := catalog.LoadOrDefault(config.AppConfig.CatalogPath)
	switch {
	case err == nil:
		cons.Infof("Loaded %d items from %s", cat.Len(), cat.Source())
	case errors.Is(err, fs.ErrNotExist):
		cons.Infof("Created default inventory with %d items", cat.Len())
	default:
		cons.Errorf("Error loading inventory: %v", err)
		cons.Infof("Using default inventory instead.")
	}
	return cat
}
