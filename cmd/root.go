// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jdfalk/library-catalog/internal/catalog"
	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/jdfalk/library-catalog/internal/metrics"
	"github.com/jdfalk/library-catalog/internal/operations"
	"github.com/jdfalk/library-catalog/internal/shell"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultLogFile = "library-catalog.log"

var cfgFile string
var seedFile string
var maxYear int
var languageTag string
var logFilePath string
var metricsAddr string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "library-catalog",
	Short: "Track physical and digital books from an interactive menu",
	Long: `Library Catalog keeps a list of physical and digital books in memory and
lets you add, borrow, return, download and inspect them from a numbered menu.

The catalog lives only as long as the process; use --seed to start from a
YAML list of books.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.library-catalog.yaml)")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML file with books to load at startup")
	rootCmd.PersistentFlags().IntVar(&maxYear, "max-year", 0, "latest accepted publication year (0 = current year)")
	rootCmd.PersistentFlags().StringVar(&languageTag, "lang", "en", "language used to format numbers (BCP 47 tag)")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", defaultLogFile, "file that receives the application log")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (disabled when empty)")

	rootCmd.AddCommand(diagnosticsCmd)
}

// bindFlags connects flags to viper keys. Called on every initConfig so the
// bindings survive viper.Reset.
func bindFlags() {
	viper.BindPFlag("seed_file", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("max_year", rootCmd.PersistentFlags().Lookup("max-year"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("metrics_addr", rootCmd.Flags().Lookup("metrics-addr"))
}

func initConfig() {
	bindFlags()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".library-catalog")
	}

	viper.SetEnvPrefix("LIBRARY_CATALOG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()

	// Ensure log directory exists
	if dir := filepath.Dir(config.AppConfig.LogFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log directory: %v\n", err)
		}
	}
}

// setupFileLogging sends the standard logger to the configured log file so the
// menu transcript on stdout stays readable.
func setupFileLogging() (*os.File, error) {
	path := config.AppConfig.LogFile
	if path == "" {
		path = defaultLogFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return f, nil
}

func runShell(in io.Reader, out io.Writer) error {
	logFile, err := setupFileLogging()
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Printf("[INFO] Starting library catalog (max year %d, language %s)", config.AppConfig.MaxYear, config.AppConfig.Language)

	c := catalog.New()
	if err := importSeed(c, config.AppConfig.SeedFile, config.AppConfig.MaxYear); err != nil {
		return err
	}

	metrics.Register()
	if addr := config.AppConfig.MetricsAddr; addr != "" {
		srv := startMetricsServer(addr)
		defer srv.Close()
	}

	ops := operations.NewService(c, config.AppConfig.LanguageTag(), config.AppConfig.MaxYear)
	return shell.New(ops, in, out, config.AppConfig.MaxYear).Run()
}

// importSeed loads the seed file, if any, into the catalog
func importSeed(c *catalog.Catalog, path string, maxYear int) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	items, err := catalog.LoadSeed(path, maxYear)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(items)), "Loading seed")
	for _, item := range items {
		c.Add(item)
		_ = bar.Add(1)
	}
	log.Printf("[INFO] Loaded %d books from %s", len(items), path)
	return nil
}

func startMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("[INFO] Serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[WARN] Metrics listener stopped: %v", err)
		}
	}()
	return srv
}
