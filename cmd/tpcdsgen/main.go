// Package main is the tpcdsgen command-line entry point. It uses cobra
// for CLI parsing, matching the one-root-many-subcommands layout its
// own teacher's CLI uses.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"tpcdsgen/internal/dist"
	"tpcdsgen/internal/schema"
	"tpcdsgen/internal/session"
)

type generateFlags struct {
	scaleFactor    float64
	tables         []string
	outputDir      string
	separator      string
	parts          int
	part           int
	noOutput       bool
	jsonSummary    bool
	maxRowsPerSec  float64
	configFile     string
	isSexist       bool
	commandLineRaw string
	changed        func(name string) bool
}

// fileConfig is the shape a --config TOML file may override defaults
// with; a flag given on the command line keeps its value over the file's.
type fileConfig struct {
	ScaleFactor float64  `toml:"scale_factor"`
	Tables      []string `toml:"tables"`
	OutputDir   string   `toml:"output_dir"`
	Separator   string   `toml:"separator"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "tpcdsgen",
		Short: "Deterministic TPC-DS benchmark data generator",
	}
	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate TPC-DS table data at a given scale factor",
		RunE: func(c *cobra.Command, args []string) error {
			flags.commandLineRaw = strings.Join(os.Args, " ")
			flags.changed = c.Flags().Changed
			return runGenerate(flags)
		},
	}

	cmd.Flags().Float64VarP(&flags.scaleFactor, "scale", "s", 1, "Scale factor")
	cmd.Flags().StringSliceVarP(&flags.tables, "table", "T", nil, "Table(s) to generate (repeatable); default is all tables")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "./data", "Output directory for generated .dat files")
	cmd.Flags().StringVar(&flags.separator, "separator", "|", "Column separator")
	cmd.Flags().IntVar(&flags.parts, "parts", 1, "Split each table's row range into this many parts")
	cmd.Flags().IntVar(&flags.part, "part", 1, "Which part (1-based) this run produces")
	cmd.Flags().BoolVar(&flags.noOutput, "no-output", false, "Run generation but discard rows (for timing runs)")
	cmd.Flags().BoolVar(&flags.jsonSummary, "json", false, "Print a machine-readable run summary to stdout")
	cmd.Flags().Float64Var(&flags.maxRowsPerSec, "max-rows-per-sec", 0, "Throttle row output (0 = unlimited)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Optional TOML config file; flags override its values")
	cmd.Flags().BoolVar(&flags.isSexist, "is-sexist", false, "Recorded on the run's session; no table generator reads it")

	return cmd
}

func runGenerate(flags *generateFlags) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	if flags.configFile != "" {
		if err := applyFileConfig(flags); err != nil {
			return err
		}
	}

	tables, err := resolveTables(flags.tables)
	if err != nil {
		return err
	}

	sess, err := session.New(flags.scaleFactor, tables, flags.outputDir, flags.separator, flags.parts, flags.part)
	if err != nil {
		return err
	}
	sess.IsSexist = flags.isSexist
	sess.CommandLineArguments = flags.commandLineRaw

	logger.Info().Str("session", sess.String()).Msg("starting generation run")

	runDir, err := stageOutputDir(sess.OutputDir)
	if err != nil {
		return fmt.Errorf("staging output directory: %w", err)
	}
	logger.Info().Str("dir", runDir).Msg("staged output directory")

	var limiter *rate.Limiter
	if flags.maxRowsPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(flags.maxRowsPerSec), int(flags.maxRowsPerSec))
	}

	registry := dist.NewRegistry(logger)

	summary, err := generateTables(sess, runDir, registry, limiter, flags.noOutput, logger)
	if err != nil {
		return err
	}

	if flags.jsonSummary {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	for _, t := range summary.Tables {
		fmt.Printf("%-20s %10d rows\n", t.Name, t.Rows)
	}
	return nil
}

type tableSummary struct {
	Name string `json:"name"`
	Rows int64  `json:"rows"`
}

type runSummary struct {
	ScaleFactor float64        `json:"scale_factor"`
	Tables      []tableSummary `json:"tables"`
}

func resolveTables(names []string) ([]schema.Table, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var tables []schema.Table
	for _, n := range names {
		t, ok := schema.ByName(strings.ToLower(strings.TrimSpace(n)))
		if !ok {
			return nil, fmt.Errorf("unknown table %q", n)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// stageOutputDir creates a unique, per-run subdirectory under baseDir so
// concurrent or repeated runs never clobber each other's output.
func stageOutputDir(baseDir string) (string, error) {
	runDir := filepath.Join(baseDir, uuid.NewString())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}
	return runDir, nil
}

func applyFileConfig(flags *generateFlags) error {
	var cfg fileConfig
	if _, err := toml.DecodeFile(flags.configFile, &cfg); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if cfg.ScaleFactor > 0 && !flags.changed("scale") {
		flags.scaleFactor = cfg.ScaleFactor
	}
	if len(cfg.Tables) > 0 && len(flags.tables) == 0 {
		flags.tables = cfg.Tables
	}
	if cfg.OutputDir != "" && !flags.changed("output-dir") {
		flags.outputDir = cfg.OutputDir
	}
	if cfg.Separator != "" && !flags.changed("separator") {
		flags.separator = cfg.Separator
	}
	return nil
}
