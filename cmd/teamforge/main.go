package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/anthropics/teamforge/internal/bundle"
	"github.com/anthropics/teamforge/internal/catalog"
	"github.com/anthropics/teamforge/internal/compile"
	"github.com/anthropics/teamforge/internal/config"
	"github.com/anthropics/teamforge/internal/domain"
	"github.com/anthropics/teamforge/internal/ipc"
	"github.com/anthropics/teamforge/internal/recommend"
)

// Build-time version metadata, set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "teamforge",
	Short: "teamforge - AI agent team configuration compiler",
	Long: `teamforge compiles a questionnaire answer set into a ready-to-use
AI agent team configuration: governance policy, per-role instruction
documents, machine-readable config and session state templates.

The compiler is pure: the same answers and timestamp always produce the
same bundle.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var (
	generateAnswers string
	generateOut     string
	generateZip     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compile an answer set into the agent team bundle",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := loadAnswers(generateAnswers)
		if err != nil {
			return err
		}

		compiler := compile.New(catalog.All(), compile.SystemClock{})
		files := compiler.Compile(answers)

		if generateZip != "" {
			if err := bundle.WriteZipFile(generateZip, files); err != nil {
				return err
			}
			logger.Info("bundle archived",
				zap.String("path", generateZip),
				zap.Int("files", len(files)))
			return nil
		}

		if err := bundle.WriteDir(generateOut, files); err != nil {
			return err
		}
		logger.Info("bundle written",
			zap.String("dir", generateOut),
			zap.Int("files", len(files)))
		return nil
	},
}

var (
	recommendQuestion int
	recommendAnswers  string
	recommendLang     string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the recommended answer for a question as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := domain.AnswerSet{}
		if recommendAnswers != "" {
			var err error
			answers, err = loadAnswers(recommendAnswers)
			if err != nil {
				return err
			}
		}

		engine := recommend.NewEngine(catalog.All())
		rec, err := engine.Recommend(recommendQuestion, answers, recommend.Language(recommendLang))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question catalog as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog.All())
	},
}

var serveConfig string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stateless HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if serveConfig != "" {
			var err error
			cfg, err = config.Load(serveConfig)
			if err != nil {
				return err
			}
		}

		handler := &ipc.Handler{
			Catalog:     catalog.All(),
			Engine:      recommend.NewEngine(catalog.All()),
			Compiler:    compile.New(catalog.All(), compile.SystemClock{}),
			DefaultLang: recommend.Language(cfg.DefaultLang),
		}
		server := ipc.NewServer(handler, logger, cfg.ListenAddr, cfg.CORSOrigin)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("addr", cfg.ListenAddr))
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		}
	},
}

// loadAnswers reads an answer set from a JSON file keyed by question id,
// with string values for text/single answers and arrays for multi answers.
func loadAnswers(path string) (domain.AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var answers domain.AnswerSet
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers JSON: %w", err)
	}
	return answers, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	generateCmd.Flags().StringVar(&generateAnswers, "answers", "", "path to answers JSON file (required)")
	generateCmd.Flags().StringVar(&generateOut, "out", ".", "output directory for the bundle")
	generateCmd.Flags().StringVar(&generateZip, "zip", "", "write the bundle as a zip archive instead")
	_ = generateCmd.MarkFlagRequired("answers")

	recommendCmd.Flags().IntVar(&recommendQuestion, "question", 0, "question id to recommend for")
	recommendCmd.Flags().StringVar(&recommendAnswers, "answers", "", "path to answers JSON file")
	recommendCmd.Flags().StringVar(&recommendLang, "lang", "en", "justification language (en or ru)")

	serveCmd.Flags().StringVar(&serveConfig, "config", "", "path to server config JSON file")

	rootCmd.AddCommand(generateCmd, recommendCmd, questionsCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
