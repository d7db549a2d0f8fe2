package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"morse-translator/internal/cache"
	"morse-translator/internal/config"
	"morse-translator/internal/filewalker"
	"morse-translator/internal/morse"
	"morse-translator/internal/server"
	"morse-translator/internal/translation"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	cfg := config.Load()
	setupLogging(cfg, os.Stderr)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.LogFormat == "json" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
	}
	zerolog.DefaultContextLogger = &log.Logger
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "morse-translator",
		Short:        "Translate between Latin text and Morse code",
		Long:         "Detects whether input is Morse code or Latin letters and digits and translates it into the other form, reporting any characters it could not interpret.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(translateCmd(cfg))
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(dictionaryCmd())
	rootCmd.AddCommand(translateDirCmd(cfg))
	rootCmd.AddCommand(serveCmd(cfg))

	return rootCmd
}

func translateCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text to Morse or Morse to text (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			svc := translation.NewService(cache.NewResultCache(cfg.CacheSize), cfg.WorkerCount)
			res := svc.Translate(cmd.Context(), input)
			return writeResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, res)
		},
	}
	cmd.Flags().String("format", formatText, "Output format: text, json or yaml")
	return cmd
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Report whether input is morse, text or unsupported",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), morse.Classify(strings.Join(args, " ")))
			return err
		},
	}
}

func dictionaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Print the supported characters and their Morse codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return writeEntries(cmd.OutOrStdout(), format, morse.Entries())
		},
	}
	cmd.Flags().String("format", formatText, "Output format: text, json or yaml")
	return cmd
}

func translateDirCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "translate-dir <input-dir> <output-dir>",
		Short: "Translate every line of .txt and .morse files under a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()
			return runTranslateDir(ctx, cfg, args[0], args[1])
		},
	}
}

func serveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			ctx, cancel := setupContext()
			defer cancel()

			svc := translation.NewService(cache.NewResultCache(cfg.CacheSize), cfg.WorkerCount)
			return server.New(svc, cfg.MaxBodyBytes).Run(ctx, addr)
		},
	}
	cmd.Flags().String("addr", cfg.ListenAddr, "Listen address")
	return cmd
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// runTranslateDir handles the `translate-dir` command.
func runTranslateDir(ctx context.Context, cfg *config.Config, inputDir, outputDir string) error {
	logger := log.With().Str("run", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	w := filewalker.NewWalker()
	entries, err := w.Walk(inputDir)
	if err != nil {
		return fmt.Errorf("walk input directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	inputAbs, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input directory: %w", err)
	}
	outputAbs, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	svc := translation.NewService(cache.NewResultCache(cfg.CacheSize), cfg.WorkerCount)

	var translatedFiles, warnings int
	for _, entry := range entries {
		pr, err := entry.Parser.Parse(entry.Path)
		if err != nil {
			logger.Error().Err(err).Str("file", entry.Path).Msg("Parse failed")
			continue
		}

		lines := make([]string, len(pr.Lines))
		for i, el := range pr.Lines {
			lines[i] = el.Text
		}

		results, err := svc.TranslateLines(ctx, lines)
		if err != nil {
			return err
		}

		fileTranslations := make(map[int]string, len(results))
		for i, res := range results {
			lineNum := pr.Lines[i].Line
			fileTranslations[lineNum] = res.Text
			if res.Warning != "" {
				warnings++
				logger.Warn().
					Str("file", entry.Path).
					Int("line", lineNum).
					Msg(res.Warning)
			}
		}

		reconstructed, err := entry.Parser.Reconstruct(pr, fileTranslations)
		if err != nil {
			logger.Error().Err(err).Str("file", entry.Path).Msg("Reconstruct failed")
			continue
		}

		relPath, err := filepath.Rel(inputAbs, entry.Path)
		if err != nil {
			logger.Error().Err(err).Msg("Compute relative path")
			continue
		}
		outPath := filepath.Join(outputAbs, relPath)

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			logger.Error().Err(err).Str("path", outPath).Msg("Create output directory")
			continue
		}
		if err := os.WriteFile(outPath, reconstructed, 0644); err != nil {
			logger.Error().Err(err).Str("path", outPath).Msg("Write output file")
			continue
		}

		translatedFiles++
		logger.Info().
			Str("input", entry.Path).
			Str("output", outPath).
			Int("lines", len(results)).
			Msg("File translated")
	}

	logger.Info().
		Int("files", translatedFiles).
		Int("warnings", warnings).
		Str("output", outputDir).
		Msg("Directory translation complete")

	return nil
}
