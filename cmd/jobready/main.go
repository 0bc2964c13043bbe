package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/catalog"
	"github.com/Muzammil-Ahm3d/jobready/chat"
	"github.com/Muzammil-Ahm3d/jobready/gemini"
	"github.com/Muzammil-Ahm3d/jobready/htmltomarkdown"
	"github.com/Muzammil-Ahm3d/jobready/importer"
	"github.com/Muzammil-Ahm3d/jobready/reformat"
	jrslog "github.com/Muzammil-Ahm3d/jobready/slog"
	"github.com/alecthomas/kong"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Store overrides the configured dataset store. Used by tests.
	Store jobready.DatasetStore

	// Generator overrides the Gemini generator. Used by tests.
	Generator jobready.Generator

	closers []func() error
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases every backend opened by Run.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobready"),
		kong.Description("Technical interview questions with an AI fallback."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"model":      gemini.DefaultModel,
			"data":       DefaultDataPath,
			"gcs_object": DefaultGCSObject,
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobready --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose, kongCtx.Command() == "serve")

	store := m.Store
	if store == nil {
		backend, name, closer, err := openStore(ctx, &cli.Globals)
		if err != nil {
			return err
		}
		if closer != nil {
			m.closers = append(m.closers, closer)
		}
		store = jrslog.NewLoggingDatasetStore(backend, name, deps.Logger)
	}
	defer m.Close()

	// The serial lock wraps the logging decorator so UpdateDataset sees it.
	deps.Store = jobready.NewSerialStore(store)
	deps.Categories = catalog.NewCategoryService(deps.Store)
	deps.Questions = catalog.NewQuestionService(deps.Store)
	deps.Reformatter = jrslog.NewLoggingReformatter(&reformat.Reformatter{Store: deps.Store}, deps.Logger)
	deps.Importer = &importer.Importer{
		Store:     deps.Store,
		Converter: htmltomarkdown.NewConverter(),
		IsHTML:    htmltomarkdown.IsHTML,
	}

	switch kongCtx.Command() {
	case "serve", "ask <query>":
		resolver, err := m.newResolver(ctx, &cli.Globals, deps)
		if err != nil {
			return err
		}
		deps.Resolver = jrslog.NewLoggingResolver(resolver, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newResolver wires the chat resolver. Without an API key the resolver
// answers local hits only.
func (m *Main) newResolver(ctx context.Context, g *Globals, deps *Dependencies) (*chat.Resolver, error) {
	resolver := &chat.Resolver{
		Store:          deps.Store,
		Generator:      m.Generator,
		MinMatchLength: g.MinMatchLength,
		Logger:         deps.Logger,
	}

	if resolver.Generator == nil && g.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		generator := gemini.NewGenerator(client, g.Model)
		resolver.Generator = jrslog.NewLoggingGenerator(generator, deps.Logger)

		tc, err := gemini.NewTokenCounter(g.Model)
		if err != nil {
			deps.Logger.Warn("history token budget disabled", "model", g.Model, "err", err)
		} else {
			resolver.TokenCounter = tc
			resolver.MaxHistoryTokens = g.MaxHistoryTokens
		}
	}

	if resolver.Generator == nil {
		deps.Logger.Warn("GEMINI_API_KEY not set; AI fallback disabled. Get a key at https://aistudio.google.com/apikey")
	}
	return resolver, nil
}

// newLogger returns a text logger on w. Commands log warnings only, serve
// logs at info, and verbose enables debug records everywhere.
func newLogger(w io.Writer, verbose, serving bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case serving:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
