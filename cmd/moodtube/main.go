package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"moodtube/internal/ai"
	"moodtube/internal/config"
	"moodtube/internal/output"
	"moodtube/internal/playlist"
	"moodtube/internal/server"
	"moodtube/internal/setup"
	"moodtube/internal/youtube"
)

const (
	exitSuccess     = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
	version         = "1.0.0"
)

type cliOptions struct {
	Serve   bool
	Addr    string
	Region  string
	Batch   bool
	Setup   bool
	JSON    bool
	Quiet   bool
	NoColor bool
	NoInput bool
	Help    bool
	Version bool
	Prompt  string
}

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func main() {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		fmt.Fprintln(os.Stderr, "Interrupted (Ctrl-C)")
		os.Exit(exitInterrupted)
	}()

	if err := run(context.Background()); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, ue.msg)
			os.Exit(exitUsage)
		}
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}

func run(ctx context.Context) error {
	cfg := config.Load()
	opts, err := parseArgs(cfg)
	if err != nil {
		return err
	}
	if opts.Help {
		printUsage(cfg)
		return nil
	}
	if opts.Version {
		fmt.Fprintln(os.Stdout, version)
		return nil
	}

	out := output.New(output.Options{
		JSON:    opts.JSON,
		Quiet:   opts.Quiet,
		NoColor: opts.NoColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb",
	})

	if opts.Setup {
		return setup.Run(out)
	}

	cfg.Addr = opts.Addr
	cfg.DefaultRegion = opts.Region
	cfg.BatchMode = opts.Batch

	if opts.Serve {
		return serve(ctx, cfg)
	}

	prompt := opts.Prompt
	if prompt == "" && !opts.NoInput && !term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = readPromptFromStdin()
	}
	if prompt == "" {
		return usageError{msg: strings.Join([]string{
			"Missing prompt.",
			"Examples:",
			"  moodtube \"energetic workout music\"",
			"  echo \"rainy day jazz\" | moodtube",
			"  moodtube --serve",
			"Run with --help for usage.",
		}, "\n")}
	}

	assembler, err := buildAssembler(ctx, cfg)
	if err != nil {
		return err
	}

	out.Info(out.Gray(fmt.Sprintf("Generating playlist for: %q (region %s)", prompt, cfg.DefaultRegion)))
	resp, err := assembler.Generate(ctx, prompt, opts.Region)
	if err != nil {
		if errors.Is(err, playlist.ErrNoResults) {
			return fmt.Errorf("no songs found, try a different prompt")
		}
		return err
	}

	if opts.JSON {
		return out.EmitJSON(resp)
	}
	out.Print(out.Bold(resp.Title))
	out.Print(out.Gray(resp.Description))
	for i, item := range resp.Playlist {
		line := fmt.Sprintf("  %d. %s - %s (%s)", i+1, item.Artist, item.Title, item.Duration)
		if item.VideoID != "" {
			line += out.Gray("  https://www.youtube.com/watch?v=" + item.VideoID)
		} else {
			line += out.Yellow("  [no video found]")
		}
		out.Print(line)
	}
	return nil
}

func buildAssembler(ctx context.Context, cfg config.Config) (*playlist.Assembler, error) {
	gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}
	ytClient, err := youtube.NewDataAPIClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		return nil, err
	}
	return &playlist.Assembler{
		Source:    ai.NewGenerator(gemini),
		Resolver:  youtube.NewResolver(ytClient, cfg.Scoring, cfg.DefaultRegion),
		BatchMode: cfg.BatchMode,
	}, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	var assembler *playlist.Assembler
	if cfg.GeminiAPIKey != "" && cfg.YouTubeAPIKey != "" {
		a, err := buildAssembler(ctx, cfg)
		if err != nil {
			return err
		}
		assembler = a
	} else {
		log.Warn("missing API credentials, playlist requests will fail",
			"gemini", cfg.GeminiAPIKey != "", "youtube", cfg.YouTubeAPIKey != "")
	}

	srv := server.New(assembler, server.Options{
		GeminiConfigured:  cfg.GeminiAPIKey != "",
		YouTubeConfigured: cfg.YouTubeAPIKey != "",
		Logger:            log,
	})
	log.Info("moodtube listening", "addr", cfg.Addr, "batch", cfg.BatchMode, "region", cfg.DefaultRegion)
	return http.ListenAndServe(cfg.Addr, srv.Handler())
}

func parseArgs(cfg config.Config) (cliOptions, error) {
	opts := cliOptions{
		Addr:   cfg.Addr,
		Region: cfg.DefaultRegion,
		Batch:  cfg.BatchMode,
	}

	fs := pflag.NewFlagSet("moodtube", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.SortFlags = false

	fs.BoolVarP(&opts.Help, "help", "h", false, "display help")
	fs.BoolVar(&opts.Version, "version", false, "output the version number")
	fs.BoolVar(&opts.Serve, "serve", false, "Run the HTTP API server instead of a one-shot generation")
	fs.StringVarP(&opts.Addr, "addr", "a", opts.Addr, "Listen address for --serve")
	fs.StringVarP(&opts.Region, "region", "r", opts.Region, "Region code biasing generation and search")
	fs.BoolVarP(&opts.Batch, "batch", "b", opts.Batch, "Single-call batch search mode (saves API quota)")
	fs.BoolVar(&opts.JSON, "json", false, "Output machine-readable JSON")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress non-essential output")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&opts.NoInput, "no-input", false, "Disable stdin reads")
	fs.BoolVar(&opts.Setup, "setup", false, "Interactively write API credentials to .env")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return cliOptions{}, usageError{msg: err.Error() + "\n(run with --help for usage)"}
	}

	opts.Prompt = strings.TrimSpace(strings.Join(fs.Args(), " "))
	return opts, nil
}

func printUsage(cfg config.Config) {
	fmt.Fprintln(os.Stdout, "Usage: moodtube [options] [prompt]")
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintln(os.Stdout, "Turns a mood or activity description into a playable YouTube playlist")
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintln(os.Stdout, "Arguments:")
	fmt.Fprintln(os.Stdout, "  prompt                   Natural language playlist description")
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintln(os.Stdout, "Options:")
	fmt.Fprintln(os.Stdout, "  -h, --help               display help")
	fmt.Fprintln(os.Stdout, "      --version            output the version number")
	fmt.Fprintf(os.Stdout, "      --serve              Run the HTTP API server (default addr %q)\n", cfg.Addr)
	fmt.Fprintf(os.Stdout, "  -a, --addr <addr>        Listen address for --serve (default %q)\n", cfg.Addr)
	fmt.Fprintf(os.Stdout, "  -r, --region <code>      Region code biasing generation and search (default %q)\n", cfg.DefaultRegion)
	fmt.Fprintln(os.Stdout, "  -b, --batch              Single-call batch search mode (saves API quota)")
	fmt.Fprintln(os.Stdout, "      --json               Output machine-readable JSON")
	fmt.Fprintln(os.Stdout, "  -q, --quiet              Suppress non-essential output")
	fmt.Fprintln(os.Stdout, "      --no-color           Disable colored output")
	fmt.Fprintln(os.Stdout, "      --no-input           Disable stdin reads")
	fmt.Fprintln(os.Stdout, "      --setup              Interactively write API credentials to .env")
}

func readPromptFromStdin() string {
	scanner := bufio.NewScanner(os.Stdin)
	lines := []string{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
