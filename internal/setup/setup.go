package setup

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"moodtube/internal/output"
)

// Run interactively collects the two required API credentials and writes them
// to a .env file in the working directory. Keys are read without echo.
func Run(out *output.Output) error {
	out.Info("moodtube needs two API credentials:")
	out.Info("  - a Gemini API key (https://aistudio.google.com/apikey)")
	out.Info("  - a YouTube Data API v3 key (https://console.cloud.google.com)")
	out.Print("")

	gemini, err := readKey(out, "Gemini API key")
	if err != nil {
		return err
	}
	yt, err := readKey(out, "YouTube API key")
	if err != nil {
		return err
	}

	var b strings.Builder
	if gemini != "" {
		fmt.Fprintf(&b, "GEMINI_API_KEY=%s\n", gemini)
	}
	if yt != "" {
		fmt.Fprintf(&b, "YOUTUBE_API_KEY=%s\n", yt)
	}
	if b.Len() == 0 {
		out.Warn("No keys entered, nothing written.")
		return nil
	}

	if err := os.WriteFile(".env", []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write .env: %w", err)
	}
	out.Success("Wrote .env")
	return nil
}

func readKey(out *output.Output, label string) (string, error) {
	fmt.Fprintf(os.Stdout, "%s (blank to skip): ", label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	return strings.TrimSpace(string(b)), nil
}
