package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"fotoseni/internal/infra"
	"fotoseni/internal/providers/genai"
)

// geminikey checks that a Gemini API key can reach the configured image
// model. Nothing is stored; the studio reads the key from the environment.
func main() {
	var (
		keyFlag   string
		modelFlag string
	)
	flag.StringVar(&keyFlag, "key", "", "Gemini API key (falls back to GEMINI_API_KEY)")
	flag.StringVar(&modelFlag, "model", "", "Model to check (falls back to GEMINI_MODEL)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	key := strings.TrimSpace(keyFlag)
	if key == "" {
		key = strings.TrimSpace(cfg.GeminiAPIKey)
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "Gemini API key is required via -key or GEMINI_API_KEY")
		os.Exit(1)
	}

	model := strings.TrimSpace(modelFlag)
	if model == "" {
		model = cfg.GeminiModel
	}

	logger := infra.NewLogger("cli").With().Str("cmd", "geminikey").Logger()
	client, err := genai.NewClient(genai.Options{
		APIKey:  key,
		BaseURL: cfg.GeminiBaseURL,
		Model:   model,
		Timeout: 10 * time.Second,
		Logger:  &logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "build client: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.VerifyKey(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "key check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Gemini API key can reach %s\n", model)
}
