package main

// Exercise the experience-parse pipeline against a real provider:
//   go run ./cmd/prompttest -experience testdata/experience.txt
//
// Accepts plain text or PDF input. Without OPENAI_API_KEY the keyword
// fallback handles the parse, which is useful for eyeballing its output.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vetpath-backend/internal/llm"
	openai "vetpath-backend/internal/llm/openai"
	"vetpath-backend/internal/parser"
	"vetpath-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	experiencePath := flag.String("experience", "", "Path to an experience description (txt or pdf)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	outPath := flag.String("out", "", "Path to write the parsed skill set JSON (optional)")
	flag.Parse()

	if strings.TrimSpace(*experiencePath) == "" {
		exitErr("experience path is required")
	}

	raw, err := os.ReadFile(*experiencePath)
	if err != nil {
		exitErr(fmt.Sprintf("read experience: %v", err))
	}

	text := string(raw)
	if strings.EqualFold(filepath.Ext(*experiencePath), ".pdf") {
		text, err = parser.ExtractPDFText(raw)
		if err != nil {
			exitErr(fmt.Sprintf("extract pdf text: %v", err))
		}
	}

	client := llm.Client(llm.PlaceholderClient{})
	if *provider == "openai" {
		client, err = openai.NewClient(os.Getenv("OPENAI_API_KEY"), *model)
		if err != nil {
			exitErr(err.Error())
		}
	}

	set, err := parser.NewService(client).Parse(context.Background(), text)
	if err != nil {
		exitErr(fmt.Sprintf("parse experience: %v", err))
	}

	encoded, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("encode skill set: %v", err))
	}

	if strings.TrimSpace(*outPath) != "" {
		if err := os.WriteFile(*outPath, encoded, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}
	fmt.Println(string(encoded))
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
