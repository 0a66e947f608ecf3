package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/types"
)

// newGateway builds a Gemini gateway from the GEMINI_API_KEY environment
// variable. Used by the file-based commands that run without the server.
func newGateway(ctx context.Context) (llm.Gateway, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return llm.NewGeminiGateway(ctx, llm.DefaultConfig(), apiKey)
}

// loadProfileFile reads a profile JSON file.
func loadProfileFile(path string) (types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return types.Profile{}, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return profile, nil
}

// loadRulesFile reads a rules JSON file. A missing path yields no rules.
func loadRulesFile(path string) ([]types.Rule, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	var rules []types.Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules JSON: %w", err)
	}
	return rules, nil
}

// loadTextFileOrValue treats the argument as a file path when it exists,
// otherwise as a literal value.
func loadTextFileOrValue(arg string) (string, error) {
	if arg == "" {
		return "", nil
	}
	if _, err := os.Stat(arg); err == nil {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", arg, err)
		}
		return string(data), nil
	}
	return arg, nil
}

// writeJSONFile writes a value as indented JSON, to stdout when path is
// empty.
func writeJSONFile(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
