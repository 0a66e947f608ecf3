package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-agent/internal/ingestion"
	"github.com/jonathan/resume-agent/internal/profile"
	"github.com/jonathan/resume-agent/internal/types"
)

var (
	extractFile    string
	extractProfile string
	extractOut     string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a resume file",
	Long:  `Extract text from a PDF, DOCX, or TXT resume and structure it into a profile JSON. With --profile, the extraction is merged into an existing profile.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFile, "file", "", "Path to resume file (required)")
	extractCmd.Flags().StringVar(&extractProfile, "profile", "", "Existing profile JSON to merge into")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "Write the profile JSON to this file (default: stdout)")
	_ = extractCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(extractFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(extractFile)), ".")

	existing := types.Profile{}
	if extractProfile != "" {
		existing, err = loadProfileFile(extractProfile)
		if err != nil {
			return err
		}
	}

	gateway, err := newGateway(ctx)
	if err != nil {
		return err
	}
	defer gateway.Close()

	extractor := ingestion.NewExtractor(gateway)

	text, err := ingestion.ExtractText(data, fileType)
	if err != nil {
		return err
	}
	extracted, err := extractor.ExtractProfile(ctx, text)
	if err != nil {
		return err
	}

	merged := profile.Merge(existing, extracted)
	return writeJSONFile(extractOut, merged)
}
