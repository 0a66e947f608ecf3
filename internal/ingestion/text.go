// Package ingestion turns uploaded resume files into structured profile data:
// raw bytes to plain text, plain text to an extracted Profile.
package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Supported upload types.
const (
	FileTypePDF  = "pdf"
	FileTypeDOCX = "docx"
	FileTypeTXT  = "txt"
)

var multiSpace = regexp.MustCompile(`\s+`)
var excessBlankLines = regexp.MustCompile(`\n\n\n+`)

// ExtractText pulls plain text from an uploaded resume file. fileType is the
// lowercased extension without the dot.
func ExtractText(data []byte, fileType string) (string, error) {
	switch fileType {
	case FileTypePDF:
		return extractPDF(data)
	case FileTypeDOCX:
		return extractDOCX(data)
	case FileTypeTXT:
		return CleanText(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported file type %q", fileType)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text := CleanText(sb.String())
	if text == "" {
		return "", fmt.Errorf("PDF contained no extractable text")
	}
	return text, nil
}

// extractDOCX reads word/document.xml out of the archive and collects the
// text runs, inserting a newline at each paragraph end.
func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("DOCX archive has no word/document.xml")
	}

	rc, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX document part: %w", err)
	}
	defer rc.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX document: %w", err)
		}

		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" {
				sb.WriteString("\n")
			}
		case xml.StartElement:
			// Tabs and explicit breaks become whitespace so runs do not fuse.
			if t.Name.Local == "tab" || t.Name.Local == "br" {
				sb.WriteString(" ")
			}
		}
	}

	text := CleanText(sb.String())
	if text == "" {
		return "", fmt.Errorf("DOCX contained no extractable text")
	}
	return text, nil
}

// CleanText normalizes extracted text: LF line endings, collapsed intra-line
// whitespace, at most one blank line between paragraphs, trimmed ends.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			line = multiSpace.ReplaceAllString(line, " ")
		}
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
