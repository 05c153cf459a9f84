package util

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractPDFText pulls plain text out of a PDF at path. maxPages caps how many
// pages a CV may have; 0 disables the cap.
func ExtractPDFText(path string, maxPages int) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if maxPages > 0 && doc.NumPage() > maxPages {
		return "", fmt.Errorf("PDF exceeds the %d-page limit", maxPages)
	}

	var b strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		b.WriteString(text)
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", fmt.Errorf("could not extract text from the PDF")
	}
	return result, nil
}
