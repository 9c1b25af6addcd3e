package service

import (
	"fmt"
	"strings"

	"github.com/lu4p/cat/docxtxt"
)

// docxToText returns the plain text of a .docx body with formatting dropped.
func docxToText(data []byte) (string, error) {
	text, err := docxtxt.BytesToStr(data)
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	return strings.TrimSpace(text), nil
}
