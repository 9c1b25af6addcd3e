package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	ExtractText(pdfData []byte, password string) (string, error)
	ExtractImages(pdfData []byte, password string) ([]image.Image, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText reads the text layer page by page, row by row.
// Password-protected statements are decrypted with pdfcpu first.
func (p *pdfProcessor) ExtractText(pdfData []byte, password string) (string, error) {
	if password != "" {
		decrypted, err := decryptPDF(pdfData, password)
		if err != nil {
			return "", err
		}
		pdfData = decrypted
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", pageIndex, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}

func decryptPDF(pdfData []byte, password string) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(pdfData), &out, conf); err != nil {
		return nil, fmt.Errorf("failed to decrypt pdf: %w", err)
	}
	return out.Bytes(), nil
}

// ExtractImages pulls embedded page images out of a scanned PDF.
func (p *pdfProcessor) ExtractImages(pdfData []byte, password string) ([]image.Image, error) {
	tempDir, err := os.MkdirTemp("", "pdf_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
	}

	// nil selects every page
	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []image.Image
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		imgFile, err := os.Open(filepath.Join(tempDir, file.Name()))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}
		images = append(images, img)
	}

	return images, nil
}
