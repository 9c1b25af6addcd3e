package client

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient OCRs page images of scanned statements.
type TesseractClient struct {
	dataPath string
	language string
}

func NewTesseractClient(dataPath, language string) *TesseractClient {
	if language == "" {
		language = "eng"
	}
	return &TesseractClient{
		dataPath: dataPath,
		language: language,
	}
}

// ExtractTextFromImage OCRs an in-memory image and returns the text with
// the mean word confidence (0-100).
func (tc *TesseractClient) ExtractTextFromImage(img image.Image) (string, float64, error) {
	tempFile, err := saveImageToTempFile(img)
	if err != nil {
		return "", 0, err
	}
	defer os.Remove(tempFile)

	return tc.ExtractTextAndQuality(tempFile)
}

func (tc *TesseractClient) ExtractTextAndQuality(filePath string) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}
	if err := client.SetLanguage(tc.language); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	// Get bounding boxes to calculate confidence
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return text, 0, nil
	}

	var totalConf float64
	for _, box := range boxes {
		totalConf += box.Confidence
	}
	return text, totalConf / float64(len(boxes)), nil
}

func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
