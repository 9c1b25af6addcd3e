package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime"
	"strings"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/rs/zerolog"
)

type DocumentKind string

const (
	KindUnknown      DocumentKind = ""
	KindPDF          DocumentKind = "pdf"
	KindSpreadsheet  DocumentKind = "spreadsheet"
	KindCSV          DocumentKind = "csv"
	KindWordDocument DocumentKind = "word"
)

// minTextLayer is the number of non-space characters below which a PDF is
// treated as scanned.
const minTextLayer = 20

// DetectKind maps a declared content type to a document kind.
func DetectKind(mimeType string) DocumentKind {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		mt = parsed
	}

	switch {
	case mt == "application/pdf":
		return KindPDF
	case strings.Contains(mt, "spreadsheetml"), strings.Contains(mt, "excel"):
		return KindSpreadsheet
	case mt == "text/csv":
		return KindCSV
	case strings.Contains(mt, "wordprocessingml"):
		return KindWordDocument
	default:
		return KindUnknown
	}
}

// OCREngine reads text from a page image.
type OCREngine interface {
	ExtractTextFromImage(img image.Image) (string, float64, error)
}

type Document struct {
	Filename string
	MIMEType string
	Data     []byte
	Password string // for encrypted PDF statements
}

type DocumentExtractor struct {
	pdfProcessor PDFProcessor
	ocr          OCREngine
	logger       zerolog.Logger
}

// NewDocumentExtractor builds an extractor. ocr may be nil, which disables
// the scanned-PDF fallback.
func NewDocumentExtractor(pdfProcessor PDFProcessor, ocr OCREngine, logger zerolog.Logger) *DocumentExtractor {
	return &DocumentExtractor{
		pdfProcessor: pdfProcessor,
		ocr:          ocr,
		logger:       logger.With().Str("component", "document_extractor").Logger(),
	}
}

// Extract converts a document into plain text. An unrecognized content type
// returns dto.ErrUnsupportedFileType; parser failures wrap dto.ErrExtractionFailure.
func (e *DocumentExtractor) Extract(ctx context.Context, doc Document) (string, error) {
	kind := DetectKind(doc.MIMEType)
	if kind == KindUnknown {
		return "", fmt.Errorf("%w: %q", dto.ErrUnsupportedFileType, doc.MIMEType)
	}

	var (
		text string
		err  error
	)
	switch kind {
	case KindPDF:
		text, err = e.extractPDF(ctx, doc)
	case KindSpreadsheet:
		if isLegacyWorkbook(doc.Data) {
			return "", fmt.Errorf("%w: legacy .xls workbook, save as .xlsx or .csv", dto.ErrUnsupportedFileType)
		}
		text, err = spreadsheetToCSV(doc.Data)
		if err != nil && looksLikeCSV(doc.Data) {
			// Some browsers label .csv uploads application/vnd.ms-excel.
			text, err = normalizeCSV(doc.Data)
		}
	case KindCSV:
		text, err = normalizeCSV(doc.Data)
	case KindWordDocument:
		text, err = docxToText(doc.Data)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", dto.ErrExtractionFailure, kind, err)
	}

	e.logger.Debug().
		Str("file", doc.Filename).
		Str("kind", string(kind)).
		Int("chars", len(text)).
		Msg("document text extracted")

	return text, nil
}

func (e *DocumentExtractor) extractPDF(ctx context.Context, doc Document) (string, error) {
	text, err := e.pdfProcessor.ExtractText(doc.Data, doc.Password)
	if err != nil {
		if e.ocr == nil {
			return "", err
		}
		e.logger.Warn().Err(err).Str("file", doc.Filename).Msg("pdf text extraction failed, trying OCR")
	}

	if len(strings.Join(strings.Fields(text), "")) >= minTextLayer || e.ocr == nil {
		return text, nil
	}

	e.logger.Info().Str("file", doc.Filename).Msg("pdf has no usable text layer, running OCR on page images")
	ocrText, ocrErr := e.ocrPages(ctx, doc)
	if ocrErr != nil {
		if err != nil {
			return "", err
		}
		e.logger.Warn().Err(ocrErr).Str("file", doc.Filename).Msg("OCR fallback failed")
		return text, nil
	}
	return ocrText, nil
}

func (e *DocumentExtractor) ocrPages(ctx context.Context, doc Document) (string, error) {
	images, err := e.pdfProcessor.ExtractImages(doc.Data, doc.Password)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no page images found")
	}

	var combined strings.Builder
	pages := 0
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		pageText, conf, err := e.ocr.ExtractTextFromImage(img)
		if err != nil {
			e.logger.Warn().Err(err).Int("page", i+1).Msg("OCR failed for page")
			continue
		}
		e.logger.Debug().Int("page", i+1).Float64("confidence", conf).Msg("page OCR done")

		combined.WriteString(pageText)
		combined.WriteString("\n")
		pages++
	}

	if pages == 0 {
		return "", fmt.Errorf("OCR failed on all %d pages", len(images))
	}
	return combined.String(), nil
}

// oleSignature starts every OLE2 compound file, which is how BIFF .xls
// workbooks are stored.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

func isLegacyWorkbook(data []byte) bool {
	return bytes.HasPrefix(data, oleSignature)
}

// looksLikeCSV reports whether data is plain text rather than a zip container.
func looksLikeCSV(data []byte) bool {
	if len(data) >= 2 && data[0] == 'P' && data[1] == 'K' {
		return false
	}
	for _, b := range data[:min(len(data), 512)] {
		if b == 0 {
			return false
		}
	}
	return true
}
