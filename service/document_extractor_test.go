package service

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeXLS  = "application/vnd.ms-excel"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func TestDetectKind(t *testing.T) {
	tests := map[string]DocumentKind{
		mimePDF:                      KindPDF,
		"Application/PDF":            KindPDF,
		mimeXLSX:                     KindSpreadsheet,
		mimeXLS:                      KindSpreadsheet,
		"text/csv; charset=utf-8":    KindCSV,
		mimeDOCX:                     KindWordDocument,
		"application/msword":         KindUnknown,
		"image/png":                  KindUnknown,
		"":                           KindUnknown,
		"application/pdf-but-not":    KindUnknown,
		"application/x-excel-legacy": KindSpreadsheet,
	}

	for mt, want := range tests {
		assert.Equal(t, want, DetectKind(mt), mt)
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	pdf := &stubPDF{}
	e := NewDocumentExtractor(pdf, nil, nopLogger)

	_, err := e.Extract(context.Background(), Document{MIMEType: "image/png", Data: []byte{1, 2, 3}})
	assert.ErrorIs(t, err, dto.ErrUnsupportedFileType)
	assert.Empty(t, pdf.passwords)
}

func TestExtractSpreadsheetFirstSheetOnly(t *testing.T) {
	data := buildXLSX(t, map[string][][]any{
		"Statement": {
			{"Date", "Narration", "Amount"},
			{"14/01/2026", "Team Dinner, Indiranagar", 4500},
			{"12/01/2026", "Uber"},
		},
		"Summary": {{"Closing balance", 99999}},
	}, []string{"Statement", "Summary"})

	e := NewDocumentExtractor(&stubPDF{}, nil, nopLogger)
	text, err := e.Extract(context.Background(), Document{MIMEType: mimeXLSX, Data: data})
	require.NoError(t, err)

	assert.Equal(t, "Date,Narration,Amount\n14/01/2026,\"Team Dinner, Indiranagar\",4500\n12/01/2026,Uber,\n", text)
	assert.NotContains(t, text, "Closing balance")
}

func TestExtractCSVLabelledAsExcel(t *testing.T) {
	e := NewDocumentExtractor(&stubPDF{}, nil, nopLogger)

	text, err := e.Extract(context.Background(), Document{MIMEType: mimeXLS, Data: []byte("date,amount\n2026-01-05,899\n")})
	require.NoError(t, err)
	assert.Equal(t, "date,amount\n2026-01-05,899\n", text)

	text, err = e.Extract(context.Background(), Document{MIMEType: "text/csv", Data: []byte("a,b\n1\n")})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1\n", text)
}

func TestExtractBrokenSpreadsheet(t *testing.T) {
	e := NewDocumentExtractor(&stubPDF{}, nil, nopLogger)

	_, err := e.Extract(context.Background(), Document{MIMEType: mimeXLSX, Data: []byte("PK\x03\x04garbage")})
	assert.ErrorIs(t, err, dto.ErrExtractionFailure)
}

func TestExtractLegacyWorkbookIsUnsupported(t *testing.T) {
	e := NewDocumentExtractor(&stubPDF{}, nil, nopLogger)

	biff := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 504)...)
	_, err := e.Extract(context.Background(), Document{MIMEType: mimeXLS, Data: biff})
	assert.ErrorIs(t, err, dto.ErrUnsupportedFileType)
	assert.NotErrorIs(t, err, dto.ErrExtractionFailure)
}

func TestExtractWordDocument(t *testing.T) {
	data := buildDOCX(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document `+wordNS+`><w:body>
<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>HDFC Bank Statement</w:t></w:r></w:p>
<w:p><w:r><w:t>05/01/2026</w:t></w:r><w:r><w:tab/><w:t xml:space="preserve">Netflix </w:t></w:r><w:r><w:t>899.00</w:t></w:r></w:p>
<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>
</w:body></w:document>`)

	e := NewDocumentExtractor(&stubPDF{}, nil, nopLogger)
	text, err := e.Extract(context.Background(), Document{MIMEType: mimeDOCX, Data: data})
	require.NoError(t, err)

	for _, want := range []string{"HDFC Bank Statement", "05/01/2026", "Netflix", "899.00", "Line one", "Line two"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "<w:")
	assert.Less(t, strings.Index(text, "HDFC Bank Statement"), strings.Index(text, "Netflix"))
}

func TestExtractWordDocumentNotAZip(t *testing.T) {
	e := NewDocumentExtractor(&stubPDF{}, nil, nopLogger)

	_, err := e.Extract(context.Background(), Document{MIMEType: mimeDOCX, Data: []byte("plain text")})
	assert.ErrorIs(t, err, dto.ErrExtractionFailure)
}

func TestExtractPDFTextLayer(t *testing.T) {
	pdf := &stubPDF{text: "15/10/2025 SALARY CREDIT 50,000.00\n"}
	ocr := &stubOCR{texts: []string{"should not be used"}}
	e := NewDocumentExtractor(pdf, ocr, nopLogger)

	text, err := e.Extract(context.Background(), Document{MIMEType: mimePDF, Data: []byte("%PDF"), Password: "01011990"})
	require.NoError(t, err)
	assert.Equal(t, pdf.text, text)
	assert.Equal(t, []string{"01011990"}, pdf.passwords)
	assert.Zero(t, ocr.n)
}

func TestExtractScannedPDFFallsBackToOCR(t *testing.T) {
	pdf := &stubPDF{
		text:   "  \n",
		images: []image.Image{image.NewGray(image.Rect(0, 0, 1, 1)), image.NewGray(image.Rect(0, 0, 1, 1))},
	}
	ocr := &stubOCR{texts: []string{"page one", "page two"}}
	e := NewDocumentExtractor(pdf, ocr, nopLogger)

	text, err := e.Extract(context.Background(), Document{MIMEType: mimePDF, Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "page one\npage two\n", text)
}

func TestExtractScannedPDFWithoutOCR(t *testing.T) {
	pdf := &stubPDF{text: "x"}
	e := NewDocumentExtractor(pdf, nil, nopLogger)

	text, err := e.Extract(context.Background(), Document{MIMEType: mimePDF, Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "x", text)
}

func TestExtractPDFFailure(t *testing.T) {
	pdf := &stubPDF{textErr: errors.New("malformed xref")}
	e := NewDocumentExtractor(pdf, nil, nopLogger)

	_, err := e.Extract(context.Background(), Document{MIMEType: mimePDF, Data: []byte("nope")})
	assert.ErrorIs(t, err, dto.ErrExtractionFailure)

	pdf.imgErr = errors.New("no images")
	e = NewDocumentExtractor(pdf, &stubOCR{texts: []string{"x"}}, nopLogger)
	_, err = e.Extract(context.Background(), Document{MIMEType: mimePDF, Data: []byte("nope")})
	assert.ErrorIs(t, err, dto.ErrExtractionFailure)
}

func TestExtractRealPDFProcessorRejectsGarbage(t *testing.T) {
	e := NewDocumentExtractor(NewPDFProcessor(), nil, nopLogger)

	_, err := e.Extract(context.Background(), Document{MIMEType: mimePDF, Data: []byte("definitely not a pdf")})
	assert.ErrorIs(t, err, dto.ErrExtractionFailure)
}
