package service

import (
	"archive/zip"
	"bytes"
	"context"
	"image"
	"testing"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubLLM struct {
	reply string
	err   error

	prompts  []string
	messages []string
	history  [][]dto.ChatMessage
}

func (s *stubLLM) Chat(ctx context.Context, history []dto.ChatMessage, message string) (string, error) {
	s.history = append(s.history, history)
	s.messages = append(s.messages, message)
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func (s *stubLLM) calls() int {
	return len(s.prompts) + len(s.messages)
}

type stubPDF struct {
	text    string
	textErr error
	images  []image.Image
	imgErr  error

	passwords []string
}

func (p *stubPDF) ExtractText(pdfData []byte, password string) (string, error) {
	p.passwords = append(p.passwords, password)
	return p.text, p.textErr
}

func (p *stubPDF) ExtractImages(pdfData []byte, password string) ([]image.Image, error) {
	return p.images, p.imgErr
}

type stubOCR struct {
	texts []string
	err   error
	n     int
}

func (o *stubOCR) ExtractTextFromImage(img image.Image) (string, float64, error) {
	if o.err != nil {
		return "", 0, o.err
	}
	text := o.texts[o.n%len(o.texts)]
	o.n++
	return text, 91.5, nil
}

var nopLogger = zerolog.Nop()

func buildXLSX(t *testing.T, sheets map[string][][]any, order []string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	parts := []struct{ name, body string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`},
		{"word/document.xml", documentXML},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(p.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`
