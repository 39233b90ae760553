// Package render — PDF renderer.
// Lays the plain text out as an A4 document using gofpdf.
// Line breaks and indentation are kept; Unicode bold runs are set in the
// bold core font since the core fonts have no Mathematical Bold glyphs.
package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/mdstrip/core"
	"github.com/gaurav-prasanna/mdstrip/core/normalize"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 5.0
	pdfIndentStep = 2.5 // mm per leading space
	pdfTabWidth   = 4
)

// PDFRenderer renders plain text as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the plain text into PDF bytes.
func (r *PDFRenderer) Render(res core.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	// Core fonts are cp1252; anything outside it cannot be drawn.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if res.Document.Name != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, tr(res.Document.Name), "", "L", false)
		pdf.Ln(2)
	}
	if res.Document.Origin != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+res.Document.Origin), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	for _, line := range strings.Split(res.Text, "\n") {
		body := strings.TrimLeft(line, " \t")
		if body == "" {
			pdf.Ln(3)
			continue
		}

		indent := indentWidth(line[:len(line)-len(body)])
		pdf.SetLeftMargin(pdfMargin + float64(indent)*pdfIndentStep)
		pdf.SetX(pdfMargin + float64(indent)*pdfIndentStep)
		for _, seg := range splitBold(body) {
			style := ""
			if seg.bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.Write(pdfLineHeight, tr(seg.text))
		}
		pdf.Ln(pdfLineHeight)
		pdf.SetLeftMargin(pdfMargin)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func indentWidth(ws string) int {
	n := 0
	for _, ch := range ws {
		if ch == '\t' {
			n += pdfTabWidth
		} else {
			n++
		}
	}
	return n
}

type segment struct {
	text string
	bold bool
}

// splitBold cuts s into runs of Mathematical Bold glyphs (mapped back to
// ASCII) and ordinary text.
func splitBold(s string) []segment {
	var segs []segment
	var b strings.Builder
	bold := false
	flush := func() {
		if b.Len() > 0 {
			segs = append(segs, segment{text: b.String(), bold: bold})
			b.Reset()
		}
	}
	for _, ch := range s {
		plain, isBold := normalize.FromBold(ch)
		// Spaces join whichever run they sit in.
		if ch == ' ' {
			isBold = bold
		}
		if isBold != bold {
			flush()
			bold = isBold
		}
		b.WriteRune(plain)
	}
	flush()
	return segs
}
