package receipt

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry for an 80mm-class thermal roll, in points.
const (
	pageWidth   = 226
	pageHeight  = 600
	pageMargin  = 10
	lineSpacing = 1.3
)

// RenderPDF renders layout blocks into a PDF document sized for a receipt
// roll. The document's creation and modification dates are pinned to meta,
// so identical blocks yield byte-identical output.
func RenderPDF(blocks []Block, meta time.Time) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCreationDate(meta.UTC())
	pdf.SetModificationDate(meta.UTC())
	pdf.AddPage()

	for _, b := range blocks {
		style := ""
		if b.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, b.Size)

		if b.Text == "" {
			pdf.Ln(b.Size * lineSpacing)
			continue
		}
		pdf.MultiCell(0, b.Size*lineSpacing, b.Text, "", pdfAlign(b.Align), false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfAlign(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}
