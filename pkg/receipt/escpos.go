package receipt

import (
	"github.com/omsai/pos-backend/pkg/printer"
)

// RenderESCPOS renders layout blocks into an ESC/POS byte stream for a
// thermal printer with the given character width (48 for 80mm paper).
func RenderESCPOS(blocks []Block, charWidth int) []byte {
	doc := printer.NewDocument(charWidth)

	for _, b := range blocks {
		doc.SetAlign(escposAlign(b.Align))
		doc.SetBold(b.Bold)
		doc.SetFontSize(escposFontSize(b.Size))

		if b.Text == "" {
			doc.LineFeed()
			continue
		}
		doc.Text(b.Text)
	}

	doc.SetAlign(printer.AlignLeft).
		SetBold(false).
		SetFontSize(printer.FontNormal).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

func escposAlign(a Align) int {
	switch a {
	case AlignCenter:
		return printer.AlignCenter
	case AlignRight:
		return printer.AlignRight
	default:
		return printer.AlignLeft
	}
}

// escposFontSize maps point sizes onto the printer's coarse size grid.
func escposFontSize(size float64) byte {
	switch {
	case size >= 12:
		return printer.FontDouble
	case size >= 11:
		return printer.FontTall
	default:
		return printer.FontNormal
	}
}
