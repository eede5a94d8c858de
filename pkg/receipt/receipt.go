// Package receipt turns bill data into a printable receipt layout.
//
// The layout step is a pure transform: the same Receipt value always
// produces the same sequence of text blocks. Rendering backends (PDF,
// ESC/POS) consume the blocks without knowing anything about bills.
package receipt

import (
	"fmt"
	"time"
)

// Align is the horizontal alignment of a text block.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Block is a single line of receipt text with its style attributes.
type Block struct {
	Text  string
	Align Align
	Bold  bool
	Size  float64 // font size in points
}

// Header holds the restaurant identity printed at the top of every receipt.
type Header struct {
	Name     string
	Tagline1 string
	Tagline2 string
}

// Item is a priced, quantified line on the receipt. UnitPrice is in paise.
type Item struct {
	Name      string
	Quantity  int
	UnitPrice int64
}

// LineTotal returns quantity * unit price in paise.
func (i Item) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Receipt is the data a receipt is rendered from. Total is in paise and is
// printed as stored; the layout never recomputes it from the items.
type Receipt struct {
	Header Header
	BillNo int64
	Phone  string
	Date   time.Time
	Items  []Item
	Total  int64
	Footer string
}

// IST is the fixed display timezone for receipt dates. A fixed zone keeps
// rendering independent of the host's tzdata and locale.
var IST = time.FixedZone("IST", 5*3600+30*60)

const divider = "-----------------------------------"

// FormatRupees formats an amount of paise as rupees with two decimals.
func FormatRupees(paise int64) string {
	return fmt.Sprintf("%d.%02d", paise/100, paise%100)
}

// FormatDate formats a timestamp in IST as dd/mm/yyyy with 12-hour time.
func FormatDate(t time.Time) string {
	return t.In(IST).Format("02/01/2006 03:04 PM")
}

// Layout produces the receipt's text blocks, top to bottom. An empty item
// list still lays out; validating bill contents is the service's job.
func (r *Receipt) Layout() []Block {
	blocks := make([]Block, 0, len(r.Items)+12)

	blocks = append(blocks,
		Block{Text: r.Header.Name, Align: AlignCenter, Bold: true, Size: 14},
		Block{Text: r.Header.Tagline1, Align: AlignCenter, Size: 8},
		Block{Text: r.Header.Tagline2, Align: AlignCenter, Size: 8},
		Block{Text: divider, Align: AlignCenter, Size: 10},
		Block{Text: fmt.Sprintf("Bill No: %d", r.BillNo), Size: 9},
		Block{Text: "Phone: " + r.Phone, Size: 9},
		Block{Text: "Date: " + FormatDate(r.Date), Size: 9},
		Block{Text: divider, Size: 9},
	)

	for _, item := range r.Items {
		blocks = append(blocks, Block{
			Text: fmt.Sprintf("%s x%d  Rs. %s", item.Name, item.Quantity, FormatRupees(item.LineTotal())),
			Size: 9,
		})
	}

	blocks = append(blocks,
		Block{Text: divider, Size: 9},
		Block{Text: "TOTAL: Rs. " + FormatRupees(r.Total), Align: AlignRight, Bold: true, Size: 11},
		Block{Text: "", Size: 9},
		Block{Text: r.Footer, Align: AlignCenter, Size: 8},
	)

	return blocks
}
