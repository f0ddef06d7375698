// Package invoice renders printable PDF invoices for retail bills.
package invoice

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Shop is the seller identity printed in the invoice header.
type Shop struct {
	Name           string
	Owner          string
	Address        string
	Phone          string
	Email          string
	CurrencySymbol string
}

// Line is one priced row of the invoice item table.
type Line struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Total     decimal.Decimal
}

// Document is the deterministic input for one invoice rendering.
type Document struct {
	Shop          Shop
	CustomerName  string
	CustomerPhone string
	Lines         []Line
	Total         decimal.Decimal
	Paid          bool
	Notes         string
	IssuedAt      time.Time
}

const (
	sideMargin   = 4.5  // mm, narrow margins so the item table spans the page
	topMargin    = 12.7 // mm
	dateLayout   = "02-01-2006"
	paddingRows  = 3
	itemRowHt    = 10.0
	headerRowHt  = 10.0
	textLineHt   = 6.0
	shopNameSize = 20.0
)

// Column widths for the item table, sized to an A4 page minus margins.
var colWidths = [5]float64{15, 95, 30, 25, 36}

var colHeaders = [5]string{"Sr No", "Item", "Price", "Quantity", "Amount"}

// Render lays out the invoice and returns the PDF bytes. The layout, top to
// bottom: shop header, rule, customer block, item table with padding rows,
// right-aligned total and payment status, rule, remarks/signature footer and
// a generation-date line.
func Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(sideMargin, topMargin, sideMargin)
	pdf.SetAutoPageBreak(true, topMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	usable := pageW - 2*sideMargin

	// Shop header
	pdf.SetFont("Times", "B", shopNameSize)
	pdf.CellFormat(usable, 10, tr(strings.ToUpper(doc.Shop.Name)), "", 1, "C", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Times", "", 11)
	contact := fmt.Sprintf("%s | Phone: %s | Email: %s",
		doc.Shop.Address, doc.Shop.Phone, doc.Shop.Email)
	pdf.CellFormat(usable, textLineHt, tr(contact), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Date on the left, owner on the right
	pdf.CellFormat(usable/2, textLineHt, "Date: "+doc.IssuedAt.Format(dateLayout), "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, textLineHt, tr("Owner: "+doc.Shop.Owner), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	drawRule(pdf, pageW)
	pdf.Ln(4)

	// Customer block
	pdf.SetFont("Times", "B", 11)
	pdf.CellFormat(usable, textLineHt, "CUSTOMER DETAILS:", "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 11)
	pdf.CellFormat(usable, textLineHt, tr("Name: "+doc.CustomerName), "", 1, "L", false, 0, "")
	phone := doc.CustomerPhone
	if phone == "" {
		phone = "N/A"
	}
	pdf.CellFormat(usable, textLineHt, tr("Mobile No: "+phone), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Item table
	pdf.SetFont("Times", "B", 11)
	for i, h := range colHeaders {
		align := "C"
		if i == 1 {
			align = "L"
		}
		pdf.CellFormat(colWidths[i], headerRowHt, h, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Times", "", 11)
	sym := doc.Shop.CurrencySymbol
	for idx, line := range doc.Lines {
		cells := [5]string{
			fmt.Sprintf("%d", idx+1),
			line.Name,
			sym + line.UnitPrice.StringFixed(2),
			fmt.Sprintf("%d", line.Quantity),
			sym + line.Total.StringFixed(2),
		}
		writeItemRow(pdf, tr, cells)
	}
	for i := 0; i < paddingRows; i++ {
		writeItemRow(pdf, tr, [5]string{})
	}
	pdf.Ln(4)

	// Total, right aligned
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(usable, 8, tr(fmt.Sprintf("Total Amount: %s%s", sym, doc.Total.StringFixed(2))),
		"", 1, "R", false, 0, "")

	// Payment status, color is cosmetic only
	pdf.SetFont("Times", "B", 11)
	status := "UNPAID"
	pdf.SetTextColor(220, 38, 38)
	if doc.Paid {
		status = "PAID"
		pdf.SetTextColor(5, 150, 105)
	}
	pdf.CellFormat(usable, textLineHt, "Payment Status: "+status, "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	drawRule(pdf, pageW)
	pdf.Ln(3)

	// Remarks and signature footer
	pdf.SetFont("Times", "B", 10)
	pdf.CellFormat(usable/2, textLineHt, "Remarks:", "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, textLineHt, "Sign & Date:", "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.CellFormat(usable/2, textLineHt, tr(doc.Notes), "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, textLineHt, "", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Times", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(usable, 5,
		fmt.Sprintf("Generated on %s | Thank you!", doc.IssuedAt.Format(dateLayout)),
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeItemRow(pdf *gofpdf.Fpdf, tr func(string) string, cells [5]string) {
	aligns := [5]string{"C", "L", "R", "C", "R"}
	for i, cell := range cells {
		pdf.CellFormat(colWidths[i], itemRowHt, tr(cell), "1", 0, aligns[i], false, 0, "")
	}
	pdf.Ln(-1)
}

func drawRule(pdf *gofpdf.Fpdf, pageW float64) {
	pdf.SetLineWidth(0.3)
	y := pdf.GetY()
	pdf.Line(sideMargin, y, pageW-sideMargin, y)
}
