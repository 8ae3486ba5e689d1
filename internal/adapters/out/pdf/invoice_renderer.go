// Package pdf renders frozen invoice snapshots as printable documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"restaurant/internal/core/application/views"
)

const dateLayout = "2006-01-02 15:04"

type InvoiceRenderer struct {
	title string
}

// NewInvoiceRenderer returns a renderer printing title as the document header.
// An empty title falls back to "Restaurant".
func NewInvoiceRenderer(title string) *InvoiceRenderer {
	if strings.TrimSpace(title) == "" {
		title = "Restaurant"
	}
	return &InvoiceRenderer{title: title}
}

func (r *InvoiceRenderer) Render(inv views.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(inv.InvoiceNumber, false)
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, r.title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Invoice %s", inv.InvoiceNumber), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, inv.CreatedAt.Format(dateLayout), "", 1, "C", false, 0, "")
	if inv.Status != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Status: %s", inv.Status), "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	if inv.TableNumber != "" {
		label := fmt.Sprintf("Table %s", inv.TableNumber)
		if inv.FloorName != "" {
			label = fmt.Sprintf("%s (%s)", label, inv.FloorName)
		}
		pdf.CellFormat(0, 5, label, "", 1, "L", false, 0, "")
	}
	if inv.CustomerName != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Customer: %s", inv.CustomerName), "", 1, "L", false, 0, "")
	}
	if inv.CustomerPhone != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s", inv.CustomerPhone), "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(110, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(28, 6, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Amount", "B", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range inv.Items {
		name := line.Name
		if line.IsVeg {
			name += " (veg)"
		}
		pdf.CellFormat(110, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 5, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(28, 5, line.Price.String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 5, line.Amount().String(), "", 1, "R", false, 0, "")
		if line.Notes != "" {
			pdf.MultiCell(0, 4, fmt.Sprintf("Notes: %s", line.Notes), "", "L", false)
		}
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Totals", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Subtotal: %s", inv.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Tax (5%%): %s", inv.Tax), "", 1, "R", false, 0, "")
	if inv.Discount.IsPositive() {
		pdf.CellFormat(0, 5, fmt.Sprintf("Discount: -%s", inv.Discount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: %s", inv.Total), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Arial", "", 9)
	if inv.PaymentMode != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Payment: %s", inv.PaymentMode), "", 1, "L", false, 0, "")
	}
	for _, split := range inv.SplitPayments {
		pdf.CellFormat(0, 5, fmt.Sprintf("  %s: %s (%s)", split.Person, split.Amount, split.Mode), "", 1, "L", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
