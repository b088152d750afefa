package quote

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/tatilgo/backend-travel/internal/i18n"
	"github.com/tatilgo/backend-travel/internal/pricing"
)

// RenderPDF renders a stored quote as a printable voucher.
func RenderPDF(stored StoredQuote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")

	// Header bar
	pdf.SetFillColor(11, 37, 69)
	pdf.Rect(0, 0, 210, 26, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 7)
	pdf.CellFormat(100, 10, "Tatilgo", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 16)
	pdf.CellFormat(170, 6, tr("Paket Fiyat Teklifi"), "", 1, "L", false, 0, "")

	pdf.SetY(34)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(170, 5, tr(fmt.Sprintf("Teklif No: %s", stored.ID)), "", 1, "L", false, 0, "")
	pdf.CellFormat(170, 5, tr(fmt.Sprintf("Tarih: %s", stored.CreatedAt.Format("02.01.2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sectionHeader := func(title string) {
		pdf.SetFillColor(11, 37, 69)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, tr("  "+title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(110, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 7, tr(value), "", 1, "R", false, 0, "")
	}

	q := stored.Quote

	sectionHeader("Hizmetler")
	for _, it := range q.Items {
		label := it.Name
		if label == "" {
			label = string(it.Category)
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		row(fmt.Sprintf("%s (x%d)", label, qty), pdfMoney(it.LineTotal()))
	}
	row("Ara Toplam", pdfMoney(q.Subtotal))
	pdf.Ln(3)

	if len(q.Discounts) > 0 {
		sectionHeader("Indirimler")
		for _, d := range q.Discounts {
			row(fmt.Sprintf("%s (%%%d)", stripEmoji(i18n.DiscountReason(d)), d.Percent), "-"+pdfMoney(d.Amount))
		}
		pdf.Ln(3)
	}

	sectionHeader("Toplam")
	row("Toplam Indirim", pdfMoney(q.TotalDiscount))
	row("Odenecek Tutar", pdfMoney(q.FinalTotal))
	row("Kazanilan Mil", fmt.Sprintf("%d", q.LoyaltyMilesEarned))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfMoney formats an amount for the PDF, which cannot render the lira sign
// with the built-in fonts.
func pdfMoney(v pricing.Money) string {
	return strings.ReplaceAll(pricing.FormatCurrency(v), "₺", "TL")
}

func stripEmoji(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x2000 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
