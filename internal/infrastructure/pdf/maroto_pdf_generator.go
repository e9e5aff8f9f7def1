// Package pdf renders printable invoices and payment receipts with Maroto v2.
//
// A4 invoice layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name + GSTIN  │  Invoice number + dates    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: issuer address / phone / email                       │
//	│  BILL TO: client + billing address + GSTIN                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Description | Unit | Qty | Rate | Disc | GST |  │
//	│         Amount                                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Discount / Tax / TOTAL / Amount paid    │
//	│  Amount in words                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: bank details + UPI QR | signatory block            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/squarem/invoicing-api/internal/application/billing"
	"github.com/squarem/invoicing-api/internal/domain/billing"
	"github.com/squarem/invoicing-api/internal/domain/entity"
)

const dateLayout = "02/01/2006"

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice document and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, data *appbilling.InvoicePDFData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+data.Invoice.InvoiceNumber, true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(invoiceHeaderRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(issuerRow(data.Company))
	m.AddRows(billToRow(data.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(data.Invoice.Currency, data.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Invoice))
	if data.TotalInWords != "" {
		m.AddRows(wordsRow(data.TotalInWords))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(data) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateReceiptPDF renders a single-payment receipt.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(_ context.Context, data *appbilling.ReceiptPDFData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Payment Receipt", true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(16).Add(
		col.New(7).Add(
			text.New(data.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("PAYMENT RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Date: "+data.Payment.PaidOn.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	symbol := billing.CurrencySymbol(data.Invoice.Currency)
	m.AddRows(row.New(34).Add(col.New(12).Add(
		text.New("Received with thanks from "+data.Client.Name, props.Text{Size: 10, Top: 2}),
		text.New(fmt.Sprintf("the sum of %s %s", symbol, data.Payment.Amount.StringFixed(2)), props.Text{
			Style: fontstyle.Bold, Size: 12, Top: 9, Color: colorPrimary,
		}),
		text.New(wordsLine(data.AmountInWords), props.Text{Size: 8, Top: 17, Color: colorGray}),
		text.New(fmt.Sprintf("against invoice %s   |   Mode: %s%s",
			data.Invoice.InvoiceNumber,
			data.Payment.Method,
			referenceSuffix(data.Payment.Reference),
		), props.Text{Size: 9, Top: 24}),
	)))

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(16).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Amount paid to date: %s %s", symbol, data.Invoice.AmountPaid.StringFixed(2)),
				props.Text{Size: 8, Top: 2, Color: colorGray}),
			text.New(fmt.Sprintf("Balance due: %s %s", symbol, data.Invoice.BalanceDue().StringFixed(2)),
				props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("For "+data.Company.Name, props.Text{Size: 8, Align: align.Right, Top: 2}),
			text.New("Authorised Signatory", props.Text{Size: 8, Align: align.Right, Top: 11, Color: colorGray}),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

// invoiceHeaderRow: company name + GSTIN on the left, number + dates on the right.
func invoiceHeaderRow(data *appbilling.InvoicePDFData) core.Row {
	inv := data.Invoice
	return row.New(22).Add(
		col.New(7).Add(
			text.New(data.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(taxIDLine(data.Company), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Date: "+inv.InvoiceDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Due: "+inv.DueDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// issuerRow: issuer contact line.
func issuerRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "—"),
				nonEmpty(company.Phone, "—"),
				nonEmpty(company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// billToRow: client block with the full billing address.
func billToRow(client *entity.Client) core.Row {
	detail := client.FullBillingAddress()
	if client.GSTIN != "" {
		detail += "   |   GSTIN: " + client.GSTIN
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// itemsHeaderRow: line-item table header.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Description", 4, align.Left),
		h("Unit", 1, align.Center),
		h("Qty", 1, align.Right),
		h("Rate", 2, align.Right),
		h("Disc%", 1, align.Right),
		h("GST%", 1, align.Right),
		h("Amount", 1, align.Right),
	)
}

// itemRows: one row per line item.
func itemRows(currency string, items []*entity.InvoiceItem) []core.Row {
	symbol := billing.CurrencySymbol(currency)
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.UnitType,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				symbol+" "+it.Rate.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.Discount.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.TaxRate.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block, balance included.
func totalsRow(inv *entity.Invoice) core.Row {
	symbol := billing.CurrencySymbol(inv.Currency)
	money := func(d fmt.Stringer) string { return symbol + " " + d.String() }
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(36).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:", 1),
			label("Discount:", 6),
			label("Tax (GST):", 11),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 17,
			}),
			label("Amount paid:", 24),
			label("Balance due:", 29),
		),
		col.New(4).Add(
			value(money(fixed2{inv.Subtotal}), 1),
			value(money(fixed2{inv.DiscountAmount}), 6),
			value(money(fixed2{inv.TaxAmount}), 11),
			text.New(money(fixed2{inv.Total}), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 17,
			}),
			value(money(fixed2{inv.AmountPaid}), 24),
			value(money(fixed2{inv.BalanceDue()}), 29),
		),
	)
}

// wordsRow: amount in words below the totals.
func wordsRow(words string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(wordsLine(words), props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

// footerRows: bank details and UPI QR on the left, signatory block on the right.
func footerRows(data *appbilling.InvoicePDFData) []core.Row {
	company := data.Company

	leftCol := col.New(7)
	if company.BankName != "" || company.AccountNumber != "" {
		leftCol.Add(
			text.New("BANK DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s", company.BankName, company.BankBranch), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("A/C: %s   |   IFSC: %s",
				nonEmpty(company.AccountNumber, "—"),
				nonEmpty(company.IFSCCode, "—"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		)
	}

	rightCol := col.New(5)
	signatory := "Authorised Signatory"
	if data.PaymentInfo != nil && data.PaymentInfo.SignatoryName != "" {
		signatory = data.PaymentInfo.SignatoryName
		if data.PaymentInfo.SignatoryDesignation != "" {
			signatory += ", " + data.PaymentInfo.SignatoryDesignation
		}
	}
	rightCol.Add(
		text.New("For "+company.Name, props.Text{Size: 9, Align: align.Right, Top: 2}),
		text.New(signatory, props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
	)

	rows := []core.Row{row.New(20).Add(leftCol, rightCol)}

	if data.PaymentInfo != nil && (data.PaymentInfo.PaymentTerms != "" || data.PaymentInfo.BankInstructions != "") {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(nonEmpty(data.PaymentInfo.PaymentTerms, data.PaymentInfo.BankInstructions),
				props.Text{Size: 7.5, Top: 1, Color: colorGray}),
		)))
	}

	// UPI QR only when the company has a UPI id.
	if data.UPIPayload != "" {
		rows = append(rows, row.New(42).Add(
			col.New(4).Add(code.NewQr(data.UPIPayload, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Scan to pay via UPI", props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3, Color: colorPrimary,
				}),
				text.New("UPI: "+company.UPIID, props.Text{
					Size: 8, Top: 13, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	if data.Invoice.Terms != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(data.Invoice.Terms, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
		)))
	}

	return rows
}

// fixed2 renders a decimal with exactly two places through fmt.Stringer.
type fixed2 struct{ d decimal.Decimal }

func (f fixed2) String() string { return f.d.StringFixed(2) }

// taxIDLine renders the issuer's tax registrations for the header.
func taxIDLine(company *entity.Company) string {
	switch {
	case company.GSTIN != "" && company.PAN != "":
		return "GSTIN: " + company.GSTIN + "   |   PAN: " + company.PAN
	case company.GSTIN != "":
		return "GSTIN: " + company.GSTIN
	case company.PAN != "":
		return "PAN: " + company.PAN
	default:
		return ""
	}
}

func wordsLine(words string) string {
	if words == "" {
		return ""
	}
	return "Amount in words: " + words
}

func referenceSuffix(ref string) string {
	if ref == "" {
		return ""
	}
	return "   |   Ref: " + ref
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
