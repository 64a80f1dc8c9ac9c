package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
	"aqua-backend/internal/timeutil"
)

// StatementLine is one invoice on a customer statement, annotated
// with the account balance around it.
type StatementLine struct {
	Sale          models.Sale `json:"sale"`
	InvoiceNumber string      `json:"invoiceNumber"`
	BalanceBefore float64     `json:"balanceBefore"`
	BalanceAfter  float64     `json:"balanceAfter"`
}

// StatementData is a customer account statement for a date range.
// Lines are oldest first; balances are annotated starting from the
// customer's stored balance at the newest invoice, so the oldest line
// carries the highest accumulated balance.
type StatementData struct {
	Customer      models.Customer `json:"customer"`
	PeriodStart   time.Time       `json:"periodStart"`
	PeriodEnd     time.Time       `json:"periodEnd"`
	TotalSales    float64         `json:"totalSales"`
	PaidAmount    float64         `json:"paidAmount"`
	PendingAmount float64         `json:"pendingAmount"`
	PartialAmount float64         `json:"partialAmount"`
	Balance       float64         `json:"balance"`
	Lines         []StatementLine `json:"lines"`
}

// StatementService builds customer account statements and renders
// them as PDF or CSV.
type StatementService struct {
	Store *store.Store
	Now   func() time.Time
}

func NewStatementService(s *store.Store) *StatementService {
	return &StatementService{Store: s, Now: time.Now}
}

// DefaultPeriodDays is the statement window used when no range is given.
const DefaultPeriodDays = 90

// invoiceNumber derives the display number from the last six
// characters of the sale id.
func invoiceNumber(id string) string {
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return "INV-" + strings.ToUpper(id)
}

// Build assembles the statement for one customer. Zero start/end
// default to the trailing DefaultPeriodDays window. Only unpaid
// invoices move the running balance; paid ones appear with the
// balance unchanged.
func (s *StatementService) Build(ctx context.Context, customerID string, start, end time.Time) (*StatementData, error) {
	customer := s.Store.GetCustomer(customerID)
	if customer == nil {
		return nil, errors.New("customer not found")
	}

	now := s.Now()
	if end.IsZero() {
		end = now
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -DefaultPeriodDays)
	}
	start = timeutil.StartOfDay(start)
	end = timeutil.EndOfDay(end)

	data := &StatementData{
		Customer:    *customer,
		PeriodStart: start,
		PeriodEnd:   end,
		Balance:     customer.Balance,
	}

	var selected []models.Sale
	for _, sale := range s.Store.Sales() {
		if sale.CustomerID != customerID || !timeutil.InRange(sale.CreatedAt, start, end) {
			continue
		}
		selected = append(selected, sale)
		data.TotalSales += sale.Total
		switch sale.PaymentStatus {
		case models.PaymentPaid:
			data.PaidAmount += sale.Total
		case models.PaymentPending:
			data.PendingAmount += sale.Total
		case models.PaymentPartial:
			data.PartialAmount += sale.Total
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].CreatedAt.After(selected[j].CreatedAt)
	})

	// Walk newest first, then flip for display. The baseline anchors
	// at the newest invoice, a long-standing quirk of the statement
	// page that downstream consumers rely on.
	running := customer.Balance
	lines := make([]StatementLine, 0, len(selected))
	for _, sale := range selected {
		line := StatementLine{
			Sale:          sale,
			InvoiceNumber: invoiceNumber(sale.ID),
			BalanceBefore: running,
			BalanceAfter:  running,
		}
		if sale.PaymentStatus != models.PaymentPaid {
			line.BalanceAfter += sale.Total
		}
		running = line.BalanceAfter
		lines = append(lines, line)
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	data.Lines = lines
	return data, nil
}

// crdr formats an amount as an absolute figure tagged CR or DR.
func crdr(amount float64) string {
	tag := "CR"
	if amount < 0 {
		tag = "DR"
		amount = -amount
	}
	return fmt.Sprintf("$%.2f %s", amount, tag)
}

// GeneratePDF renders the statement as a portrait A4 document.
func (s *StatementService) GeneratePDF(data *StatementData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "ACCOUNT STATEMENT", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, "AquaTrade Fish Market Management", "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Period: %s - %s",
		data.PeriodStart.Format("02-Jan-2006"), data.PeriodEnd.Format("02-Jan-2006")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Customer Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", data.Customer.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", data.Customer.Phone), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Email: %s", data.Customer.Email), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer Since: %s", data.Customer.CreatedAt.Format("02-Jan-2006")), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Account Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Account Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(47, 8, fmt.Sprintf("Total Sales: $%.2f", data.TotalSales), "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 8, fmt.Sprintf("Paid: $%.2f", data.PaidAmount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 8, fmt.Sprintf("Pending: $%.2f", data.PendingAmount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 8, fmt.Sprintf("Partial: $%.2f", data.PartialAmount), "1", 1, "C", false, 0, "")

	if data.Balance >= 0 {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 200, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Current Balance: %s", crdr(data.Balance)), "1", 1, "C", true, 0, "")
	pdf.Ln(5)

	// Transaction History
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Transaction History", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(28, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Invoice #", "1", 0, "C", true, 0, "")
	pdf.CellFormat(62, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range data.Lines {
		desc := describeLines(line.Sale.Products)
		if len(desc) > 38 {
			desc = desc[:35] + "..."
		}
		pdf.CellFormat(28, 6, line.Sale.CreatedAt.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, line.InvoiceNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(62, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("$%.2f", line.Sale.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, string(line.Sale.PaymentStatus), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, crdr(line.BalanceAfter), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(190, 5, "Payment is due within 30 days of invoice date. Late payments may be subject to interest charges.", "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("Statement generated on %s. This is a computer-generated statement and does not require a signature.",
		s.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// describeLines summarizes invoice lines the way the statement page
// does: "N items - first, second +K more".
func describeLines(lines []models.SaleLine) string {
	names := make([]string, 0, 2)
	for i, l := range lines {
		if i == 2 {
			break
		}
		names = append(names, l.ProductName)
	}
	desc := fmt.Sprintf("%d item", len(lines))
	if len(lines) != 1 {
		desc += "s"
	}
	desc += " - " + strings.Join(names, ", ")
	if len(lines) > 2 {
		desc += fmt.Sprintf(" +%d more", len(lines)-2)
	}
	return desc
}

// GenerateCSV renders the statement transaction history as CSV.
func (s *StatementService) GenerateCSV(data *StatementData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Account Statement", data.Customer.Name})
	w.Write([]string{"Period", data.PeriodStart.Format("02-Jan-2006"), data.PeriodEnd.Format("02-Jan-2006")})
	w.Write([]string{""})
	w.Write([]string{"Total Sales", fmt.Sprintf("%.2f", data.TotalSales)})
	w.Write([]string{"Paid", fmt.Sprintf("%.2f", data.PaidAmount)})
	w.Write([]string{"Pending", fmt.Sprintf("%.2f", data.PendingAmount)})
	w.Write([]string{"Partial", fmt.Sprintf("%.2f", data.PartialAmount)})
	w.Write([]string{"Current Balance", fmt.Sprintf("%.2f", data.Balance)})
	w.Write([]string{""})

	w.Write([]string{"Date", "Invoice #", "Items", "Amount", "Status", "Balance After"})
	for _, line := range data.Lines {
		w.Write([]string{
			line.Sale.CreatedAt.Format("02-Jan-2006"),
			line.InvoiceNumber,
			fmt.Sprintf("%d", len(line.Sale.Products)),
			fmt.Sprintf("%.2f", line.Sale.Total),
			string(line.Sale.PaymentStatus),
			fmt.Sprintf("%.2f", line.BalanceAfter),
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
