package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/pkg/apperror"
	"github.com/praveenkm/medistock-api/pkg/printer"
)

// PrinterService formats GST invoices and sends them to a thermal printer.
type PrinterService struct {
	printer      printer.Printer
	invoiceRepo  repository.InvoiceRepository
	settingsRepo repository.SettingsRepository
	printerType  string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	invoiceRepo repository.InvoiceRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the printout so the handler can return it as JSON when printing is disabled.
func (s *PrinterService) TestPrint() (*entity.InvoicePrintout, error) {
	printout := &entity.InvoicePrintout{
		Header: entity.InvoicePrintHeader{
			StoreName:    "PRINTER TEST",
			AddressLine1: "Test Address",
			Phone:        "+91 00000 00000",
			GSTIN:        "00TEST0000T0Z0",
		},
		InvoiceNumber: "INV00000000000",
		InvoiceDate:   "Test Date",
		CustomerName:  "Test Customer",
		Items: []entity.InvoicePrintItem{
			{Name: "Test Medicine 1", BatchNumber: "B001", Quantity: 1, Rate: 10.00, GSTPercentage: 12, Amount: 11.20},
			{Name: "Test Medicine 2", BatchNumber: "B002", Quantity: 2, Rate: 5.00, GSTPercentage: 12, Amount: 11.20},
		},
		TotalAmount: 20.00,
		TotalTax:    2.40,
		GrandTotal:  22.40,
	}

	data := FormatInvoicePrintout(printout)
	if err := s.printer.Print(data); err != nil {
		return printout, fmt.Errorf("test print failed: %w", err)
	}

	return printout, nil
}

// PrintInvoice fetches an invoice with its items, merges in the pharmacy
// seller profile and prints the GST invoice.
func (s *PrinterService) PrintInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.InvoicePrintout, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	printout := &entity.InvoicePrintout{
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate.Format("02-01-2006 15:04"),
		CustomerName:  invoice.CustomerName,
		PaymentType:   string(invoice.PaymentType),
		TotalAmount:   invoice.TotalAmount,
		TotalTax:      invoice.TotalTax,
		GrandTotal:    invoice.GrandTotal,
	}

	if settings != nil {
		printout.Header = entity.InvoicePrintHeader{
			StoreName:    settings.StoreName,
			AddressLine1: settings.AddressLine1,
			AddressLine2: settings.AddressLine2,
			Phone:        settings.Phone,
			GSTIN:        settings.GSTIN,
			DLNumbers:    settings.DLNumbers,
		}
		printout.Terms = settings.Terms
	}

	if invoice.CustomerAddress != nil {
		printout.CustomerAddress = *invoice.CustomerAddress
	}
	if invoice.CustomerGSTIN != nil {
		printout.CustomerGSTIN = *invoice.CustomerGSTIN
	}
	if invoice.CustomerDLNo != nil {
		printout.CustomerDLNo = *invoice.CustomerDLNo
	}

	for _, item := range invoice.Items {
		printItem := entity.InvoicePrintItem{
			Name:               item.Medicine.Name,
			Manufacturer:       item.Medicine.Manufacturer,
			HSNCode:            item.HSNCode,
			BatchNumber:        item.BatchNumber,
			ExpiryDate:         item.ExpiryDate.Format("01/06"),
			Quantity:           item.Quantity,
			FreeQuantity:       item.FreeQuantity,
			DiscountPercentage: item.DiscountPercentage,
			MRP:                item.MRP,
			Rate:               item.Rate,
			GSTPercentage:      item.GSTPercentage,
			Amount:             item.TotalAmount,
		}
		if printItem.Name == "" {
			printItem.Name = "Medicine"
		}
		printout.Items = append(printout.Items, printItem)
	}

	data := FormatInvoicePrintout(printout)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (invoice %s): %v", invoiceID, err)
		return printout, fmt.Errorf("failed to print invoice: %w", err)
	}

	return printout, nil
}

// FormatInvoicePrintout converts a GST invoice printout into ESC/POS bytes.
func FormatInvoicePrintout(p *entity.InvoicePrintout) []byte {
	doc := printer.NewDocument(48) // 80mm paper = 48 chars

	// Seller header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(p.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if p.Header.AddressLine1 != "" {
		doc.Text(p.Header.AddressLine1)
	}
	if p.Header.AddressLine2 != "" {
		doc.Text(p.Header.AddressLine2)
	}
	if p.Header.Phone != "" {
		doc.TextF("Ph: %s", p.Header.Phone)
	}
	if p.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", p.Header.GSTIN)
	}
	if p.Header.DLNumbers != "" {
		doc.TextF("DL No: %s", p.Header.DLNumbers)
	}

	doc.SetBold(true).
		Text("GST INVOICE").
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('=')

	// Invoice and buyer info
	doc.KeyValue("Invoice:", p.InvoiceNumber).
		KeyValue("Date:", p.InvoiceDate).
		KeyValue("Customer:", p.CustomerName)

	if p.CustomerAddress != "" {
		doc.TextF("  %s", p.CustomerAddress)
	}
	if p.CustomerGSTIN != "" {
		doc.KeyValue("Cust. GSTIN:", p.CustomerGSTIN)
	}
	if p.CustomerDLNo != "" {
		doc.KeyValue("Cust. DL No:", p.CustomerDLNo)
	}
	if p.PaymentType != "" {
		doc.KeyValue("Payment:", p.PaymentType)
	}

	doc.Separator('-')

	// Item table
	doc.Text("Product          Batch   Expr  Qty    Rate  Amount").
		Separator('-')

	for _, item := range p.Items {
		name := item.Name
		if len(name) > 16 {
			name = name[:16]
		}
		doc.TextF("%-16s %-7s %-5s %3d %7.2f %7.2f",
			name, item.BatchNumber, item.ExpiryDate, item.Quantity, item.Rate, item.Amount)

		details := fmt.Sprintf("  HSN %s GST %.1f%%", item.HSNCode, item.GSTPercentage)
		if item.FreeQuantity > 0 {
			details += fmt.Sprintf(" Free %d", item.FreeQuantity)
		}
		if item.DiscountPercentage > 0 {
			details += fmt.Sprintf(" Dis %.1f%%", item.DiscountPercentage)
		}
		if item.MRP > 0 {
			details += fmt.Sprintf(" MRP %.2f", item.MRP)
		}
		doc.Text(details)
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", p.TotalAmount)).
		KeyValue("GST:", fmt.Sprintf("%.2f", p.TotalTax)).
		SetBold(true).
		KeyValue("GRAND TOTAL:", fmt.Sprintf("%.2f", p.GrandTotal)).
		SetBold(false).
		Separator('=')

	// Terms and footer
	if p.Terms != "" {
		doc.Text("Terms & Conditions:").
			Text(p.Terms)
	}

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, get well soon!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
