package controllers

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/arjun-kp/PayTrail/models"
	"github.com/arjun-kp/PayTrail/utils"
)

// GET /v1/customer-data/statement?email=&phone=
//
// Renders the customer's transaction history as a downloadable PDF
// statement.
func DownloadStatement(c *gin.Context) {
	utils.LogInfo("DownloadStatement called")

	data := lookupService.CustomerData(c.Query("email"), c.Query("phone"))
	if !data.Success {
		utils.BadRequest(c, "Could not build statement", data.Error)
		return
	}

	pdf, err := buildStatementPDF(data)
	if err != nil {
		utils.LogError("Failed to generate statement PDF: %v", err)
		utils.InternalServerError(c, "Failed to generate statement", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transaction_statement_%s.pdf", time.Now().Format("2006-01-02")))
	c.Data(200, "application/pdf", pdf)
}

// POST /v1/customer-data/statement/email
//
// Emails the PDF statement to the given address.
func EmailStatement(c *gin.Context) {
	utils.LogInfo("EmailStatement called")

	var req struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
		To    string `json:"to" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. to is required and must be an email address", err.Error())
		return
	}

	data := lookupService.CustomerData(req.Email, req.Phone)
	if !data.Success {
		utils.BadRequest(c, "Could not build statement", data.Error)
		return
	}

	pdf, err := buildStatementPDF(data)
	if err != nil {
		utils.LogError("Failed to generate statement PDF: %v", err)
		utils.InternalServerError(c, "Failed to generate statement", err.Error())
		return
	}

	body := fmt.Sprintf("<p>Please find attached the transaction statement generated on %s.</p>",
		time.Now().Format("2 January 2006"))
	if err := utils.SendStatementEmail(req.To, "Your transaction statement", body, pdf); err != nil {
		utils.LogError("Failed to email statement to %s: %v", req.To, err)
		utils.InternalServerError(c, "Failed to send statement", err.Error())
		return
	}

	utils.Success(c, "Statement sent successfully", gin.H{"to": req.To})
}

func buildStatementPDF(data models.CustomerDataResponse) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "PAYTRAIL - Transaction Statement")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	identity := data.CustomerEmail
	if identity == "" {
		identity = data.CustomerPhone
	}
	pdf.Cell(0, 8, "Customer: "+identity)
	pdf.Ln(6)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	writeSection(pdf, "Payments",
		[]string{"ID", "Amount", "Status", "Method", "Order ID", "Created"},
		[]float64{50, 35, 30, 30, 50, 45},
		func() [][]string {
			rows := make([][]string, len(data.Payments))
			for i, p := range data.Payments {
				rows[i] = []string{p.ID, pdfAmount(p.AmountFormatted), p.Status, p.Method, p.OrderID, p.CreatedAt}
			}
			return rows
		}())

	writeSection(pdf, "Orders",
		[]string{"ID", "Amount", "Paid", "Due", "Status", "Created"},
		[]float64{50, 35, 35, 35, 30, 45},
		func() [][]string {
			rows := make([][]string, len(data.Orders))
			for i, o := range data.Orders {
				rows[i] = []string{o.ID, pdfAmount(o.AmountFormatted), pdfAmount(o.AmountPaidFormatted), pdfAmount(o.AmountDueFormatted), o.Status, o.CreatedAt}
			}
			return rows
		}())

	writeSection(pdf, "Refunds",
		[]string{"ID", "Amount", "Status", "Payment ID", "Created"},
		[]float64{50, 35, 30, 50, 45},
		func() [][]string {
			rows := make([][]string, len(data.Refunds))
			for i, r := range data.Refunds {
				rows[i] = []string{r.ID, pdfAmount(r.AmountFormatted), r.Status, r.PaymentID, r.CreatedAt}
			}
			return rows
		}())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gofpdf.Fpdf, title string, headers []string, colWidths []float64, rows [][]string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(rows) == 0 {
		pdf.Cell(0, 8, "No records")
		pdf.Ln(10)
		return
	}
	fill := false
	for _, row := range rows {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		for i, cell := range row {
			pdf.CellFormat(colWidths[i], 7, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

// The core PDF fonts cannot render the rupee glyph.
func pdfAmount(formatted string) string {
	return strings.ReplaceAll(formatted, "₹", "Rs ")
}
