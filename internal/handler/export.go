package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"
	"github.com/A-M-Ahmed/fintrack-finance/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler streams the caller's transaction history as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"Type", "Category", "Title", "Amount", "Wallet", "Date", "Note"}

func (h *ExportHandler) userTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := h.DB.Where("user_id = ?", userID).
		Preload("Wallet").
		Order("date DESC, id DESC").
		Find(&transactions).Error
	return transactions, err
}

func exportRow(t *models.Transaction) []string {
	walletName := ""
	if t.Wallet != nil {
		walletName = t.Wallet.Name
	}
	return []string{
		t.Type,
		t.Category,
		t.Title,
		strconv.FormatFloat(t.Amount, 'f', 2, 64),
		walletName,
		t.Date.Format("2006-01-02"),
		t.Note,
	}
}

// ExportCSV handles GET /api/export/csv.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	transactions, err := h.userTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range transactions {
		writer.Write(exportRow(&transactions[i]))
	}
}

// ExportXLSX handles GET /api/export/xlsx.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	transactions, err := h.userTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range transactions {
		row := idx + 2
		for col, value := range exportRow(&transactions[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Server error")
	}
}
