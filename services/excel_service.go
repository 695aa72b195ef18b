package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"splitledger/models"

	"github.com/xuri/excelize/v2"
)

// ExcelService exports a group's ledger as an Excel workbook
type ExcelService struct {
	groupService      *GroupService
	expenseService    *ExpenseService
	settlementService *SettlementService
	paymentService    *PaymentService
}

// NewExcelService creates a new Excel service
func NewExcelService(groupService *GroupService, expenseService *ExpenseService, settlementService *SettlementService, paymentService *PaymentService) *ExcelService {
	return &ExcelService{
		groupService:      groupService,
		expenseService:    expenseService,
		settlementService: settlementService,
		paymentService:    paymentService,
	}
}

// ExportGroupToExcel generates a workbook with a balance summary, the full
// expense matrix, and the settlement/payment history for a group
func (s *ExcelService) ExportGroupToExcel(groupID, requesterID string) (*excelize.File, string, error) {
	group, err := s.groupService.GetGroup(groupID, requesterID)
	if err != nil {
		return nil, "", err
	}

	expenseList, err := s.expenseService.ListExpenses(groupID, requesterID)
	if err != nil {
		return nil, "", err
	}

	balanceResult, err := s.settlementService.GetGroupBalance(groupID, requesterID)
	if err != nil {
		return nil, "", err
	}

	payments, err := s.paymentService.ListPaymentsInternal(groupID)
	if err != nil {
		payments = []models.Payment{}
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, group, balanceResult); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createExpenseSheet(f, group, expenseList.Expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create expense sheet: %v", err)
	}
	if err := s.createPaymentSheet(f, payments); err != nil {
		return nil, "", fmt.Errorf("failed to create payment sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		cleanFileName(group.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createSummarySheet writes per-member balances and suggested settlements
func (s *ExcelService) createSummarySheet(f *excelize.File, group *models.Group, result *models.BalanceResult) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})

	f.SetCellValue(sheetName, "A1", group.Name)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Total expenses: %.2f", group.TotalExpense))

	headers := []string{"Member", "Total Paid", "Total Owed", "Net Balance"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s4", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A4", "D4", headerStyle)

	for i, balance := range result.Balances {
		row := i + 5
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), balance.UserID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), balance.TotalPaid)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), balance.TotalOwed)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), balance.Balance)
	}

	settlementsStartRow := len(result.Balances) + 7
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", settlementsStartRow), "Suggested Settlements:")

	settlementsStartRow++
	for i, header := range []string{"From", "To", "Amount"} {
		cell := fmt.Sprintf("%s%d", string(rune('A'+i)), settlementsStartRow)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", settlementsStartRow), fmt.Sprintf("C%d", settlementsStartRow), headerStyle)

	for i, settlement := range result.Settlements {
		row := settlementsStartRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), settlement.From)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), settlement.To)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), settlement.Amount)
	}

	f.SetColWidth(sheetName, "A", "D", 18)

	return nil
}

// createExpenseSheet writes the expense matrix: one row per expense, one
// column per member holding that member's share
func (s *ExcelService) createExpenseSheet(f *excelize.File, group *models.Group, expenses []*models.GroupExpense) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	// Columns cover current members plus anyone referenced by history
	memberSet := make(map[string]bool)
	var memberCols []string
	for _, member := range group.Members {
		memberSet[member.UserID] = true
		memberCols = append(memberCols, member.UserID)
	}
	for _, expense := range expenses {
		for _, line := range expense.SplitAmong {
			if !memberSet[line.UserID] {
				memberSet[line.UserID] = true
				memberCols = append(memberCols, line.UserID)
			}
		}
	}

	headers := []string{"Date", "Description", "Paid By", "Amount"}
	headers = append(headers, memberCols...)

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", lastCell, headerStyle)

	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.PaidBy)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Amount)

		shares := make(map[string]float64, len(expense.SplitAmong))
		for _, line := range expense.SplitAmong {
			shares[line.UserID] = line.Amount
		}
		for j, userID := range memberCols {
			cell, _ := excelize.CoordinatesToCellName(5+j, row)
			f.SetCellValue(sheetName, cell, shares[userID])
		}
	}

	f.SetColWidth(sheetName, "B", "B", 24)

	return nil
}

// createPaymentSheet writes the recorded settle-up transfers
func (s *ExcelService) createPaymentSheet(f *excelize.File, payments []models.Payment) error {
	sheetName := "Payments"
	f.NewSheet(sheetName)

	headers := []string{"Date", "From", "To", "Amount", "Description"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "E1", headerStyle)

	for i, payment := range payments {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), payment.PaymentDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), payment.FromUser)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), payment.ToUser)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), payment.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), payment.Description)
	}

	f.SetColWidth(sheetName, "A", "E", 16)

	return nil
}

var invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// cleanFileName removes invalid characters from a download filename
func cleanFileName(filename string) string {
	cleaned := invalidFileChars.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	return regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")
}
