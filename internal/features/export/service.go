package export

import (
	"context"
	"fmt"
	"time"

	"go-estate-crm/internal/common/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	leadColumns = []string{"Name", "Email", "Phone", "Status", "Follow Up", "Source", "Area", "Project", "Assigned To", "Payment Method", "Budget", "Created At"}
	unitColumns = []string{"Unit #", "Project", "Area", "Type", "Size (m²)", "Price", "Owner", "Owner Phone", "Status", "Finishing", "Payment Method", "Installment Plans", "Created At"}
)

type ExportService interface {
	ExportLeads(ctx context.Context, leads []models.Lead) ([]byte, error)
	ExportUnits(ctx context.Context, units []models.Unit) ([]byte, error)
}

type ExportServiceImpl struct {
	Logger *zap.Logger
}

func NewExportService(logger *zap.Logger) ExportService {
	return &ExportServiceImpl{Logger: logger}
}

func (s *ExportServiceImpl) ExportLeads(ctx context.Context, leads []models.Lead) ([]byte, error) {
	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		var budget any
		if l.Budget != nil {
			budget = *l.Budget
		}
		rows = append(rows, []any{
			l.Name, l.Email, l.Phone, string(l.Status), string(l.FollowUp), l.Source,
			l.AreaName, l.ProjectName, l.AssignedToName, string(l.PreferredPaymentMethod), budget,
			formatTime(l.CreatedAt),
		})
	}
	return s.writeSheet("Leads", leadColumns, rows)
}

func (s *ExportServiceImpl) ExportUnits(ctx context.Context, units []models.Unit) ([]byte, error) {
	rows := make([][]any, 0, len(units))
	for _, u := range units {
		rows = append(rows, []any{
			u.UnitNumber, u.ProjectName, u.AreaName, u.Type, u.Size, u.Price, u.OwnerName, u.OwnerPhone,
			string(u.Status), string(u.FinishingStatus), string(u.PaymentMethod), u.InstallmentPlans,
			formatTime(u.CreatedAt),
		})
	}
	return s.writeSheet("Units", unitColumns, rows)
}

func (s *ExportServiceImpl) writeSheet(sheetName string, columns []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			if val == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write %s workbook: %w", sheetName, err)
	}
	s.Logger.Info("exported workbook", zap.String("sheet", sheetName), zap.Int("rows", len(rows)))
	return buffer.Bytes(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
