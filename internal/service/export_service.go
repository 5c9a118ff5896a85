package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"agua-be-svc/internal/models"
	"agua-be-svc/internal/repository"
	"agua-be-svc/pkg/logger"
)

// ExportService defines the interface for spreadsheet exports
type ExportService interface {
	ExportPeriodoToExcel(periodoID uint) ([]byte, string, error)
}

// exportService implements ExportService
type exportService struct {
	billingSvc  BillingService
	periodoRepo repository.PeriodoRepository
	logger      *logger.Logger
}

// NewExportService creates a new instance of ExportService
func NewExportService(billingSvc BillingService, periodoRepo repository.PeriodoRepository, logger *logger.Logger) ExportService {
	return &exportService{
		billingSvc:  billingSvc,
		periodoRepo: periodoRepo,
		logger:      logger,
	}
}

// ExportPeriodoToExcel builds a spreadsheet with the period's charges, one row
// per resident, ordered by chácara number
func (s *exportService) ExportPeriodoToExcel(periodoID uint) ([]byte, string, error) {
	periodo, err := s.periodoRepo.GetByID(periodoID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get period: %w", err)
	}

	consumos, err := s.billingSvc.GetConsumosByPeriodo(periodoID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get consumption data: %w", err)
	}

	// Create a new Excel file
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := fmt.Sprintf("%s %d", models.NomeMes(periodo.Mes), periodo.Ano)
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Chácara", "Morador", "Telefone", "Consumo (m³)", "Valor (R$)", "Despesa Extra (R$)", "Status Pagamento"}

	// Write headers
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	// Style for headers
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "H1", headerStyle)
	}

	// Write data
	for i, consumo := range consumos {
		row := i + 2

		valor, _ := consumo.ValorCalculado.Round(2).Float64()
		consumoM3, _ := consumo.ConsumoM3.Float64()
		despesaExtra, _ := consumo.DespesaExtra.Round(2).Float64()

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), consumo.NumeroChacara)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), consumo.NomeMorador)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), consumo.Telefone)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), consumoM3)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), valor)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), despesaExtra)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), consumo.StatusPagamento)
	}

	// Auto-fit columns
	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	// Delete default Sheet1 if it exists
	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("agua_%02d_%d_%s.xlsx", periodo.Mes, periodo.Ano, timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}
