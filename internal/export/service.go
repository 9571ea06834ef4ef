package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/chandrashekharddev/agroscheme/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	applications repository.ApplicationRepository
	farmers      repository.FarmerRepository
	schemes      repository.SchemeRepository
	logger       *slog.Logger
}

func NewService(applications repository.ApplicationRepository, farmers repository.FarmerRepository, schemes repository.SchemeRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{applications: applications, farmers: farmers, schemes: schemes, logger: logger}
}

// ExportApplicationsXLSX returns an XLSX workbook (as bytes) for one scheme's
// applications, for district offices that still work off spreadsheets.
func (s *Service) ExportApplicationsXLSX(ctx context.Context, schemeID uuid.UUID) ([]byte, error) {
	start := time.Now()

	scheme, err := s.schemes.GetByID(ctx, schemeID)
	if err != nil {
		return nil, fmt.Errorf("query scheme: %w", err)
	}
	apps, err := s.applications.ListApplications(ctx, repository.ApplicationFilter{SchemeID: schemeID})
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Applications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Application ID",
		"Farmer Code",
		"Farmer Name",
		"District",
		"Status",
		"Source",
		"Applied Amount",
		"Approved Amount",
		"Applied On",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, a := range apps {
		farmerCode, farmerName, district := "", "", ""
		if farmer, err := s.farmers.GetByID(ctx, a.FarmerID); err == nil {
			farmerCode = farmer.FarmerCode
			farmerName = farmer.Name
			if farmer.District != nil {
				district = *farmer.District
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, a.ApplicationID)
		write(2, farmerCode)
		write(3, farmerName)
		write(4, district)
		write(5, string(a.Status))
		write(6, string(a.Source))
		if a.AppliedAmount != nil {
			write(7, *a.AppliedAmount)
		}
		if a.ApprovedAmount != nil {
			write(8, *a.ApprovedAmount)
		}
		write(9, a.CreatedAt.Format("2006-01-02"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // application id
	_ = f.SetColWidth(sheet, "B", "C", 22) // farmer code, name
	_ = f.SetColWidth(sheet, "D", "D", 18) // district
	_ = f.SetColWidth(sheet, "E", "F", 14) // status, source
	_ = f.SetColWidth(sheet, "G", "H", 16) // amounts
	_ = f.SetColWidth(sheet, "I", "I", 12) // date

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"scheme_id", schemeID.String(),
		"scheme", scheme.Name,
		"rows", len(apps),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
