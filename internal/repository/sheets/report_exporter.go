package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/arsathrahman00-arsath/fpda/internal/config"
	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

const (
	dayRequirementRange = "DayRequirements!A:F"
	deliveryRange       = "Deliveries!A:D"
)

// Exporter appends operational rows to the reporting spreadsheet, which is
// how the kitchen shares printable reports with the organization.
type Exporter interface {
	AppendDayRequirement(ctx context.Context, header models.DayRequirementHeader, lines []models.DayRequirementLine) error
	AppendDelivery(ctx context.Context, delivery models.Delivery) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendDayRequirement writes the header total plus one row per ingredient.
func (e *GoogleSheetExporter) AppendDayRequirement(ctx context.Context, header models.DayRequirementHeader, lines []models.DayRequirementLine) error {
	rows := make([][]interface{}, 0, len(lines)+1)
	rows = append(rows, []interface{}{header.DayReqDate, header.RecipeType, header.RecipeCode, "TOTAL", "", header.DayTotReq.String()})
	for _, line := range lines {
		rows = append(rows, []interface{}{line.DayReqDate, "", line.RecipeCode, line.ItemName, line.UnitShort, line.DayReqQty.String()})
	}

	return e.appendRows(ctx, dayRequirementRange, rows)
}

// AppendDelivery writes a delivery confirmation row.
func (e *GoogleSheetExporter) AppendDelivery(ctx context.Context, delivery models.Delivery) error {
	row := []interface{}{delivery.DeliveryDate, delivery.Location, delivery.DeliveryQty.String(), delivery.DeliveryBy}
	return e.appendRows(ctx, deliveryRange, [][]interface{}{row})
}

func (e *GoogleSheetExporter) appendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	payload := &sheetsapi.ValueRange{Values: rows}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append rows into range %s: %w", sheetRange, err)
	}

	e.logger.Debug("rows appended to sheet", zap.String("range", sheetRange), zap.Int("rows", len(rows)))
	return nil
}
