package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/eliksir/quote-service/internal/config"
	"github.com/eliksir/quote-service/internal/domain/models"
)

const inquiriesRange = "Inquiries!A:L"

// RowWriter appends rows to a spreadsheet range.
type RowWriter interface {
	WriteRow(ctx context.Context, sheetRange string, values []interface{}) error
}

// GoogleSheetRepository implements RowWriter using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// WriteRow appends the provided values to the supplied sheet range.
func (r *GoogleSheetRepository) WriteRow(ctx context.Context, sheetRange string, values []interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", sheetRange, err)
	}

	r.logger.Debug("row appended to sheet", zap.String("range", sheetRange))
	return nil
}

// InquiryLedger records inquiries as rows of the owner's spreadsheet.
type InquiryLedger struct {
	writer RowWriter
}

// NewInquiryLedger wraps a RowWriter.
func NewInquiryLedger(writer RowWriter) *InquiryLedger {
	return &InquiryLedger{writer: writer}
}

// Name identifies the ledger in logs.
func (l *InquiryLedger) Name() string { return "sheets" }

// Publish appends one row per inquiry.
func (l *InquiryLedger) Publish(ctx context.Context, inquiry models.Inquiry) error {
	return l.writer.WriteRow(ctx, inquiriesRange, InquiryRow(inquiry))
}

// InquiryRow flattens an inquiry into spreadsheet cells.
func InquiryRow(inquiry models.Inquiry) []interface{} {
	row := []interface{}{
		inquiry.CreatedAt.Format(time.RFC3339),
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.EventDate,
		inquiry.GuestCount,
		inquiry.Message,
	}

	if q := inquiry.Quote; q != nil {
		row = append(row, q.OfferName, q.Guests, q.TotalAfterDiscount, q.PricePerGuest)
	} else {
		row = append(row, "", "", "", "")
	}
	return row
}
