// Package sheets is a thin gateway to the Google Sheets v4 API.
//
// It exposes the small remote surface the store needs (range read, append,
// update, structural row delete, metadata lookup) and carries no business
// logic. Remote faults are wrapped and returned as-is; there is no retry or
// backoff at this layer.
package sheets

import (
	"context"
	"fmt"

	"github.com/finvault/sheetdb/internal/config"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// valueInputUserEntered makes the store interpret values as if typed into
// the UI: numbers, dates and formulas are parsed rather than stored as
// literal text.
const valueInputUserEntered = "USER_ENTERED"

// Client talks to a single spreadsheet container.
// It is safe for concurrent use.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient builds a Client from credentials in cfg.
// Inline JSON credentials take precedence over a key file path.
func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(gsheets.SpreadsheetsScope))

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

// Read returns the cell values of rng. A range naming only a sheet
// (e.g. "Clusters") reads the sheet's entire used range. Trailing blank
// cells are omitted by the API, so rows may be shorter than the header.
func (c *Client) Read(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %q: %w", rng, err)
	}
	return resp.Values, nil
}

// Append appends rows after the existing data of the table found at rng.
func (c *Client) Append(ctx context.Context, rng string, rows [][]interface{}) error {
	body := &gsheets.ValueRange{Values: rows}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, body).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to range %q: %w", rng, err)
	}
	return nil
}

// Update overwrites the rectangular region at rng with rows.
func (c *Client) Update(ctx context.Context, rng string, rows [][]interface{}) error {
	body := &gsheets.ValueRange{Values: rows}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, body).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update range %q: %w", rng, err)
	}
	return nil
}

// DeleteRows structurally removes the 0-based half-open row interval
// [start, end) from the sheet identified by sheetID. Subsequent rows
// shift up by (end - start).
func (c *Client) DeleteRows(ctx context.Context, sheetID, start, end int64) error {
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: start,
					EndIndex:   end,
				},
			},
		}},
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("delete rows [%d,%d) of sheet %d: %w", start, end, sheetID, err)
	}
	return nil
}

// Sheets returns the container's sheet-name to numeric-sheet-id mapping.
func (c *Client) Sheets(ctx context.Context) (map[string]int64, error) {
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets(properties(sheetId,title))").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet metadata: %w", err)
	}

	ids := make(map[string]int64, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties == nil {
			continue
		}
		ids[s.Properties.Title] = s.Properties.SheetId
	}
	return ids, nil
}
