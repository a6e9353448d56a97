package marketing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var _ SignupSink = (*SheetsClient)(nil)

// SheetsClient forwards signups to a Google Apps Script webhook that appends
// rows to a spreadsheet.
type SheetsClient struct {
	scriptURL string
	client    *http.Client
}

func NewSheetsClient(scriptURL string) *SheetsClient {
	return &SheetsClient{
		scriptURL: scriptURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// sheetsRow matches the payload the Apps Script endpoint expects: the raw
// timestamp plus a human-readable date column.
type sheetsRow struct {
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
}

type sheetsResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *SheetsClient) Record(ctx context.Context, signup Signup) error {
	row := sheetsRow{
		Email:     signup.Email,
		Timestamp: signup.CreatedAt.Format(time.RFC3339),
		Date:      signup.CreatedAt.Format("Jan 2, 2006, 03:04:05 PM"),
	}

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode signup row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scriptURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sheets request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sheets request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheets request failed with status %d", resp.StatusCode)
	}

	var result sheetsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode sheets response: %w", err)
	}
	if !result.Success {
		if result.Error == "" {
			result.Error = "unknown error"
		}
		return fmt.Errorf("sheets rejected signup: %s", result.Error)
	}
	return nil
}
