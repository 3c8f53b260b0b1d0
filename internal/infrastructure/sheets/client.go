// Package sheets implements the client data backend over a deployed Google
// Apps Script endpoint. The script returns each sheet as a JSON array of
// header-keyed row objects (headers are the Russian spreadsheet columns) and
// accepts an addUser action over POST.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/koleso24/cabinet-api/internal/api/metrics"
	"github.com/koleso24/cabinet-api/internal/core/domain"
)

// Client wraps the Apps Script web app endpoints.
type Client struct {
	scriptURL string
	http      *http.Client
}

// NewClient creates a new Apps Script client.
func NewClient(scriptURL string) *Client {
	return &Client{
		scriptURL: scriptURL,
		// The default client follows the redirect Apps Script serves to its
		// one-time googleusercontent host.
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// scriptError is the in-band error envelope the script uses for failures.
type scriptError struct {
	Error string `json:"error"`
}

// fetchRows retrieves one sheet as header-keyed rows.
func (c *Client) fetchRows(ctx context.Context, sheet string) ([]map[string]string, error) {
	timer := prometheus.NewTimer(metrics.BackendFetchDuration.WithLabelValues("sheets", sheet))
	defer timer.ObserveDuration()

	q := url.Values{}
	q.Set("sheet", sheet)
	// Cache buster: Apps Script responses are otherwise cached aggressively.
	q.Set("_", strconv.FormatInt(time.Now().UnixMilli(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scriptURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: sheet %q: status %d", domain.ErrBackendFailure, sheet, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendFailure, err)
	}

	// The script reports its own failures as an object, not an array.
	var scriptErr scriptError
	if json.Unmarshal(body, &scriptErr) == nil && scriptErr.Error != "" {
		return nil, fmt.Errorf("%w: sheet %q: %s", domain.ErrBackendFailure, sheet, scriptErr.Error)
	}

	var rows []map[string]string
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: sheet %q: decode: %w", domain.ErrBackendFailure, sheet, err)
	}
	return rows, nil
}

type addUserRequest struct {
	Action string `json:"action"`
	ChatID string `json:"chatId"`
	Phone  string `json:"phone"`
}

type addUserResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// addUser appends a signup row to the client sheet.
func (c *Client) addUser(ctx context.Context, chatID, phone string) error {
	payload, err := json.Marshal(addUserRequest{Action: "addUser", ChatID: chatID, Phone: phone})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scriptURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBackendFailure, err)
	}
	defer resp.Body.Close()

	var out addUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("%w: add user: decode: %w", domain.ErrBackendFailure, err)
	}

	switch {
	case out.Result == "exists":
		return domain.ErrClientExists
	case out.Error != "":
		return fmt.Errorf("%w: add user: %s", domain.ErrBackendFailure, out.Error)
	case out.Result == "":
		return fmt.Errorf("%w: add user: empty response", domain.ErrBackendFailure)
	}
	return nil
}
