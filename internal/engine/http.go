package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/semstack-labs/semstudio/internal/dataset"
)

const defaultFitTimeout = 5 * time.Minute

func init() {
	Register("http", func(cfg Config) (Engine, error) {
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("engine base_url is required for the http adapter")
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultFitTimeout
		}
		return &httpEngine{
			baseURL: strings.TrimRight(cfg.BaseURL, "/"),
			client:  &http.Client{Timeout: timeout},
		}, nil
	})
}

// httpEngine talks to a fitting sidecar service over JSON.
type httpEngine struct {
	baseURL string
	client  *http.Client
}

// fitRequest is the wire form of one estimation request.
type fitRequest struct {
	Model string    `json:"model"`
	Data  tableWire `json:"data"`
}

type tableWire struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// errorResponse is the sidecar's failure envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func (e *httpEngine) Fit(ctx context.Context, spec string, tbl *dataset.Table) (*RawResult, error) {
	payload := fitRequest{
		Model: spec,
		Data:  tableToWire(tbl),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/fit", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fitting service unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read fitting response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var fail errorResponse
		if json.Unmarshal(raw, &fail) == nil && fail.Error != "" {
			return nil, fmt.Errorf("%s", fail.Error)
		}
		return nil, fmt.Errorf("fitting service returned %s", resp.Status)
	}

	var result RawResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode fitting response: %w", err)
	}
	return &result, nil
}

func (e *httpEngine) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("fitting service unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fitting service unhealthy: %s", resp.Status)
	}
	return nil
}

// tableToWire flattens a dataset table into the JSON wire form. Missing
// cells become nulls, numerics stay numeric, text stays text.
func tableToWire(tbl *dataset.Table) tableWire {
	wire := tableWire{Columns: tbl.Columns()}
	for row := 0; row < tbl.NumRows(); row++ {
		cells := tbl.Row(row)
		out := make([]any, len(cells))
		for i, c := range cells {
			switch c.Kind() {
			case dataset.KindNumeric:
				v, _ := c.Float()
				out[i] = v
			case dataset.KindText:
				out[i] = c.String()
			default:
				out[i] = nil
			}
		}
		wire.Rows = append(wire.Rows, out)
	}
	return wire
}
