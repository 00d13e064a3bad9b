// ABOUTME: HTTP client for the hosted record store API
// ABOUTME: Translates duck-typed wire envelopes into explicit Go results
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the hosted record store over HTTP JSON. It is
// constructed explicitly and passed into each service; there is no
// package-level singleton.
type Client struct {
	baseURL    string
	projectID  string
	publicKey  string
	httpClient *http.Client
	log        *zap.Logger
}

var _ Store = (*Client)(nil)

// NewClient creates a client from config. The logger may not be nil.
func NewClient(cfg *Config, log *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.ProjectID == "" || cfg.PublicKey == "" {
		return nil, fmt.Errorf("project id and public key are required")
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.Host, "/"),
		projectID:  cfg.ProjectID,
		publicKey:  cfg.PublicKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}, nil
}

// Wire envelopes. Reads carry data directly; writes and deletes wrap
// per-record outcomes inside an outer success flag.
type listEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    []Record `json:"data,omitempty"`
}

type recordEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data,omitempty"`
}

type writeEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Results []resultEnvelope `json:"results,omitempty"`
}

type resultEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data,omitempty"`
}

// FetchRecords queries a table with an explicit field selection.
func (c *Client) FetchRecords(ctx context.Context, table string, query Query) ([]Record, error) {
	var env listEnvelope
	if err := c.call(ctx, http.MethodPost, c.tableURL(table, "query"), query, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("fetch %s: %s", table, storeMessage(env.Message))
	}
	return env.Data, nil
}

// GetRecordByID fetches a single record, or an error if the store does
// not know the id.
func (c *Client) GetRecordByID(ctx context.Context, table string, id int, fields []string) (Record, error) {
	u := fmt.Sprintf("%s/%d", c.tableURL(table, "records"), id)
	if len(fields) > 0 {
		u += "?fields=" + url.QueryEscape(strings.Join(fields, ","))
	}

	var env recordEnvelope
	if err := c.call(ctx, http.MethodGet, u, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Data == nil {
		return nil, fmt.Errorf("get %s/%d: %s", table, id, storeMessage(env.Message))
	}
	return env.Data, nil
}

// CreateRecords submits a batched create. Services only ever submit
// size-one batches, but the wire contract is a list either way.
func (c *Client) CreateRecords(ctx context.Context, table string, records []Record) (*BatchResult, error) {
	return c.write(ctx, http.MethodPost, c.tableURL(table, "records"), table, payloadRecords{Records: records})
}

// UpdateRecords submits a batched update; each record carries its Id.
func (c *Client) UpdateRecords(ctx context.Context, table string, records []Record) (*BatchResult, error) {
	return c.write(ctx, http.MethodPut, c.tableURL(table, "records"), table, payloadRecords{Records: records})
}

// DeleteRecords submits a batched delete by id.
func (c *Client) DeleteRecords(ctx context.Context, table string, ids []int) (*BatchResult, error) {
	return c.write(ctx, http.MethodPost, c.tableURL(table, "records/delete"), table, payloadIDs{RecordIDs: ids})
}

type payloadRecords struct {
	Records []Record `json:"records"`
}

type payloadIDs struct {
	RecordIDs []int `json:"recordIds"`
}

func (c *Client) write(ctx context.Context, method, u, table string, body any) (*BatchResult, error) {
	var env writeEnvelope
	if err := c.call(ctx, method, u, body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("write %s: %s", table, storeMessage(env.Message))
	}

	result := &BatchResult{}
	for _, r := range env.Results {
		if r.Success {
			result.Succeeded = append(result.Succeeded, r.Data)
		} else {
			result.Failed = append(result.Failed, ItemFailure{Message: r.Message, Record: r.Data})
		}
	}
	return result, nil
}

func (c *Client) tableURL(table, suffix string) string {
	return fmt.Sprintf("%s/api/v1/tables/%s/%s", c.baseURL, table, suffix)
}

func (c *Client) call(ctx context.Context, method, u string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Trellis-Project-Id", c.projectID)
	req.Header.Set("X-Trellis-Public-Key", c.publicKey)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 500 {
		c.log.Warn("record store error",
			zap.Int("status", resp.StatusCode),
			zap.String("url", u))
		return fmt.Errorf("store returned %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func storeMessage(msg string) string {
	if msg == "" {
		return "store reported failure without a message"
	}
	return msg
}
