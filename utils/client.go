// Package utils provides the HTTP client for the Stacks node API.
package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var _ Client = (*NodeClient)(nil)

// Client defines the interface for Stacks node clients
type Client interface {
	QueryNonce(principal string) (uint64, error)
	BroadcastTransaction(rawTx []byte) (string, error)
}

var ErrBroadcast = errors.New("broadcast failed")

// NodeClient talks to a Stacks node over its HTTP RPC API
type NodeClient struct {
	baseURL    string
	httpClient *http.Client
}

// createHTTPClient creates an HTTP client with connection pooling enabled
func createHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
		DisableKeepAlives:   false,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second, // Request timeout
	}
}

// NewNodeClient creates a client for the given node API endpoint
func NewNodeClient(baseURL string) *NodeClient {
	return &NodeClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: createHTTPClient(),
	}
}

// accountResponse is the subset of the /v2/accounts payload we read
type accountResponse struct {
	Nonce uint64 `json:"nonce"`
}

// QueryNonce queries the next account nonce for the given principal
func (c *NodeClient) QueryNonce(principal string) (uint64, error) {
	url := fmt.Sprintf("%s/v2/accounts/%s?proof=0", c.baseURL, principal)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch account nonce: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("failed to fetch account nonce: node returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var account accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return 0, fmt.Errorf("failed to decode account response: %w", err)
	}
	return account.Nonce, nil
}

// rejectionResponse is the error payload /v2/transactions returns when the
// node refuses a transaction
type rejectionResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// BroadcastTransaction submits a raw signed transaction and returns the
// transaction id the node assigned
func (c *NodeClient) BroadcastTransaction(rawTx []byte) (string, error) {
	url := c.baseURL + "/v2/transactions"
	resp, err := c.httpClient.Post(url, "application/octet-stream", bytes.NewReader(rawTx))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBroadcast, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBroadcast, err)
	}

	if resp.StatusCode != http.StatusOK {
		var rejection rejectionResponse
		if json.Unmarshal(body, &rejection) == nil && rejection.Reason != "" {
			return "", fmt.Errorf("%w: %s (%s)", ErrBroadcast, rejection.Error, rejection.Reason)
		}
		return "", fmt.Errorf("%w: node returned %d: %s",
			ErrBroadcast, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	txid := strings.Trim(strings.TrimSpace(string(body)), `"`)
	return strings.TrimPrefix(txid, "0x"), nil
}
