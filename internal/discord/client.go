package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/MyteScripts/investbot/internal/domain"
)

// APIClient handles communication with the InvestBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, path)

	// Retry configuration
	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// apiError extracts the error message from a non-OK response body
func apiError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// RegisterUser registers or retrieves a user
func (c *APIClient) RegisterUser(username, discordID string) (*domain.User, error) {
	req := map[string]string{
		"discord_id": discordID,
		"username":   username,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/user/register", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var regResp struct {
		Data domain.User `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&regResp); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &regResp.Data, nil
}

// GetBalance retrieves the user's coin balance
func (c *APIClient) GetBalance(discordID string) (int, error) {
	params := url.Values{}
	params.Set("discord_id", discordID)

	path := fmt.Sprintf("/api/v1/wallet/balance?%s", params.Encode())
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, apiError(resp)
	}

	var balResp struct {
		Balance int `json:"balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&balResp); err != nil {
		return 0, fmt.Errorf("failed to decode balance: %w", err)
	}

	return balResp.Balance, nil
}

// GetCatalog retrieves the venture catalog
func (c *APIClient) GetCatalog() ([]domain.VentureType, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/venture/catalog", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var catResp struct {
		Data []domain.VentureType `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&catResp); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return catResp.Data, nil
}

// GetPortfolio retrieves the user's owned ventures
func (c *APIClient) GetPortfolio(discordID string) ([]domain.PortfolioEntry, error) {
	params := url.Values{}
	params.Set("discord_id", discordID)

	path := fmt.Sprintf("/api/v1/venture/portfolio?%s", params.Encode())
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var portResp struct {
		Data []domain.PortfolioEntry `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&portResp); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio: %w", err)
	}

	return portResp.Data, nil
}

// BuyVenture purchases a venture from the catalog
func (c *APIClient) BuyVenture(discordID, typeKey string) (*domain.Venture, error) {
	return c.postVenture("/api/v1/venture/buy", map[string]interface{}{
		"discord_id": discordID,
		"type":       typeKey,
	})
}

// CollectVenture collects accrued yield from a venture
func (c *APIClient) CollectVenture(discordID, typeKey string) (*domain.CollectResult, error) {
	req := map[string]interface{}{
		"discord_id": discordID,
		"type":       typeKey,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/venture/collect", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var colResp struct {
		Data domain.CollectResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&colResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &colResp.Data, nil
}

// MaintainVenture spends coins to restore a venture's maintenance
func (c *APIClient) MaintainVenture(discordID, typeKey string, points float64) (*domain.Venture, error) {
	return c.postVenture("/api/v1/venture/maintain", map[string]interface{}{
		"discord_id": discordID,
		"type":       typeKey,
		"points":     points,
	})
}

// RepairVenture resolves a venture's active incident
func (c *APIClient) RepairVenture(discordID, typeKey string) (*domain.Venture, error) {
	return c.postVenture("/api/v1/venture/repair", map[string]interface{}{
		"discord_id": discordID,
		"type":       typeKey,
	})
}

// SellVenture sells a venture for half its purchase cost
func (c *APIClient) SellVenture(discordID, typeKey string) (*domain.SellResult, error) {
	req := map[string]interface{}{
		"discord_id": discordID,
		"type":       typeKey,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/venture/sell", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var sellResp struct {
		Data domain.SellResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sellResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &sellResp.Data, nil
}

// postVenture handles the common POST-and-decode-venture pattern
func (c *APIClient) postVenture(path string, req map[string]interface{}) (*domain.Venture, error) {
	resp, err := c.doRequest(http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var ventResp struct {
		Data domain.Venture `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ventResp); err != nil {
		return nil, fmt.Errorf("failed to decode venture: %w", err)
	}

	return &ventResp.Data, nil
}
