package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"clipshare/internal/app/client/config"
	"clipshare/internal/domain/clipboard"

	"golang.org/x/exp/slog"
)

const userAgent = "Clipshare-Client/1.0"

// HTTPClient talks to the clipshare HTTP API.
type HTTPClient struct {
	client     *http.Client
	log        *slog.Logger
	baseURL    string
	adminToken string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		log:        log,
		baseURL:    cfg.BaseURL(),
		adminToken: cfg.AdminToken,
	}
}

// HealthCheck проверяет доступность сервера
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	return h.call(ctx, http.MethodGet, "/health", nil, nil, false)
}

func (h *HTTPClient) Paste(ctx context.Context, content string) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	err := h.call(ctx, http.MethodPost, "/clipboard", map[string]string{"content": content}, &resp, false)
	return resp.ID, err
}

func (h *HTTPClient) List(ctx context.Context, page, limit int) (clipboard.ListResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var resp clipboard.ListResponse
	err := h.call(ctx, http.MethodGet, "/clipboard?"+q.Encode(), nil, &resp, false)
	return resp, err
}

func (h *HTTPClient) Get(ctx context.Context, id string) (clipboard.Entry, error) {
	var entry clipboard.Entry
	err := h.call(ctx, http.MethodGet, "/clipboard/"+url.PathEscape(id), nil, &entry, false)
	return entry, err
}

// Delete removes one entry and returns the server's message.
func (h *HTTPClient) Delete(ctx context.Context, id string) (string, error) {
	return h.delete(ctx, url.Values{"id": {id}})
}

func (h *HTTPClient) DeleteAll(ctx context.Context) (string, error) {
	return h.delete(ctx, url.Values{"deleteAll": {"true"}})
}

func (h *HTTPClient) delete(ctx context.Context, q url.Values) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	err := h.call(ctx, http.MethodDelete, "/clipboard?"+q.Encode(), nil, &resp, false)
	return resp.Message, err
}

func (h *HTTPClient) LogCopy(ctx context.Context, contentID, content string) error {
	body := map[string]string{"contentId": contentID, "content": content}
	return h.call(ctx, http.MethodPost, "/log-copy", body, nil, false)
}

// VerifyPasscode reports whether the server accepted passcode. A rejection is
// not an error.
func (h *HTTPClient) VerifyPasscode(ctx context.Context, passcode string) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	err := h.call(ctx, http.MethodPost, "/verify-passcode", map[string]string{"passcode": passcode}, &resp, false)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return false, nil
		}
		return false, err
	}
	return resp.Valid, nil
}

func (h *HTTPClient) AuditLogs(ctx context.Context, logType string, limit int) (AuditLogs, error) {
	q := url.Values{}
	q.Set("type", logType)
	q.Set("limit", strconv.Itoa(limit))

	var logs AuditLogs
	err := h.call(ctx, http.MethodGet, "/admin/logs?"+q.Encode(), nil, &logs, true)
	return logs, err
}

func (h *HTTPClient) call(ctx context.Context, method, path string, body, result any, admin bool) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+h.adminToken)
	}

	h.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	return h.parseResponse(resp, result)
}

func (h *HTTPClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode >= 400 {
		se := &StatusError{Code: resp.StatusCode}
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			se.Message = errResp.Error
		}
		return se
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}
