// Package recordsapi holds the HTTP clients for the portal's upstream
// collaborators: the medical records backend and the library catalogue.
// All decisions about workflow transitions and persistence live there;
// the portal only requests them.
package recordsapi

import (
	"bytes"
	"context"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type restClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func newRestClient(baseURL string, logger *zap.Logger) *restClient {
	return &restClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Log:        logger,
	}
}

func (c *restClient) doJSON(ctx context.Context, method, path, token string, body interface{}) (*responses.Envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	return c.do(req, token)
}

func (c *restClient) doForm(ctx context.Context, method, path, token string, form url.Values) (*responses.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	return c.do(req, token)
}

// do sends the request and normalizes the response envelope. A "no
// records found" answer is surfaced as a successful, empty envelope;
// anything else the backend refuses becomes a classified error.
func (c *restClient) do(req *http.Request, token string) (*responses.Envelope, error) {
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("recordsapi request failed",
			zap.String("url", req.URL.String()),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadResponseBody(err)
	}

	envelope := new(responses.Envelope)
	if err := json.Unmarshal(bodyBytes, envelope); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}

	if envelope.NoRecords() {
		envelope.Success = true
		envelope.Data = nil
		return envelope, nil
	}

	if !envelope.Success {
		code := resp.StatusCode
		if code < constvars.StatusBadRequest {
			code = constvars.StatusBadRequest
		}
		c.Log.Warn("recordsapi rejected request",
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode),
			zap.String("message", envelope.Message),
		)
		return nil, exceptions.ErrBackendRejected(nil, code, envelope.Message)
	}

	return envelope, nil
}
