// Package plurkapi implements the signed request pipeline against the
// Plurk API: URL construction, body encoding, multipart uploads, the HTTP
// exchange, and response normalization by content type.
package plurkapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/time/rate"

	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
	"github.com/plurklab/plurk-cli/internal/logger"
)

// DefaultBaseURL is the production Plurk API base.
const DefaultBaseURL = "https://www.plurk.com/"

// DefaultRequestRate throttles outgoing calls. Plurk has no published hard
// limit for OAuth clients, so this stays well clear of trouble.
const DefaultRequestRate = 5.0

// maxErrorBody caps how much of an error response body is kept for the
// error message.
const maxErrorBody = 512

// Ensure Client implements the interface.
var _ driven.API = (*Client)(nil)

// Config holds optional pipeline settings.
type Config struct {
	// BaseURL overrides the provider base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// RequestsPerSecond overrides the proactive throttle rate.
	// Defaults to DefaultRequestRate.
	RequestsPerSecond float64
}

// Client is the request pipeline. It never mutates token state; the pair to
// sign with is passed in per call.
type Client struct {
	baseURL string
	signer  driven.Signer
	limiter *rate.Limiter
}

// New creates a pipeline over the given signer.
func New(signer driven.Signer, cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestRate
	}

	return &Client{
		baseURL: base,
		signer:  signer,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Call issues a signed POST to the relative endpoint and returns the parsed
// response. With files it sends a multipart body; otherwise the data is
// form-encoded and participates in the signature.
func (c *Client) Call(
	ctx context.Context,
	endpoint string,
	data map[string]string,
	files map[string]string,
	token domain.TokenPair,
) (domain.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", errors.Join(domain.ErrNetwork, err))
	}

	uri, err := url.JoinPath(c.baseURL, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: joining %q onto base URL: %v", domain.ErrInvalidInput, endpoint, err)
	}

	logger.Debug("POST %s (data=%d files=%d)", uri, len(data), len(files))

	var resp *http.Response
	if len(files) > 0 {
		resp, err = c.postMultipart(ctx, uri, data, files, token)
	} else {
		resp, err = c.signer.PostForm(ctx, uri, data, token)
	}
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s returned %s: %s",
			domain.ErrNetwork, endpoint, resp.Status, strings.TrimSpace(string(body)))
	}

	return parseResponse(resp)
}

// postMultipart uploads files as a multipart body through a signing client.
// Each file is streamed from its path and closed before the request goes
// out, on success and on every error path.
func (c *Client) postMultipart(
	ctx context.Context,
	uri string,
	data map[string]string,
	files map[string]string,
	token domain.TokenPair,
) (*http.Response, error) {
	body, contentType, err := encodeMultipart(data, files)
	if err != nil {
		return nil, err
	}

	client, err := c.signer.Client(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthorization, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, body)
	if err != nil {
		return nil, fmt.Errorf("%w: building upload request: %v", domain.ErrInvalidInput, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload POST %s: %w", uri, errors.Join(domain.ErrNetwork, err))
	}
	return resp, nil
}

// encodeMultipart builds the multipart body: one file part per entry in
// files, then the plain data fields.
func encodeMultipart(data map[string]string, files map[string]string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for field, path := range files {
		if err := appendFilePart(writer, field, path); err != nil {
			writer.Close()
			return nil, "", err
		}
	}
	for key, value := range data {
		if err := writer.WriteField(key, value); err != nil {
			writer.Close()
			return nil, "", fmt.Errorf("writing field %q: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

// appendFilePart streams one file into the multipart writer. The handle is
// scoped to this call and released on all exit paths.
func appendFilePart(writer *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(field, file.Name())
	if err != nil {
		return fmt.Errorf("creating part %q: %w", field, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copying %s: %w", path, err)
	}
	return nil
}

// parseResponse normalizes the response body by its declared content type.
// The provider only ever answers with a JSON object or URL-encoded pairs;
// anything else is a protocol error.
func parseResponse(resp *http.Response) (domain.Response, error) {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable content type %q", domain.ErrProtocol, resp.Header.Get("Content-Type"))
	}

	switch mediaType {
	case "application/json":
		var out domain.Response
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("%w: decoding JSON body: %v", domain.ErrProtocol, err)
		}
		return out, nil

	case "text/html", "application/x-www-form-urlencoded":
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", errors.Join(domain.ErrNetwork, err))
		}
		values, err := url.ParseQuery(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, fmt.Errorf("%w: parsing form body: %v", domain.ErrProtocol, err)
		}
		return domain.ResponseFromValues(values), nil

	default:
		return nil, fmt.Errorf("%w: unexpected content type %q", domain.ErrProtocol, mediaType)
	}
}
