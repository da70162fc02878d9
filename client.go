package pushover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 30 * time.Second

// userAgent identifies this library to the Pushover servers.
const userAgent = "pushover-go-client"

// Client talks to the Pushover API. The zero timeout in NewClient selects
// DefaultTimeout. A Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client with the given HTTP timeout. A timeout of 0
// selects DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    BaseURL,
	}
}

// SetBaseURL overrides the API base URL. This is intended for testing and for
// proxies that mirror the Pushover API.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// SendMessage sends the message to the Pushover API. Messages are validated
// locally first; messages with an attachment are uploaded as multipart form
// data, everything else as JSON. Emergency messages return a receipt in the
// response.
func (c *Client) SendMessage(ctx context.Context, message *Message) (*Response, error) {
	if err := message.Validate(); err != nil {
		return nil, err
	}

	var (
		raw  *apiResponse
		resp *http.Response
		err  error
	)
	if message.Attachment != nil {
		raw, resp, err = c.postMultipart(ctx, "messages.json", message)
	} else {
		raw, resp, err = c.postJSON(ctx, "messages.json", message)
	}
	if err != nil {
		return nil, err
	}

	return &Response{
		Request: raw.Request,
		Status:  raw.Status,
		Receipt: raw.Receipt,
		Limits:  limitsFromHeaders(resp.Header),
	}, nil
}

// Validation is the result of a user key check.
type Validation struct {
	// Devices are the user's active device names.
	Devices []string

	// Licenses are the platforms the user is licensed on.
	Licenses []string
}

// ValidateUser checks whether a user or group key is valid for the
// application token. A non-empty device additionally checks that the device
// is registered for that user.
func (c *Client) ValidateUser(ctx context.Context, token, user, device string) (*Validation, error) {
	payload := map[string]string{"token": token, "user": user}
	if device != "" {
		payload["device"] = device
	}

	raw, _, err := c.postJSON(ctx, "users/validate.json", payload)
	if err != nil {
		return nil, err
	}
	return &Validation{Devices: raw.Devices, Licenses: raw.Licenses}, nil
}

// Sounds returns the available notification sounds as a name to description
// map. The sound name is what Message.Sound expects.
func (c *Client) Sounds(ctx context.Context, token string) (map[string]string, error) {
	raw, _, err := c.getJSON(ctx, "sounds.json?token="+url.QueryEscape(token))
	if err != nil {
		return nil, err
	}
	return raw.Sounds, nil
}

// AppLimits returns the message limits for an application token.
func (c *Client) AppLimits(ctx context.Context, token string) (*Limits, error) {
	raw, _, err := c.getJSON(ctx, "apps/limits.json?token="+url.QueryEscape(token))
	if err != nil {
		return nil, err
	}
	return &Limits{
		Limit:     raw.Limit,
		Remaining: raw.Remaining,
		Reset:     time.Unix(raw.Reset, 0),
	}, nil
}

// postJSON sends payload as a JSON body and decodes the response envelope.
func (c *Client) postJSON(ctx context.Context, path string, payload any) (*apiResponse, *http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(path), bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, _, resp, err := c.do(req)
	return raw, resp, err
}

// postMultipart sends the message as multipart form data with the attachment
// as a file part, which is the only encoding the API accepts attachments in.
func (c *Client) postMultipart(ctx context.Context, path string, message *Message) (*apiResponse, *http.Response, error) {
	fields, err := message.formFields()
	if err != nil {
		return nil, nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, nil, fmt.Errorf("encoding form field %s: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile("attachment", message.Attachment.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding attachment: %w", err)
	}
	written, err := io.Copy(part, io.LimitReader(message.Attachment.Reader, MaxAttachmentSize+1))
	if err != nil {
		return nil, nil, fmt.Errorf("reading attachment: %w", err)
	}
	if written > MaxAttachmentSize {
		return nil, nil, fmt.Errorf("attachment exceeds %d bytes", MaxAttachmentSize)
	}
	if err := writer.Close(); err != nil {
		return nil, nil, fmt.Errorf("encoding attachment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(path), &body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	raw, _, resp, err := c.do(req)
	return raw, resp, err
}

// getJSON performs a GET request and decodes the response envelope.
func (c *Client) getJSON(ctx context.Context, path string) (*apiResponse, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL(path), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	raw, _, resp, err := c.do(req)
	return raw, resp, err
}

// getJSONBody performs a GET request and returns the raw body after the
// envelope check, for endpoints whose payload lives beside the envelope.
func (c *Client) getJSONBody(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	_, body, _, err := c.do(req)
	return body, err
}

// do executes the request and maps the envelope's status and errors array
// onto an *APIError when the call was rejected.
func (c *Client) do(req *http.Request) (*apiResponse, []byte, *http.Response, error) {
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(rawBody, &raw); err != nil {
		// 5xx responses are not guaranteed to carry the JSON envelope.
		return nil, nil, nil, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}

	if len(raw.Errors) > 0 || raw.Status != 1 || resp.StatusCode != http.StatusOK {
		return nil, nil, nil, &APIError{
			HTTPStatus: resp.StatusCode,
			Request:    raw.Request,
			Errors:     raw.Errors,
		}
	}

	return &raw, rawBody, resp, nil
}

// apiURL joins a path with the API base URL.
func (c *Client) apiURL(path string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, path)
}
