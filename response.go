package pushover

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Response is the result of a successful API call.
type Response struct {
	// Request is the unique request identifier assigned by Pushover.
	Request string

	// Status as reported by the API; 1 for every successful call.
	Status int

	// Receipt identifies an emergency message so its delivery can be tracked
	// with Client.GetReceipt. Only set for emergency priority messages.
	Receipt string

	// Limits holds the application's message limits as reported in the
	// response headers, when present.
	Limits *Limits
}

// Limits describes an application's monthly message allowance.
type Limits struct {
	// Limit is the total number of messages allowed per month.
	Limit int

	// Remaining is the number of messages left in the current period.
	Remaining int

	// Reset is when the message counter resets.
	Reset time.Time
}

// APIError is an error returned by the Pushover API, carrying the HTTP status
// and the errors array from the JSON body.
type APIError struct {
	// HTTPStatus is the HTTP status code of the response.
	HTTPStatus int

	// Request is the request identifier, when the API provided one.
	Request string

	// Errors holds the API's human-readable error messages.
	Errors []string
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return "pushover: request failed with status " + strconv.Itoa(e.HTTPStatus)
	}
	return "pushover: " + strings.Join(e.Errors, ", ")
}

// apiResponse is the JSON envelope every Pushover endpoint responds with,
// including any endpoint-specific payloads.
type apiResponse struct {
	Status  int      `json:"status"`
	Request string   `json:"request"`
	Errors  []string `json:"errors"`

	// messages.json, emergency priority only
	Receipt string `json:"receipt"`

	// users/validate.json
	Devices  []string `json:"devices"`
	Licenses []string `json:"licenses"`

	// sounds.json
	Sounds map[string]string `json:"sounds"`

	// apps/limits.json
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// limitsFromHeaders parses the X-Limit-App-* headers Pushover attaches to
// message responses. Returns nil when the headers are absent.
func limitsFromHeaders(header http.Header) *Limits {
	limit, err := strconv.Atoi(header.Get("X-Limit-App-Limit"))
	if err != nil {
		return nil
	}
	remaining, err := strconv.Atoi(header.Get("X-Limit-App-Remaining"))
	if err != nil {
		return nil
	}
	reset, err := strconv.ParseInt(header.Get("X-Limit-App-Reset"), 10, 64)
	if err != nil {
		return nil
	}
	return &Limits{
		Limit:     limit,
		Remaining: remaining,
		Reset:     time.Unix(reset, 0),
	}
}
