package pushover

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// Field limits documented by the Pushover API.
const (
	// MaxMessageLength is the maximum length of a message body in characters.
	MaxMessageLength = 1024

	// MaxAttachmentSize is the maximum attachment size in bytes (5 MiB).
	MaxAttachmentSize = 5 * 1024 * 1024

	// MinRetrySeconds is the minimum retry interval for emergency messages.
	MinRetrySeconds = 30

	// MaxExpireSeconds is the maximum expiration for emergency messages (3h).
	MaxExpireSeconds = 10800
)

var validate = validator.New()

// Message is the full message body to send to the Pushover API.
type Message struct {
	// Token is the application's API token.
	Token string `json:"token" validate:"required"`

	// User is the user or group key to send the message to.
	User string `json:"user" validate:"required"`

	// Message is the actual message to send.
	Message string `json:"message" validate:"required,max=1024"`

	// Device is a comma-separated list of devices to send the message to.
	// When empty the message goes to all of the user's active devices.
	Device string `json:"device,omitempty"`

	// Title for the message; the application's name is shown when empty.
	Title string `json:"title,omitempty" validate:"max=250"`

	// URL is a supplementary URL to show with the message.
	URL string `json:"url,omitempty" validate:"omitempty,url,max=512"`

	// URLTitle is a title to show for the supplementary URL. Requires URL.
	URLTitle string `json:"url_title,omitempty" validate:"max=100"`

	// Priority of the message.
	Priority Priority `json:"priority,omitempty" validate:"min=-2,max=2"`

	// Sound is the name of one of the notification sounds, see Client.Sounds.
	Sound string `json:"sound,omitempty"`

	// Timestamp is a Unix timestamp to show for the message instead of the
	// time the Pushover API received it.
	Timestamp int64 `json:"timestamp,omitempty"`

	// HTML enables HTML formatting of the message body.
	HTML NumericBool `json:"html,omitempty"`

	// Monospace displays the message in a monospace font. Mutually exclusive
	// with HTML.
	Monospace NumericBool `json:"monospace,omitempty"`

	// TTL is the number of seconds after which the message disappears from
	// the device, counted from delivery. Ignored for emergency messages.
	TTL int `json:"ttl,omitempty" validate:"min=0"`

	// Retry is how often, in seconds, the same notification is repeated for
	// an emergency message until it is acknowledged. Minimum 30.
	Retry int `json:"retry,omitempty"`

	// Expire is how long, in seconds, an emergency message keeps being
	// retried. Maximum 10800 (3 hours).
	Expire int `json:"expire,omitempty"`

	// Callback is a publicly reachable URL the Pushover servers call when an
	// emergency message is acknowledged.
	Callback string `json:"callback,omitempty" validate:"omitempty,url"`

	// Attachment is an optional image to attach to the message. Attachments
	// are uploaded as multipart form data rather than JSON.
	Attachment *Attachment `json:"-"`
}

// Attachment is an image attached to a message.
type Attachment struct {
	// Name is the filename reported to the device clients.
	Name string

	// Reader supplies the attachment bytes. At most MaxAttachmentSize bytes
	// are accepted.
	Reader io.Reader
}

// Validate checks the message against the constraints the API documents, so
// obviously broken requests fail before any network traffic happens.
func (m *Message) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	if m.URLTitle != "" && m.URL == "" {
		return fmt.Errorf("invalid message: url_title requires url")
	}
	if m.HTML && m.Monospace {
		return fmt.Errorf("invalid message: html and monospace are mutually exclusive")
	}
	if m.Priority == PriorityEmergency {
		if m.Retry < MinRetrySeconds {
			return fmt.Errorf("invalid message: emergency priority requires retry of at least %d seconds", MinRetrySeconds)
		}
		if m.Expire <= 0 || m.Expire > MaxExpireSeconds {
			return fmt.Errorf("invalid message: emergency priority requires expire between 1 and %d seconds", MaxExpireSeconds)
		}
	} else if m.Retry != 0 || m.Expire != 0 {
		return fmt.Errorf("invalid message: retry and expire are only valid for emergency priority")
	}
	if m.Attachment != nil && m.Attachment.Name == "" {
		return fmt.Errorf("invalid message: attachment requires a filename")
	}
	return nil
}

// NumericBool marshals to the 1/0 form the API uses for boolean parameters.
type NumericBool bool

func (b NumericBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (b *NumericBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "1", "true":
		*b = true
	case "0", "false", "null":
		*b = false
	default:
		return fmt.Errorf("cannot unmarshal %s into a 1/0 flag", data)
	}
	return nil
}

// formFields returns the message as string key/value pairs for the multipart
// encoding used when an attachment is present.
func (m *Message) formFields() (map[string]string, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding message: %w", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("encoding message: %w", err)
	}

	fields := make(map[string]string, len(generic))
	for key, value := range generic {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case float64:
			fields[key] = fmt.Sprintf("%d", int64(v))
		default:
			fields[key] = fmt.Sprintf("%v", v)
		}
	}
	return fields, nil
}
