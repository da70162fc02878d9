package pushover

import (
	"context"
	"fmt"
)

// Glance is the payload for the glances API, which updates small displays
// such as watch faces and lock screen widgets.
type Glance struct {
	// Token is the application's API token.
	Token string `json:"token" validate:"required"`

	// User is the user or group key to push the glance to.
	User string `json:"user" validate:"required"`

	// Device optionally limits the glance to a single device.
	Device string `json:"device,omitempty"`

	// Title is a description of the data, shown on larger screens.
	Title string `json:"title,omitempty" validate:"max=100"`

	// Text is the main line of data, shown on most screens.
	Text string `json:"text,omitempty" validate:"max=100"`

	// Subtext is a second line of data, shown on some screens.
	Subtext string `json:"subtext,omitempty" validate:"max=100"`

	// Count is a number shown on small screens, such as a complication.
	Count *int `json:"count,omitempty"`

	// Percent is a 0-100 value shown as a progress-style indicator.
	Percent *int `json:"percent,omitempty" validate:"omitempty,min=0,max=100"`
}

// Validate checks the glance payload before it is sent. At least one data
// field has to be set for the API to accept the update.
func (g *Glance) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("invalid glance: %w", err)
	}
	if g.Title == "" && g.Text == "" && g.Subtext == "" && g.Count == nil && g.Percent == nil {
		return fmt.Errorf("invalid glance: at least one of title, text, subtext, count, or percent is required")
	}
	return nil
}

// PushGlance updates the user's glance data.
func (c *Client) PushGlance(ctx context.Context, glance *Glance) (*Response, error) {
	if err := glance.Validate(); err != nil {
		return nil, err
	}

	raw, _, err := c.postJSON(ctx, "glances.json", glance)
	if err != nil {
		return nil, err
	}
	return &Response{Request: raw.Request, Status: raw.Status}, nil
}
