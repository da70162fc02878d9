// Package pushover is a Go client for the Pushover.net push-notification API.
//
// To send just a message to a user, use the convenience SendSimpleMessage
// function:
//
//	_, err := pushover.SendSimpleMessage("application token", "user key", "Message")
//
// For anything more involved, build a Message and send it with a Client:
//
//	client := pushover.NewClient(0)
//	response, err := client.SendMessage(ctx, &pushover.Message{
//		Token:   "application token",
//		User:    "user key",
//		Message: "Message",
//		Title:   "Title",
//		URL:     "https://example.com",
//	})
//
// The client covers the message, glance, receipt, sound, limit, and user
// validation endpoints. Each call is a single blocking HTTP request; there is
// no retrying or queueing beyond what net/http provides.
package pushover

import "context"

// BaseURL is the base URL for the Pushover API.
const BaseURL = "https://api.pushover.net/1"

// defaultClient backs the package-level convenience functions.
var defaultClient = NewClient(0)

// SendSimpleMessage sends a plain message without constructing a Message or a
// Client yourself.
func SendSimpleMessage(token, user, message string) (*Response, error) {
	return defaultClient.SendMessage(context.Background(), &Message{
		Token:   token,
		User:    user,
		Message: message,
	})
}
