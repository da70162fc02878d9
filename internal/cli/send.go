package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Bauke/pushover"
	"github.com/Bauke/pushover/internal/config"
	"github.com/spf13/cobra"
)

// sendOptions holds the send command's flag values.
type sendOptions struct {
	token      string
	user       string
	devices    []string
	title      string
	url        string
	urlTitle   string
	priority   string
	sound      string
	timestamp  int64
	html       bool
	monospace  bool
	ttl        time.Duration
	retry      time.Duration
	expire     time.Duration
	callback   string
	attachment string
}

var sendOpts sendOptions

var sendCmd = &cobra.Command{
	Use:     "send <message>",
	Aliases: []string{"send-message"},
	Short:   "Send a message with Pushover",
	GroupID: GroupMessages,
	Long: `Send a message through the Pushover API.

The message body is the only positional argument. Pass "-" to read the body
from standard input instead.`,
	Example: `  # Send a simple message
  pushover send "Backup finished"

  # Titled message to specific devices
  pushover send "Build passed" --title CI --device phone --device tablet

  # Emergency message, retried every minute for at most two hours
  pushover send "Database is down" --priority emergency --retry 1m --expire 2h

  # Attach an image
  pushover send "Latest graph" --attachment ./graph.png

  # Read the message from stdin
  df -h | pushover send -`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func init() {
	flags := sendCmd.Flags()
	flags.StringVarP(&sendOpts.token, "token", "t", "", "The application API token")
	flags.StringVarP(&sendOpts.user, "user", "u", "", "The user/group key to send the message to")
	flags.StringArrayVar(&sendOpts.devices, "device", nil, "A device to send the message to (repeatable)")
	flags.StringVar(&sendOpts.title, "title", "", "The title to use for the message")
	flags.StringVar(&sendOpts.url, "url", "", "A supplementary URL to include with the message")
	flags.StringVar(&sendOpts.urlTitle, "url-title", "", "The title to use for the supplementary URL")
	flags.StringVarP(&sendOpts.priority, "priority", "p", "", "The message's priority (lowest, low, normal, high, emergency, or -2..2)")
	flags.StringVar(&sendOpts.sound, "sound", "", "The sound to play with the notification")
	flags.Int64Var(&sendOpts.timestamp, "timestamp", 0, "A Unix timestamp to use for the message instead of the time it is received")
	flags.BoolVar(&sendOpts.html, "html", false, "Enable HTML formatting of the message body")
	flags.BoolVar(&sendOpts.monospace, "monospace", false, "Display the message in a monospace font")
	flags.DurationVar(&sendOpts.ttl, "ttl", 0, "How long the message stays on the device after delivery")
	flags.DurationVar(&sendOpts.retry, "retry", 0, "Retry interval for emergency messages (minimum 30s)")
	flags.DurationVar(&sendOpts.expire, "expire", 0, "How long emergency messages keep being retried (maximum 3h)")
	flags.StringVar(&sendOpts.callback, "callback", "", "URL the Pushover servers call when an emergency message is acknowledged")
	flags.StringVarP(&sendOpts.attachment, "attachment", "a", "", "Path of an image to attach to the message")

	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	body := args[0]
	if body == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading message from stdin: %w", err)
		}
		body = strings.TrimRight(string(raw), "\n")
	}

	message, err := buildMessage(sendOpts, body, cfg)
	if err != nil {
		return err
	}

	if sendOpts.attachment != "" {
		file, err := openAttachment(sendOpts.attachment)
		if err != nil {
			return err
		}
		defer file.Close()
		message.Attachment = &pushover.Attachment{
			Name:   filepath.Base(sendOpts.attachment),
			Reader: file,
		}
	}

	// Catch malformed messages here so they exit as a usage error instead
	// of a generic failure.
	if err := message.Validate(); err != nil {
		return withExitCode(ExitInvalidArguments, err)
	}

	client := apiClient(cfg)
	stop := startSpinner("Sending message")
	response, err := client.SendMessage(cmd.Context(), message)
	stop()
	if err != nil {
		return err
	}

	printSuccess("Message sent")
	if response.Receipt != "" {
		fmt.Printf("Receipt: %s\n", response.Receipt)
	}
	if verbose {
		printDetail("request: %s", response.Request)
		if response.Limits != nil {
			printDetail("messages remaining this month: %d of %d",
				response.Limits.Remaining, response.Limits.Limit)
		}
	}
	return nil
}

// openAttachment opens the attachment file for reading.
func openAttachment(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, withExitCode(ExitInvalidArguments, fmt.Errorf("opening attachment: %w", err))
	}
	return file, nil
}

// buildMessage maps the command flags and configuration defaults onto a
// Message. Flags win over configured defaults.
func buildMessage(opts sendOptions, body string, cfg *config.Configuration) (*pushover.Message, error) {
	token, err := resolveToken(opts.token, cfg)
	if err != nil {
		return nil, err
	}
	user, err := resolveUser(opts.user, cfg)
	if err != nil {
		return nil, err
	}

	// Pushover expects devices as a comma-separated list.
	device := cfg.Device
	if len(opts.devices) > 0 {
		device = strings.Join(opts.devices, ",")
	}

	sound := opts.sound
	if sound == "" {
		sound = cfg.Sound
	}

	priorityName := opts.priority
	if priorityName == "" {
		priorityName = cfg.Priority
	}
	priority := pushover.PriorityNormal
	if priorityName != "" {
		priority, err = pushover.ParsePriority(priorityName)
		if err != nil {
			return nil, withExitCode(ExitInvalidArguments, err)
		}
	}

	return &pushover.Message{
		Token:     token,
		User:      user,
		Message:   body,
		Device:    device,
		Title:     opts.title,
		URL:       opts.url,
		URLTitle:  opts.urlTitle,
		Priority:  priority,
		Sound:     sound,
		Timestamp: opts.timestamp,
		HTML:      pushover.NumericBool(opts.html),
		Monospace: pushover.NumericBool(opts.monospace),
		TTL:       int(opts.ttl.Seconds()),
		Retry:     int(opts.retry.Seconds()),
		Expire:    int(opts.expire.Seconds()),
		Callback:  opts.callback,
	}, nil
}
