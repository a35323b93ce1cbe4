package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// slackTextLimit keeps attachments below Slack's message size limit.
const slackTextLimit = 3500

// SlackNotifier posts notifications to a Slack incoming webhook
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

// SlackMessage represents a Slack message payload
type SlackMessage struct {
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments,omitempty"`
}

// SlackAttachment represents a Slack message attachment
type SlackAttachment struct {
	Color    string   `json:"color"`
	Title    string   `json:"title,omitempty"`
	Text     string   `json:"text"`
	Footer   string   `json:"footer,omitempty"`
	MrkdwnIn []string `json:"mrkdwn_in,omitempty"`
}

// NewSlackNotifier creates a new Slack notifier
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SlackColor returns the Slack color for a notification type
func SlackColor(t NotificationType) string {
	switch t {
	case NotifySuccess:
		return "good"
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "danger"
	default:
		return "#439FE0"
	}
}

// BuildSlackMessage renders n as a Slack payload, with the message body in a
// preformatted block so report columns survive.
func BuildSlackMessage(n Notification) SlackMessage {
	body := n.Message
	if runes := []rune(body); len(runes) > slackTextLimit {
		body = string(runes[:slackTextLimit]) + "\n…"
	}
	return SlackMessage{
		Text: n.Title,
		Attachments: []SlackAttachment{
			{
				Color:    SlackColor(n.Type),
				Title:    n.Repo,
				Text:     "```\n" + body + "```",
				Footer:   "jules-tools",
				MrkdwnIn: []string{"text"},
			},
		},
	}
}

// Send posts a notification to Slack
func (s *SlackNotifier) Send(n Notification) error {
	payload, err := json.Marshal(BuildSlackMessage(n))
	if err != nil {
		return err
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("posting to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}

	return nil
}
