package notify

// NotificationType represents the type of notification
type NotificationType int

const (
	NotifyInfo NotificationType = iota
	NotifySuccess
	NotifyWarning
	NotifyError
)

// Notification represents a notification to be sent
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Repo    string // Optional repository reference
}

// Notifier is the interface for sending notifications
type Notifier interface {
	Send(n Notification) error
}

// NoopNotifier does nothing (for testing or disabled notifications)
type NoopNotifier struct{}

func (NoopNotifier) Send(n Notification) error { return nil }

// New returns a Slack notifier for webhookURL, or a NoopNotifier when the
// webhook is not configured.
func New(webhookURL string) Notifier {
	if webhookURL == "" {
		return NoopNotifier{}
	}
	return NewSlackNotifier(webhookURL)
}
