package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuildSlackMessage(t *testing.T) {
	msg := BuildSlackMessage(Notification{
		Title:   "Schedules for acme/api",
		Message: "Source: sources/1\n",
		Repo:    "acme/api",
	})

	if msg.Text != "Schedules for acme/api" {
		t.Errorf("Text = %q", msg.Text)
	}
	if len(msg.Attachments) != 1 {
		t.Fatalf("got %d attachments, want 1", len(msg.Attachments))
	}
	att := msg.Attachments[0]
	if att.Title != "acme/api" {
		t.Errorf("Title = %q, want acme/api", att.Title)
	}
	if att.Text != "```\nSource: sources/1\n```" {
		t.Errorf("Text = %q", att.Text)
	}
}

func TestBuildSlackMessage_Truncates(t *testing.T) {
	msg := BuildSlackMessage(Notification{Message: strings.Repeat("x", slackTextLimit+10)})
	if n := strings.Count(msg.Attachments[0].Text, "x"); n != slackTextLimit {
		t.Errorf("kept %d characters, want %d", n, slackTextLimit)
	}
}

func TestSlackNotifier_Send(t *testing.T) {
	var got SlackMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL)
	err := notifier.Send(Notification{
		Title:   "Test",
		Message: "Test message",
		Type:    NotifyInfo,
	})

	if err != nil {
		t.Errorf("Send failed: %v", err)
	}
	if got.Text != "Test" {
		t.Errorf("server received text %q, want Test", got.Text)
	}
}

func TestSlackNotifier_SendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if err := NewSlackNotifier(server.URL).Send(Notification{Title: "x"}); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestNotificationTypeColors(t *testing.T) {
	tests := []struct {
		typ  NotificationType
		want string
	}{
		{NotifySuccess, "good"},
		{NotifyWarning, "warning"},
		{NotifyError, "danger"},
		{NotifyInfo, "#439FE0"},
	}

	for _, tt := range tests {
		got := SlackColor(tt.typ)
		if got != tt.want {
			t.Errorf("SlackColor(%v) = %s, want %s", tt.typ, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	if _, ok := New("").(NoopNotifier); !ok {
		t.Error("empty webhook should give NoopNotifier")
	}
	if _, ok := New("http://example.invalid").(*SlackNotifier); !ok {
		t.Error("webhook should give *SlackNotifier")
	}
}
