package notification

import (
	"errors"
	"os"
	"testing"

	"github.com/zhubert/readthrough/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func withMock(t *testing.T, mock *mockNotification) {
	t.Helper()
	orig := notify
	notify = mock.notify
	t.Cleanup(func() { notify = orig })
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{"successful notification", "Test Title", "Test Message", nil, false},
		{"notification error", "Test Title", "Test Message", errors.New("notification failed"), true},
		{"empty title", "", "Message with empty title", nil, false},
		{"empty message", "Title", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			withMock(t, mock)

			err := Send(tt.title, tt.message)
			if (err != nil) != tt.expectError {
				t.Errorf("Send() error = %v, expectError %v", err, tt.expectError)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title || mock.calls[0].message != tt.message {
				t.Errorf("notify called with (%q, %q)", mock.calls[0].title, mock.calls[0].message)
			}
		})
	}
}

func TestChecklistCompleted(t *testing.T) {
	mock := &mockNotification{}
	withMock(t, mock)

	if err := ChecklistCompleted("Safety", ""); err != nil {
		t.Fatal(err)
	}
	if err := ChecklistCompleted("Safety", "Allt búið!"); err != nil {
		t.Fatal(err)
	}

	if len(mock.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.calls))
	}
	if mock.calls[0].title != AppName {
		t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
	}
	if mock.calls[0].message != "Safety is complete" {
		t.Errorf("default message = %q", mock.calls[0].message)
	}
	if mock.calls[1].message != "Allt búið!" {
		t.Errorf("translated message = %q", mock.calls[1].message)
	}
}
