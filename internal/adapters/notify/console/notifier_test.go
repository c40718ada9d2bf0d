package console_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/notify/console"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
)

func TestNotify_LogsMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := console.New(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := n.Notify(context.Background(), notification.Message{
		ID:           "p-1/v1/welcome/bob@example.com",
		Kind:         notification.KindWelcome,
		ProjectID:    "p-1",
		ProjectTitle: "Clean Water",
		Recipient:    "bob@example.com",
		Payload:      map[string]string{notification.KeyMember: "Bob"},
	})
	if err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"kind":"welcome"`, `"payload.member":"Bob"`, `"subject":"Welcome to the Project Team"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %s missing %s", out, want)
		}
	}
}
