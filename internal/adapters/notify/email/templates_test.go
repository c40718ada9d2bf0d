package email

import (
	"strings"
	"testing"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
)

func TestRenderer_EveryKindRenders(t *testing.T) {
	t.Parallel()

	r, err := newRenderer()
	if err != nil {
		t.Fatalf("newRenderer() error = %v", err)
	}

	for kind := range bodies {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			body, err := r.render(notification.Message{Kind: kind, ProjectTitle: "Clean Water"})
			if err != nil {
				t.Fatalf("render() error = %v", err)
			}
			if !strings.Contains(body, "Clean Water") {
				t.Errorf("body = %q, want project title", body)
			}
			if strings.Contains(body, "no value") {
				t.Errorf("body = %q, missing payload keys should render empty", body)
			}
		})
	}
}

func TestRenderer_UnknownKindFallsBack(t *testing.T) {
	t.Parallel()

	r, err := newRenderer()
	if err != nil {
		t.Fatalf("newRenderer() error = %v", err)
	}

	body, err := r.render(notification.Message{Kind: "archived", ProjectTitle: "Clean Water"})
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if !strings.Contains(body, "archived") {
		t.Errorf("body = %q, want fallback with kind", body)
	}
}
