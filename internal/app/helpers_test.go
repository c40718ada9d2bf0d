package app

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/lifecycle"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testEngine() *lifecycle.Engine {
	return lifecycle.New(
		lifecycle.WithClock(func() time.Time { return testNow }),
		lifecycle.WithAdminRecipient("admin@example.com"),
	)
}

// settle waits for every notification batch the service handed off.
func settle(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Wait(ctx); err != nil {
		t.Fatalf("notification batches did not finish: %v", err)
	}
}

func validProject(id string, goal, raised float64) project.Project {
	return project.Project{
		ProjectID:       id,
		Title:           "Clean Water",
		Description:     "Wells for rural villages",
		LongDescription: "Drilling and maintaining wells.",
		Category:        project.CategoryEnvironment,
		Goal:            goal,
		Raised:          raised,
		Status:          project.DeriveStatus(raised, goal),
		Location:        "Kenya",
		Duration:        "6",
		Impact:          project.ImpactHigh,
		IsActive:        true,
		Version:         1,
		Wallets: project.Wallets{
			Bitcoin: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			Near:    "cleanwater.near",
			Lethal:  "0x52908400098527886E0F7030069857D2E4169EE7",
		},
		Team: []project.TeamMember{
			{Name: "Ada", Role: "Lead", Email: "ada@example.com"},
			{Name: "Bob", Role: "Engineer", Email: "bob@example.com"},
		},
		Milestones: []project.Milestone{{Title: "Survey", Status: project.MilestoneUpcoming}},
		CreatedAt:  testNow.Add(-time.Hour),
		UpdatedAt:  testNow.Add(-time.Hour),
	}
}

// recordingNotifier is a concurrency-safe ports.Notifier that remembers
// every message in delivery order.
type recordingNotifier struct {
	mu   sync.Mutex
	msgs []notification.Message
	fail map[string]error
}

func (n *recordingNotifier) Notify(_ context.Context, msg notification.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
	if err, ok := n.fail[msg.Recipient]; ok {
		return err
	}
	return nil
}

func (n *recordingNotifier) messages() []notification.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification.Message(nil), n.msgs...)
}

func (n *recordingNotifier) count(kind notification.Kind) int {
	c := 0
	for _, m := range n.messages() {
		if m.Kind == kind {
			c++
		}
	}
	return c
}

// countingRecorder tallies Recorder calls.
type countingRecorder struct {
	mu            sync.Mutex
	mutations     map[string]int
	retries       int
	notifications map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{mutations: map[string]int{}, notifications: map[string]int{}}
}

func (r *countingRecorder) Mutation(_ context.Context, op, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations[op+"/"+result]++
}

func (r *countingRecorder) ConflictRetry(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retries++
}

func (r *countingRecorder) Notification(_ context.Context, kind, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[kind+"/"+result]++
}
