// Package lifecycle holds the project transition rules. Every operation is a
// pure function of a project snapshot and a requested mutation: it returns
// the next snapshot and the notification events the mutation implies, and it
// never performs I/O or mutates its input.
//
// Status is recomputed from the raised/goal ratio on every transition.
// Threshold and completion events are edge-triggered: they fire only when
// the ratio crosses the boundary within the operation being applied, so a
// retried or repeated contribution above the boundary never re-notifies.
package lifecycle

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// ThresholdRatio is the funding ratio at which MilestoneThresholdReached fires.
const ThresholdRatio = 0.75

// systemAuthor signs log entries the engine appends on its own.
const systemAuthor = "system"

// Clock returns the current time. Injected so transitions are deterministic
// under test.
type Clock func() time.Time

// Engine applies lifecycle transitions. It is stateless apart from its
// configuration and is safe for concurrent use.
type Engine struct {
	now         Clock
	adminEmail  string
	newInstance func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.now = c
		}
	}
}

// WithAdminRecipient sets the address that is told about newly created
// projects. An empty address disables that notification's delivery.
func WithAdminRecipient(email string) Option {
	return func(e *Engine) {
		e.adminEmail = email
	}
}

// WithInstanceIDs overrides how Create assigns project instance IDs.
func WithInstanceIDs(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newInstance = fn
		}
	}
}

// New creates an Engine. The default clock is time.Now in UTC and instance
// IDs are random UUIDs.
func New(opts ...Option) *Engine {
	e := &Engine{
		now:         func() time.Time { return time.Now().UTC() },
		newInstance: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of a successful transition.
type Result struct {
	Project project.Project
	Events  []notification.Event
	// Noop is set when the requested mutation leaves the project unchanged
	// and nothing needs to be persisted.
	Noop bool
}

// event builds a notification for the snapshot the transition started from.
func (e *Engine) event(from *project.Project, kind notification.Kind, recipients []string, payload map[string]string) notification.Event {
	if recipients == nil {
		recipients = []string{}
	}
	return notification.Event{
		Kind:         kind,
		ProjectID:    from.ProjectID,
		ProjectTitle: from.Title,
		Instance:     from.InstanceID,
		Version:      from.Version,
		Recipients:   recipients,
		Payload:      payload,
		OccurredAt:   e.now(),
	}
}

// fundingEvents re-derives next's status and returns the edge-triggered
// threshold and completion events for the move from prev to next. Both
// sides are recomputed from their ratios so a stale stored status on prev
// cannot suppress or duplicate an event.
func (e *Engine) fundingEvents(prev, next *project.Project) []notification.Event {
	next.Status = project.DeriveStatus(next.Raised, next.Goal)

	var events []notification.Event
	payload := fundingPayload(next)

	if prev.FundingRatio() < ThresholdRatio && next.FundingRatio() >= ThresholdRatio {
		events = append(events, e.event(prev, notification.KindMilestoneThresholdReached, next.Recipients(), payload))
	}

	prevStatus := project.DeriveStatus(prev.Raised, prev.Goal)
	if prevStatus != project.StatusCompleted && next.Status == project.StatusCompleted {
		events = append(events, e.event(prev, notification.KindProjectCompleted, next.Recipients(), payload))
	}

	return events
}

func fundingPayload(p *project.Project) map[string]string {
	return map[string]string{
		notification.KeyRaised:   formatAmount(p.Raised),
		notification.KeyGoal:     formatAmount(p.Goal),
		notification.KeyProgress: strconv.FormatFloat(p.Progress(), 'f', 1, 64),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// touch stamps the snapshot's modification time.
func (e *Engine) touch(p *project.Project) {
	p.UpdatedAt = e.now()
}
