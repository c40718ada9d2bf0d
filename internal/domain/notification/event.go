// Package notification defines the notification events emitted by project
// lifecycle transitions. Events are plain data: the lifecycle engine computes
// them without I/O and the application layer delivers them after commit.
package notification

import (
	"fmt"
	"time"
)

// Kind identifies what happened to a project.
type Kind string

const (
	KindProjectCreated            Kind = "project_created"
	KindProjectUpdated            Kind = "project_updated"
	KindFundingUpdated            Kind = "funding_updated"
	KindMilestoneThresholdReached Kind = "milestone_threshold_reached"
	KindProjectCompleted          Kind = "project_completed"
	KindTeamMemberAdded           Kind = "team_member_added"
	KindWelcome                   Kind = "welcome"
	KindTeamMemberRemoved         Kind = "team_member_removed"
	KindTeamChanged               Kind = "team_changed"
	KindProjectUpdatePosted       Kind = "project_update_posted"
	KindMilestoneCompleted        Kind = "milestone_completed"
	KindProjectDeleted            Kind = "project_deleted"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Subject returns the human-readable subject line for a notification of
// this kind about the named project.
func (k Kind) Subject(title string) string {
	switch k {
	case KindProjectCreated:
		return "New Project Created"
	case KindProjectUpdated:
		return "Project Updated"
	case KindFundingUpdated:
		return "Funding Update: " + title
	case KindMilestoneThresholdReached:
		return "Project Milestone Reached"
	case KindProjectCompleted:
		return "Project Completed!"
	case KindTeamMemberAdded, KindTeamChanged, KindTeamMemberRemoved:
		return "Project Team Update"
	case KindWelcome:
		return "Welcome to the Project Team"
	case KindProjectUpdatePosted:
		return "New Project Update"
	case KindMilestoneCompleted:
		return "Milestone Completed: " + title
	case KindProjectDeleted:
		return "Project Deleted"
	default:
		return "Project Notification: " + title
	}
}

// Payload keys used by the lifecycle engine.
const (
	KeyAmount    = "amount"
	KeyRaised    = "raised"
	KeyGoal      = "goal"
	KeyProgress  = "progress"
	KeyMember    = "member"
	KeyRole      = "role"
	KeyMessage   = "message"
	KeyAuthor    = "author"
	KeyMilestone = "milestone"
)

// Event is one logical notification produced by a single transition. An
// event is emitted at most once per transition; Recipients may be empty when
// nobody on the team has an email address.
type Event struct {
	Kind         Kind
	ProjectID    string
	ProjectTitle string
	// Instance is the project's InstanceID. Versions restart at 1 when a
	// project ID is reused, so the instance keeps message IDs distinct.
	Instance string
	// Version is the project version the transition was computed from. Only
	// one transition per version can commit, so (ProjectID, Version, Kind)
	// identifies the event across retries.
	Version    int64
	Recipients []string
	Payload    map[string]string
	OccurredAt time.Time
}

// Message is a single delivery of an Event to one recipient.
type Message struct {
	// ID is a deterministic idempotency key for this delivery.
	ID           string
	Kind         Kind
	ProjectID    string
	ProjectTitle string
	Recipient    string
	Payload      map[string]string
	OccurredAt   time.Time
}

// Subject returns the subject line for the message.
func (m Message) Subject() string {
	return m.Kind.Subject(m.ProjectTitle)
}

// Messages expands the event into one message per recipient, preserving
// recipient order.
func (e Event) Messages() []Message {
	out := make([]Message, 0, len(e.Recipients))
	for _, r := range e.Recipients {
		out = append(out, Message{
			ID:           e.messageID(r),
			Kind:         e.Kind,
			ProjectID:    e.ProjectID,
			ProjectTitle: e.ProjectTitle,
			Recipient:    r,
			Payload:      e.Payload,
			OccurredAt:   e.OccurredAt,
		})
	}
	return out
}

// messageID is projectID/instance/vN/kind/recipient. Events of projects
// stored before instances existed omit the instance segment.
func (e Event) messageID(recipient string) string {
	if e.Instance == "" {
		return fmt.Sprintf("%s/v%d/%s/%s", e.ProjectID, e.Version, e.Kind, recipient)
	}
	return fmt.Sprintf("%s/%s/v%d/%s/%s", e.ProjectID, e.Instance, e.Version, e.Kind, recipient)
}

// Flatten expands a batch of events into messages. Events keep their
// relative order, so a removed member's message always precedes the
// messages to the remaining team.
func Flatten(events []Event) []Message {
	var out []Message
	for _, e := range events {
		out = append(out, e.Messages()...)
	}
	return out
}

// Kinds returns the kinds of the given events in order. Handy for logging.
func Kinds(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Kind.String()
	}
	return out
}
