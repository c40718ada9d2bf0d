package lifecycle

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// AddTeamMember appends a member with JoinedAt set to now. Names are
// matched case-sensitively; a name already on the team yields
// domain.ErrDuplicateMember. The existing team is told via TeamMemberAdded
// and the new member, when reachable, receives a Welcome.
func (e *Engine) AddTeamMember(p project.Project, m project.TeamMember) (Result, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))

	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	if p.Member(m.Name) >= 0 {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrDuplicateMember, m.Name)
	}

	existing := p.Recipients()

	next := p.Clone()
	m.JoinedAt = e.now()
	next.Team = append(next.Team, m)
	e.touch(&next)

	payload := map[string]string{
		notification.KeyMember: m.Name,
		notification.KeyRole:   m.Role,
	}

	events := []notification.Event{
		e.event(&p, notification.KindTeamMemberAdded, existing, payload),
	}
	if m.Email != "" {
		events = append(events, e.event(&p, notification.KindWelcome, []string{m.Email}, payload))
	}

	return Result{Project: next, Events: events}, nil
}

// RemoveTeamMember removes the named member. A missing name yields
// domain.ErrMemberNotFound and no snapshot. The removed member is notified
// first; the remaining team receives TeamChanged as a separate event.
func (e *Engine) RemoveTeamMember(p project.Project, name string) (Result, error) {
	idx := p.Member(name)
	if idx < 0 {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrMemberNotFound, name)
	}

	removed := p.Team[idx]

	next := p.Clone()
	next.Team = slices.Delete(next.Team, idx, idx+1)
	e.touch(&next)

	payload := map[string]string{
		notification.KeyMember: removed.Name,
		notification.KeyRole:   removed.Role,
	}

	var removedTo []string
	if removed.Email != "" {
		removedTo = []string{removed.Email}
	}

	events := []notification.Event{
		e.event(&p, notification.KindTeamMemberRemoved, removedTo, payload),
		e.event(&p, notification.KindTeamChanged, next.Recipients(), payload),
	}

	return Result{Project: next, Events: events}, nil
}
