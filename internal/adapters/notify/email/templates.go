package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
)

// bodies holds the HTML body for each notification kind. Payload values are
// addressed by their notification.Key* names.
var bodies = map[notification.Kind]string{
	notification.KindProjectCreated: `<h2>New project: {{.Title}}</h2>
<p>Goal {{.P.goal}}, raised so far {{.P.raised}}.</p>`,

	notification.KindProjectUpdated: `<h2>{{.Title}} was updated</h2>
{{with .P.milestone}}<p>New milestone: {{.}}</p>{{end}}
<p>Funding: {{.P.raised}} of {{.P.goal}}.</p>`,

	notification.KindFundingUpdated: `<h2>{{.Title}} received {{.P.amount}}</h2>
<p>Raised {{.P.raised}} of {{.P.goal}} ({{.P.progress}}%).</p>`,

	notification.KindMilestoneThresholdReached: `<h2>{{.Title}} is {{.P.progress}}% funded</h2>
<p>The project has passed 75% of its goal: {{.P.raised}} of {{.P.goal}}.</p>`,

	notification.KindProjectCompleted: `<h2>{{.Title}} is fully funded!</h2>
<p>Final total: {{.P.raised}} against a goal of {{.P.goal}}. Thank you.</p>`,

	notification.KindTeamMemberAdded: `<h2>{{.Title}} has a new team member</h2>
<p>{{.P.member}} joined as {{.P.role}}.</p>`,

	notification.KindWelcome: `<h2>Welcome to {{.Title}}, {{.P.member}}</h2>
<p>You have been added to the team as {{.P.role}}.</p>`,

	notification.KindTeamMemberRemoved: `<h2>You have left {{.Title}}</h2>
<p>{{.P.member}}, you are no longer on the team.</p>`,

	notification.KindTeamChanged: `<h2>{{.Title}} team update</h2>
<p>{{.P.member}} ({{.P.role}}) has left the team.</p>`,

	notification.KindProjectUpdatePosted: `<h2>{{.Title}}: new update from {{.P.author}}</h2>
<p>{{.P.message}}</p>`,

	notification.KindMilestoneCompleted: `<h2>{{.Title}}: milestone completed</h2>
<p>{{.P.milestone}} is done.</p>`,

	notification.KindProjectDeleted: `<h2>{{.Title}} has been deleted</h2>
<p>The project and its history are no longer available.</p>`,
}

const fallbackBody = `<h2>{{.Title}}</h2><p>{{.Kind}}</p>`

// view is the data passed to every body template.
type view struct {
	Title     string
	Kind      string
	Recipient string
	P         map[string]string
}

// renderer renders message bodies from the per-kind templates.
type renderer struct {
	tmpl *template.Template
}

func newRenderer() (*renderer, error) {
	root := template.New("fallback").Option("missingkey=zero")
	if _, err := root.Parse(fallbackBody); err != nil {
		return nil, fmt.Errorf("parsing fallback template: %w", err)
	}
	for kind, body := range bodies {
		if _, err := root.New(kind.String()).Parse(body); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", kind, err)
		}
	}
	return &renderer{tmpl: root}, nil
}

func (r *renderer) render(msg notification.Message) (string, error) {
	name := msg.Kind.String()
	if r.tmpl.Lookup(name) == nil {
		name = "fallback"
	}

	payload := msg.Payload
	if payload == nil {
		payload = map[string]string{}
	}

	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, name, view{
		Title:     msg.ProjectTitle,
		Kind:      msg.Kind.String(),
		Recipient: msg.Recipient,
		P:         payload,
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", msg.Kind, err)
	}
	return buf.String(), nil
}
