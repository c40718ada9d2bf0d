package project

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
)

// Validation messages shared by the entity validators.
const (
	msgRequired = "is required"
	msgTooLong  = "must be at most %d characters"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

var (
	bitcoinPattern = regexp.MustCompile(`^(bc1|[13])[a-zA-HJ-NP-Z0-9]{25,39}$`)
	nearPattern    = regexp.MustCompile(`^[a-z0-9_-]{2,64}\.near$`)
	lethalPattern  = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	emailPattern   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	imagePattern   = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)$`)
)

// Project is the aggregate root of the lifecycle engine. It is mutated only
// through the transitions in domain/lifecycle.
type Project struct {
	ProjectID string
	// InstanceID is assigned on create and never changes. It tells this
	// project apart from an earlier one deleted under the same ProjectID.
	InstanceID      string
	Title           string
	Description     string
	LongDescription string
	Category        Category
	Goal            float64
	Raised          float64
	Location        string
	Duration        string
	Impact          Impact
	Date            *time.Time
	Status          Status
	Client          string
	Tags            []string
	Team            []TeamMember
	Milestones      []Milestone
	Wallets         Wallets
	Supporters      int
	Images          []string
	Updates         []Update
	IsActive        bool
	EndDate         *time.Time
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TeamMember is a named participant. Names are unique within a project.
type TeamMember struct {
	Name     string
	Role     string
	Email    string
	JoinedAt time.Time
}

// Milestone is a tracked deliverable of the project.
type Milestone struct {
	Title       string
	Status      MilestoneStatus
	Description string
	DueDate     *time.Time
	CompletedAt *time.Time
}

// Update is an entry in the append-only project log.
type Update struct {
	Message string
	Author  string
	Type    UpdateType
	Date    time.Time
}

// Wallets holds the payout addresses. They are format-checked only.
type Wallets struct {
	Bitcoin string
	Near    string
	Lethal  string
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	switch title := strings.TrimSpace(p.Title); {
	case title == "":
		fields["title"] = msgRequired
	case len(title) > maxTitleLen:
		fields["title"] = fmt.Sprintf(msgTooLong, maxTitleLen)
	}
	switch desc := strings.TrimSpace(p.Description); {
	case desc == "":
		fields["description"] = msgRequired
	case len(desc) > maxDescriptionLen:
		fields["description"] = fmt.Sprintf(msgTooLong, maxDescriptionLen)
	}
	if strings.TrimSpace(p.LongDescription) == "" {
		fields["long_description"] = msgRequired
	}
	if !p.Category.IsValid() {
		fields["category"] = fmt.Sprintf("invalid: %q", p.Category)
	}
	if p.Goal < 0 || math.IsNaN(p.Goal) || math.IsInf(p.Goal, 0) {
		fields["goal"] = "must be a non-negative number"
	}
	if p.Raised < 0 || math.IsNaN(p.Raised) || math.IsInf(p.Raised, 0) {
		fields["raised"] = "must be a non-negative number"
	}
	if strings.TrimSpace(p.Location) == "" {
		fields["location"] = msgRequired
	}
	if strings.TrimSpace(p.Duration) == "" {
		fields["duration"] = msgRequired
	}
	if !p.Impact.IsValid() {
		fields["impact"] = fmt.Sprintf("invalid: %q", p.Impact)
	}
	if p.Supporters < 0 {
		fields["supporters"] = "must not be negative"
	}

	p.Wallets.validate(fields)
	validateImages(p.Images, fields)
	validateTeam(p.Team, fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (w Wallets) validate(fields map[string]string) {
	if !bitcoinPattern.MatchString(w.Bitcoin) {
		fields["wallets.bitcoin"] = "invalid Bitcoin address"
	}
	if !nearPattern.MatchString(w.Near) {
		fields["wallets.near"] = "invalid NEAR address"
	}
	if !lethalPattern.MatchString(w.Lethal) {
		fields["wallets.lethal"] = "invalid Lethal address"
	}
}

func validateImages(images []string, fields map[string]string) {
	for i, img := range images {
		if !imagePattern.MatchString(img) {
			fields[fmt.Sprintf("images[%d]", i)] = "invalid image URL"
		}
	}
}

func validateTeam(team []TeamMember, fields map[string]string) {
	seen := make(map[string]bool, len(team))
	for i, m := range team {
		key := fmt.Sprintf("team[%d]", i)
		if err := m.Validate(); err != nil {
			fields[key] = err.Error()
			continue
		}
		if seen[m.Name] {
			fields[key] = fmt.Sprintf("duplicate name %q", m.Name)
		}
		seen[m.Name] = true
	}
}

// Validate checks the member's own fields. Name uniqueness is a project-level
// rule enforced by the lifecycle engine.
func (m *TeamMember) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.Name) == "" {
		fields["name"] = msgRequired
	}
	if strings.TrimSpace(m.Role) == "" {
		fields["role"] = msgRequired
	}
	if m.Email != "" && !emailPattern.MatchString(m.Email) {
		fields["email"] = "must be a valid email address"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Member returns the index of the team member with the given name, using a
// case-sensitive exact match. It returns -1 when no member matches.
func (p *Project) Member(name string) int {
	return slices.IndexFunc(p.Team, func(m TeamMember) bool { return m.Name == name })
}

// MilestoneIndex returns the index of the milestone with the given title, or -1.
func (p *Project) MilestoneIndex(title string) int {
	return slices.IndexFunc(p.Milestones, func(m Milestone) bool { return m.Title == title })
}

// FundingRatio returns raised/goal. A zero goal counts as fully funded.
func (p *Project) FundingRatio() float64 {
	return fundingRatio(p.Raised, p.Goal)
}

func fundingRatio(raised, goal float64) float64 {
	if goal <= 0 {
		return 1
	}
	return raised / goal
}

// Progress returns the funding progress as a percentage of the goal.
func (p *Project) Progress() float64 {
	if p.Goal <= 0 {
		if p.Raised > 0 {
			return 100
		}
		return 0
	}
	return p.Raised / p.Goal * 100
}

// TimeRemaining returns the time left until EndDate, never negative.
// Projects without an end date report zero.
func (p *Project) TimeRemaining(now time.Time) time.Duration {
	if p.EndDate == nil {
		return 0
	}
	return max(0, p.EndDate.Sub(now))
}

// DaysRemaining returns the whole days left until EndDate, rounded up.
// It is negative once the end date has passed and nil without an end date.
func (p *Project) DaysRemaining(now time.Time) *int {
	if p.EndDate == nil {
		return nil
	}
	days := int(math.Ceil(p.EndDate.Sub(now).Hours() / 24))
	return &days
}

// IsOverdue reports whether the end date has passed without the project
// reaching its goal.
func (p *Project) IsOverdue(now time.Time) bool {
	if p.EndDate == nil {
		return false
	}
	return now.After(*p.EndDate) && p.Status != StatusCompleted
}

// Recipients returns the email addresses of every team member that has one,
// in team order.
func (p *Project) Recipients() []string {
	out := make([]string, 0, len(p.Team))
	for _, m := range p.Team {
		if m.Email != "" {
			out = append(out, m.Email)
		}
	}
	return out
}

// Clone returns a deep copy so that transitions never alias the caller's
// slices or pointers.
func (p *Project) Clone() Project {
	c := *p
	c.Tags = slices.Clone(p.Tags)
	c.Team = slices.Clone(p.Team)
	c.Images = slices.Clone(p.Images)
	c.Updates = slices.Clone(p.Updates)
	c.Milestones = make([]Milestone, len(p.Milestones))
	for i, m := range p.Milestones {
		m.DueDate = cloneTime(m.DueDate)
		m.CompletedAt = cloneTime(m.CompletedAt)
		c.Milestones[i] = m
	}
	if p.Milestones == nil {
		c.Milestones = nil
	}
	c.Date = cloneTime(p.Date)
	c.EndDate = cloneTime(p.EndDate)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// EndDateFromDuration interprets duration as a whole number of months and
// returns start plus that many months. Non-numeric durations yield nil.
// Leading digits are honored ("6 months" is six months).
func EndDateFromDuration(start time.Time, duration string) *time.Time {
	digits := strings.TrimSpace(duration)
	end := strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' })
	if end >= 0 {
		digits = digits[:end]
	}
	months, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	t := start.AddDate(0, months, 0)
	return &t
}

// NormalizeTags lower-cases and trims tags, dropping empties.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
