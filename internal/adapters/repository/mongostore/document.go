package mongostore

import (
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// projectDocument is the stored shape of a project. Field names follow the
// collection's camelCase convention; the driver-assigned _id is never read.
type projectDocument struct {
	ProjectID       string              `bson:"projectId"`
	InstanceID      string              `bson:"instanceId,omitempty"`
	Title           string              `bson:"title"`
	Description     string              `bson:"description"`
	LongDescription string              `bson:"longDescription"`
	Category        string              `bson:"category"`
	Goal            float64             `bson:"goal"`
	Raised          float64             `bson:"raised"`
	Location        string              `bson:"location"`
	Duration        string              `bson:"duration"`
	Impact          string              `bson:"impact"`
	Date            *time.Time          `bson:"date,omitempty"`
	Status          string              `bson:"status"`
	Client          string              `bson:"client,omitempty"`
	Tags            []string            `bson:"tags"`
	Team            []teamDocument      `bson:"team"`
	Milestones      []milestoneDocument `bson:"milestones"`
	Wallets         walletsDocument     `bson:"wallets"`
	Supporters      int                 `bson:"supporters"`
	Images          []string            `bson:"images"`
	Updates         []updateDocument    `bson:"updates"`
	IsActive        bool                `bson:"isActive"`
	EndDate         *time.Time          `bson:"endDate,omitempty"`
	Version         int64               `bson:"version"`
	CreatedAt       time.Time           `bson:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt"`
}

type teamDocument struct {
	Name     string    `bson:"name"`
	Role     string    `bson:"role"`
	Email    string    `bson:"email,omitempty"`
	JoinedAt time.Time `bson:"joinedAt"`
}

type milestoneDocument struct {
	Title       string     `bson:"title"`
	Status      string     `bson:"status"`
	Description string     `bson:"description,omitempty"`
	DueDate     *time.Time `bson:"dueDate,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty"`
}

type updateDocument struct {
	Message string    `bson:"message"`
	Author  string    `bson:"author"`
	Type    string    `bson:"type"`
	Date    time.Time `bson:"date"`
}

type walletsDocument struct {
	Bitcoin string `bson:"bitcoin"`
	Near    string `bson:"near"`
	Lethal  string `bson:"lethal"`
}

// toDocument converts a domain project to its stored shape. Nil slices are
// stored as empty arrays so that $in and $size queries behave uniformly.
func toDocument(p *project.Project) projectDocument {
	doc := projectDocument{
		ProjectID:       p.ProjectID,
		InstanceID:      p.InstanceID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Category:        string(p.Category),
		Goal:            p.Goal,
		Raised:          p.Raised,
		Location:        p.Location,
		Duration:        p.Duration,
		Impact:          string(p.Impact),
		Date:            p.Date,
		Status:          string(p.Status),
		Client:          p.Client,
		Tags:            nonNil(p.Tags),
		Team:            make([]teamDocument, len(p.Team)),
		Milestones:      make([]milestoneDocument, len(p.Milestones)),
		Wallets: walletsDocument{
			Bitcoin: p.Wallets.Bitcoin,
			Near:    p.Wallets.Near,
			Lethal:  p.Wallets.Lethal,
		},
		Supporters: p.Supporters,
		Images:     nonNil(p.Images),
		Updates:    make([]updateDocument, len(p.Updates)),
		IsActive:   p.IsActive,
		EndDate:    p.EndDate,
		Version:    p.Version,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	for i, m := range p.Team {
		doc.Team[i] = teamDocument{Name: m.Name, Role: m.Role, Email: m.Email, JoinedAt: m.JoinedAt}
	}
	for i, m := range p.Milestones {
		doc.Milestones[i] = milestoneDocument{
			Title:       m.Title,
			Status:      string(m.Status),
			Description: m.Description,
			DueDate:     m.DueDate,
			CompletedAt: m.CompletedAt,
		}
	}
	for i, u := range p.Updates {
		doc.Updates[i] = updateDocument{Message: u.Message, Author: u.Author, Type: string(u.Type), Date: u.Date}
	}
	return doc
}

// toDomain converts a stored document back to a domain project. Times come
// back from BSON in UTC with millisecond precision.
func toDomain(doc *projectDocument) *project.Project {
	p := &project.Project{
		ProjectID:       doc.ProjectID,
		InstanceID:      doc.InstanceID,
		Title:           doc.Title,
		Description:     doc.Description,
		LongDescription: doc.LongDescription,
		Category:        project.Category(doc.Category),
		Goal:            doc.Goal,
		Raised:          doc.Raised,
		Location:        doc.Location,
		Duration:        doc.Duration,
		Impact:          project.Impact(doc.Impact),
		Date:            doc.Date,
		Status:          project.Status(doc.Status),
		Client:          doc.Client,
		Tags:            doc.Tags,
		Wallets: project.Wallets{
			Bitcoin: doc.Wallets.Bitcoin,
			Near:    doc.Wallets.Near,
			Lethal:  doc.Wallets.Lethal,
		},
		Supporters: doc.Supporters,
		Images:     doc.Images,
		IsActive:   doc.IsActive,
		EndDate:    doc.EndDate,
		Version:    doc.Version,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
	if len(doc.Team) > 0 {
		p.Team = make([]project.TeamMember, len(doc.Team))
		for i, m := range doc.Team {
			p.Team[i] = project.TeamMember{Name: m.Name, Role: m.Role, Email: m.Email, JoinedAt: m.JoinedAt}
		}
	}
	if len(doc.Milestones) > 0 {
		p.Milestones = make([]project.Milestone, len(doc.Milestones))
		for i, m := range doc.Milestones {
			p.Milestones[i] = project.Milestone{
				Title:       m.Title,
				Status:      project.MilestoneStatus(m.Status),
				Description: m.Description,
				DueDate:     m.DueDate,
				CompletedAt: m.CompletedAt,
			}
		}
	}
	if len(doc.Updates) > 0 {
		p.Updates = make([]project.Update, len(doc.Updates))
		for i, u := range doc.Updates {
			p.Updates[i] = project.Update{Message: u.Message, Author: u.Author, Type: project.UpdateType(u.Type), Date: u.Date}
		}
	}
	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
