package mongostore

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

func TestListFilter(t *testing.T) {
	t.Parallel()

	active := true

	tests := []struct {
		name   string
		filter project.Filter
		want   bson.D
	}{
		{
			name:   "empty filter matches everything",
			filter: project.Filter{},
			want:   bson.D{},
		},
		{
			name: "every criterion set",
			filter: project.Filter{
				Category: project.CategoryEnvironment,
				Status:   project.StatusInProgress,
				Tag:      "water",
				Location: "Kenya",
				Impact:   project.ImpactHigh,
				IsActive: &active,
			},
			want: bson.D{
				{Key: "category", Value: "Environment"},
				{Key: "status", Value: "in-progress"},
				{Key: "tags", Value: "water"},
				{Key: "location", Value: "Kenya"},
				{Key: "impact", Value: "high"},
				{Key: "isActive", Value: true},
			},
		},
		{
			name:   "exclude completed becomes $ne",
			filter: project.Filter{IsActive: &active, ExcludeCompleted: true},
			want: bson.D{
				{Key: "status", Value: bson.M{"$ne": "completed"}},
				{Key: "isActive", Value: true},
			},
		},
		{
			name:   "explicit status wins over exclude completed",
			filter: project.Filter{Status: project.StatusPlanned, ExcludeCompleted: true},
			want:   bson.D{{Key: "status", Value: "planned"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := listFilter(tt.filter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("listFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimilarFilter(t *testing.T) {
	t.Parallel()

	src := &project.Project{ProjectID: "p-1", Category: project.CategoryTechnology, Tags: []string{"ai", "edu"}}

	want := bson.D{
		{Key: "category", Value: "Technology"},
		{Key: "tags", Value: bson.M{"$in": []string{"ai", "edu"}}},
		{Key: "projectId", Value: bson.M{"$ne": "p-1"}},
	}
	if got := similarFilter(src); !reflect.DeepEqual(got, want) {
		t.Errorf("similarFilter() = %v, want %v", got, want)
	}
}

func TestPageOptions(t *testing.T) {
	t.Parallel()

	opts := pageOptions(project.Page{Page: 3, Limit: 20})

	if opts.Skip == nil || *opts.Skip != 40 {
		t.Errorf("Skip = %v, want 40", opts.Skip)
	}
	if opts.Limit == nil || *opts.Limit != 20 {
		t.Errorf("Limit = %v, want 20", opts.Limit)
	}
	if !reflect.DeepEqual(opts.Sort, newestFirst) {
		t.Errorf("Sort = %v, want %v", opts.Sort, newestFirst)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	due := created.AddDate(0, 2, 0)
	p := &project.Project{
		ProjectID:       "p-1",
		Title:           "Clean Water",
		Description:     "Wells for rural schools",
		LongDescription: "Drilling and maintaining wells.",
		Category:        project.CategoryEnvironment,
		Goal:            1000,
		Raised:          250,
		Location:        "Kenya",
		Duration:        "6 months",
		Impact:          project.ImpactHigh,
		Status:          project.StatusInProgress,
		Tags:            []string{"water"},
		Team:            []project.TeamMember{{Name: "Ada", Role: "Lead", Email: "ada@example.com", JoinedAt: created}},
		Milestones:      []project.Milestone{{Title: "Survey", Status: project.MilestoneUpcoming, DueDate: &due}},
		Wallets:         project.Wallets{Bitcoin: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", Near: "cleanwater.near", Lethal: "0x52908400098527886E0F7030069857D2E4169EE7"},
		Supporters:      3,
		Images:          []string{"https://example.com/well.png"},
		Updates:         []project.Update{{Message: "Kickoff", Author: "Ada", Type: project.UpdateGeneral, Date: created}},
		IsActive:        true,
		Version:         4,
		CreatedAt:       created,
		UpdatedAt:       created,
	}

	raw, err := bson.Marshal(toDocument(p))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var doc projectDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got := toDomain(&doc)
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, p)
	}
}

func TestToDocument_NilSlicesStoredEmpty(t *testing.T) {
	t.Parallel()

	doc := toDocument(&project.Project{ProjectID: "p-1"})

	if doc.Tags == nil || doc.Images == nil || doc.Team == nil {
		t.Errorf("toDocument() left nil slices: tags=%v images=%v team=%v", doc.Tags, doc.Images, doc.Team)
	}

	back := toDomain(&doc)
	if back.Team != nil || back.Milestones != nil || back.Updates != nil {
		t.Errorf("toDomain() of empty arrays = %+v, want nil slices", back)
	}
}
