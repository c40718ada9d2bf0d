package mongostore

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// newestFirst is the listing order: createdAt descending, projectId as the
// tie-breaker so pages are stable.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "projectId", Value: 1}}

// listFilter translates a domain filter into a query document. Each set
// criterion becomes one equality (or $ne/$in) clause.
func listFilter(f project.Filter) bson.D {
	q := bson.D{}
	if f.Category != "" {
		q = append(q, bson.E{Key: "category", Value: string(f.Category)})
	}
	switch {
	case f.Status != "":
		q = append(q, bson.E{Key: "status", Value: string(f.Status)})
	case f.ExcludeCompleted:
		q = append(q, bson.E{Key: "status", Value: bson.M{"$ne": string(project.StatusCompleted)}})
	}
	if f.Tag != "" {
		q = append(q, bson.E{Key: "tags", Value: f.Tag})
	}
	if f.Location != "" {
		q = append(q, bson.E{Key: "location", Value: f.Location})
	}
	if f.Impact != "" {
		q = append(q, bson.E{Key: "impact", Value: string(f.Impact)})
	}
	if f.IsActive != nil {
		q = append(q, bson.E{Key: "isActive", Value: *f.IsActive})
	}
	return q
}

// similarFilter selects other projects in the source's category that share
// at least one of its tags.
func similarFilter(src *project.Project) bson.D {
	return bson.D{
		{Key: "category", Value: string(src.Category)},
		{Key: "tags", Value: bson.M{"$in": src.Tags}},
		{Key: "projectId", Value: bson.M{"$ne": src.ProjectID}},
	}
}

// versionFilter matches the project only while it is still at version.
func versionFilter(projectID string, version int64) bson.D {
	return bson.D{{Key: "projectId", Value: projectID}, {Key: "version", Value: version}}
}

func byID(projectID string) bson.D {
	return bson.D{{Key: "projectId", Value: projectID}}
}

// pageOptions applies ordering and pagination to a normalized page.
func pageOptions(page project.Page) *options.FindOptions {
	return options.Find().
		SetSort(newestFirst).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))
}
