// Package mongostore is the MongoDB-backed ProjectRepository. Each project
// is one document in a single collection; updates are compare-and-swap on
// the document's version field.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

// DefaultTimeout bounds each database round trip when no timeout is configured.
const DefaultTimeout = 5 * time.Second

var (
	_ ports.ProjectRepository = (*Repository)(nil)
	_ ports.HealthChecker     = (*Repository)(nil)
)

// Repository stores projects in a MongoDB collection.
type Repository struct {
	coll    *mongo.Collection
	timeout time.Duration
	now     func() time.Time
}

// Connect dials the MongoDB deployment at uri and verifies it with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return client, nil
}

// New creates a Repository over coll. A non-positive timeout selects
// DefaultTimeout.
func New(coll *mongo.Collection, timeout time.Duration) *Repository {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Repository{
		coll:    coll,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// EnsureIndexes creates the unique projectId index and the secondary indexes
// used by the listing filters. It is idempotent.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels())
	if err != nil {
		return fmt.Errorf("creating indexes on %s: %w", r.coll.Name(), err)
	}
	return nil
}

func indexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "projectId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "team.name", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "mongo" }

// HealthCheck implements ports.HealthChecker by pinging the primary.
func (r *Repository) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Get returns the project with the given ID.
func (r *Repository) Get(ctx context.Context, projectID string) (*project.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc projectDocument
	if err := r.coll.FindOne(ctx, byID(projectID)).Decode(&doc); err != nil {
		return nil, translateError("get", projectID, err)
	}
	return toDomain(&doc), nil
}

// Create inserts p as version 1.
func (r *Repository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := toDocument(p)
	doc.Version = 1
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = r.now()
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = doc.CreatedAt
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, translateError("create", p.ProjectID, err)
	}
	return toDomain(&doc), nil
}

// Update replaces the whole stored document if it is still at p.Version, so
// fields cleared on the project are cleared in storage too. When no document
// matches, a follow-up count tells a stale version apart from a deleted
// project.
func (r *Repository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := toDocument(p)
	doc.Version = p.Version + 1
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = r.now()
	}

	res, err := r.coll.ReplaceOne(ctx, versionFilter(p.ProjectID, p.Version), doc)
	if err != nil {
		return nil, translateError("update", p.ProjectID, err)
	}
	if res.MatchedCount == 0 {
		n, err := r.coll.CountDocuments(ctx, byID(p.ProjectID))
		if err != nil {
			return nil, translateError("update", p.ProjectID, err)
		}
		if n == 0 {
			return nil, fmt.Errorf("update project %s: %w", p.ProjectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update project %s based on version %d: %w",
			p.ProjectID, p.Version, domain.ErrConflict)
	}
	return toDomain(&doc), nil
}

// List returns one page of matching projects and the total match count.
func (r *Repository) List(ctx context.Context, filter project.Filter, page project.Page) ([]project.Project, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page = page.Normalize()
	q := listFilter(filter)

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, translateError("count", "*", err)
	}

	projects, err := r.find(ctx, q, pageOptions(page))
	if err != nil {
		return nil, 0, translateError("list", "*", err)
	}
	return projects, total, nil
}

// FindSimilar returns up to limit projects in the same category sharing a tag.
func (r *Repository) FindSimilar(ctx context.Context, projectID string, limit int) ([]project.Project, error) {
	src, err := r.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(src.Tags) == 0 {
		return []project.Project{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(newestFirst)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	projects, err := r.find(ctx, similarFilter(src), opts)
	if err != nil {
		return nil, translateError("find similar", projectID, err)
	}
	return projects, nil
}

// Delete removes the project if it is still at version. A missed match is
// told apart the same way as in Update.
func (r *Repository) Delete(ctx context.Context, projectID string, version int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, versionFilter(projectID, version))
	if err != nil {
		return translateError("delete", projectID, err)
	}
	if res.DeletedCount == 0 {
		n, err := r.coll.CountDocuments(ctx, byID(projectID))
		if err != nil {
			return translateError("delete", projectID, err)
		}
		if n == 0 {
			return fmt.Errorf("delete project %s: %w", projectID, domain.ErrNotFound)
		}
		return fmt.Errorf("delete project %s at version %d: %w", projectID, version, domain.ErrConflict)
	}
	return nil
}

func (r *Repository) find(ctx context.Context, q bson.D, opts *options.FindOptions) ([]project.Project, error) {
	cursor, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []projectDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	projects := make([]project.Project, len(docs))
	for i := range docs {
		projects[i] = *toDomain(&docs[i])
	}
	return projects, nil
}
