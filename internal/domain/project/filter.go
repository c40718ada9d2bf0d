package project

// Filter holds optional filter criteria for listing projects.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Category Category
	Status   Status
	Tag      string
	Location string
	Impact   Impact
	IsActive *bool

	// ExcludeCompleted drops completed projects. Used by the active listing.
	ExcludeCompleted bool
}

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultSimilarLimit = 5
)

// Page selects a 1-based page of results.
type Page struct {
	Page  int
	Limit int
}

// Normalize clamps the page to page >= 1 and 1 <= limit <= MaxLimit,
// substituting defaults for zero values.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the number of items to skip.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Matches reports whether p satisfies every set criterion of f. Repository
// implementations that filter in memory use this; query-based stores
// translate the same criteria.
func (f Filter) Matches(p *Project) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Location != "" && p.Location != f.Location {
		return false
	}
	if f.Impact != "" && p.Impact != f.Impact {
		return false
	}
	if f.IsActive != nil && p.IsActive != *f.IsActive {
		return false
	}
	if f.ExcludeCompleted && p.Status == StatusCompleted {
		return false
	}
	if f.Tag != "" && !hasTag(p.Tags, f.Tag) {
		return false
	}
	return true
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharesTag reports whether a and b have at least one tag in common.
func SharesTag(a, b []string) bool {
	for _, t := range a {
		if hasTag(b, t) {
			return true
		}
	}
	return false
}
