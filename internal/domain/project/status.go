package project

// Status is the funding state of a project. It is always derived from the
// raised/goal ratio and never set directly by callers.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// DeriveStatus computes the status implied by raised and goal:
// completed iff raised >= goal, in-progress iff 0 < raised < goal,
// planned otherwise.
func DeriveStatus(raised, goal float64) Status {
	switch {
	case raised >= goal:
		return StatusCompleted
	case raised > 0:
		return StatusInProgress
	default:
		return StatusPlanned
	}
}

// Category classifies a project.
type Category string

const (
	CategoryEnvironment Category = "Environment"
	CategoryTechnology  Category = "Technology"
	CategoryEducation   Category = "Education"
	CategoryHealthcare  Category = "Healthcare"
)

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategoryEnvironment, CategoryTechnology, CategoryEducation, CategoryHealthcare:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// Impact is the expected reach of a project.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// IsValid returns true if the impact is one of the defined constants.
func (i Impact) IsValid() bool {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (i Impact) String() string {
	return string(i)
}

// MilestoneStatus tracks a single milestone's progress.
type MilestoneStatus string

const (
	MilestoneUpcoming   MilestoneStatus = "upcoming"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// IsValid returns true if the milestone status is one of the defined constants.
func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneUpcoming, MilestoneInProgress, MilestoneCompleted:
		return true
	default:
		return false
	}
}

// Rank orders milestone statuses so that forward-only moves can be checked.
func (s MilestoneStatus) Rank() int {
	switch s {
	case MilestoneUpcoming:
		return 0
	case MilestoneInProgress:
		return 1
	case MilestoneCompleted:
		return 2
	default:
		return -1
	}
}

// String implements fmt.Stringer.
func (s MilestoneStatus) String() string {
	return string(s)
}

// UpdateType classifies an entry in the project's update log.
type UpdateType string

const (
	UpdateMilestone UpdateType = "milestone"
	UpdateFunding   UpdateType = "funding"
	UpdateGeneral   UpdateType = "general"
)

// IsValid returns true if the update type is one of the defined constants.
func (t UpdateType) IsValid() bool {
	switch t {
	case UpdateMilestone, UpdateFunding, UpdateGeneral:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t UpdateType) String() string {
	return string(t)
}
