package types

// OccupancyKind describes what, if anything, holds an availability core.
type OccupancyKind uint8

const (
	// CoreFree marks a core with no pending candidate.
	CoreFree OccupancyKind = iota

	// CoreIndracore marks a core occupied by its permanently bound
	// indracore. No extra data is needed; the workload is implied by the
	// core index.
	CoreIndracore

	// CoreIndrabase marks a multiplexer core occupied by an indrabase
	// claim.
	CoreIndrabase
)

// String returns the string representation of the occupancy kind.
func (k OccupancyKind) String() string {
	switch k {
	case CoreFree:
		return "Free"
	case CoreIndracore:
		return "Indracore"
	case CoreIndrabase:
		return "Indrabase"
	default:
		return "Unknown"
	}
}

// CoreOccupancy is the occupancy record of one availability core. The zero
// value is a free core.
type CoreOccupancy struct {
	// Kind says whether the core is free or which workload kind occupies
	// it.
	Kind OccupancyKind `json:"kind"`

	// Entry is the occupying indrabase claim. Only meaningful when Kind is
	// CoreIndrabase.
	Entry IndrabaseEntry `json:"entry"`
}

// IsFree reports whether the core has no occupant.
func (o CoreOccupancy) IsFree() bool {
	return o.Kind == CoreFree
}

// FreedReason is why a previously occupied core became free.
type FreedReason uint8

const (
	// FreedConcluded means the core's candidate became available; the work
	// concluded successfully.
	FreedConcluded FreedReason = iota

	// FreedTimedOut means the candidate stayed pending past its
	// availability period.
	FreedTimedOut
)

// String returns the string representation of the freed reason.
func (r FreedReason) String() string {
	switch r {
	case FreedConcluded:
		return "Concluded"
	case FreedTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// CoreFreed names one core freed during the current block along with the
// reason it was freed.
type CoreFreed struct {
	Core   CoreIndex
	Reason FreedReason
}

// AssignmentKind is the kind of workload a core assignment carries.
type AssignmentKind uint8

const (
	// AssignIndracore assigns the core's permanently bound indracore.
	AssignIndracore AssignmentKind = iota

	// AssignIndrabase assigns a claimed indrabase workload.
	AssignIndrabase
)

// String returns the string representation of the assignment kind.
func (k AssignmentKind) String() string {
	switch k {
	case AssignIndracore:
		return "Indracore"
	case AssignIndrabase:
		return "Indrabase"
	default:
		return "Unknown"
	}
}

// CoreAssignment describes how a currently free core is scheduled to be
// occupied once a candidate is backed.
type CoreAssignment struct {
	// Core is the assigned availability core.
	Core CoreIndex `json:"core"`

	// IndraID is the workload assigned to the core.
	IndraID IndraID `json:"indraId"`

	// Kind distinguishes indracore from indrabase assignments.
	Kind AssignmentKind `json:"kind"`

	// Collator is the collator required to collate this workload. Set only
	// for indrabase assignments.
	Collator CollatorID `json:"collator,omitempty"`

	// Retries is the claim's retry count. Meaningful only for indrabase
	// assignments.
	Retries uint32 `json:"retries,omitempty"`

	// GroupIndex is the validator group responsible for checking the
	// candidate on this core.
	GroupIndex GroupIndex `json:"groupIndex"`
}

// RequiredCollator returns the collator required to collate this assignment,
// if any. Indracore assignments accept any collator.
func (a CoreAssignment) RequiredCollator() (CollatorID, bool) {
	if a.Kind != AssignIndrabase {
		return "", false
	}

	return a.Collator, true
}

// ToOccupancy converts the assignment into the occupancy record installed
// when the core becomes occupied.
func (a CoreAssignment) ToOccupancy() CoreOccupancy {
	if a.Kind == AssignIndracore {
		return CoreOccupancy{Kind: CoreIndracore}
	}

	return CoreOccupancy{
		Kind: CoreIndrabase,
		Entry: IndrabaseEntry{
			Claim:   IndrabaseClaim{ID: a.IndraID, Collator: a.Collator},
			Retries: a.Retries,
		},
	}
}

// ScheduledCore is the answer to "what runs on this core next": the workload
// and, for indrabases, the collator required to provide the candidate.
// An empty Collator means any collator may collate.
type ScheduledCore struct {
	ID       IndraID    `json:"id"`
	Collator CollatorID `json:"collator,omitempty"`
}
