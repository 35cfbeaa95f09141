package coresched

import "github.com/indranet/coresched/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Internal packages depend on the types
// subpackage directly, which avoids import cycles while still offering
// coresched.CoreIndex, coresched.Logger, etc. to users.
type (
	IndraID        = types.IndraID
	CoreIndex      = types.CoreIndex
	GroupIndex     = types.GroupIndex
	ValidatorIndex = types.ValidatorIndex
	CollatorID     = types.CollatorID
	BlockNumber    = types.BlockNumber

	IndrabaseClaim = types.IndrabaseClaim
	IndrabaseEntry = types.IndrabaseEntry
	ClaimQueue     = types.ClaimQueue
	ClaimIndex     = types.ClaimIndex

	CoreOccupancy  = types.CoreOccupancy
	CoreFreed      = types.CoreFreed
	FreedReason    = types.FreedReason
	CoreAssignment = types.CoreAssignment
	ScheduledCore  = types.ScheduledCore

	SessionConfig             = types.SessionConfig
	SessionChangeNotification = types.SessionChangeNotification
	GroupRotationInfo         = types.GroupRotationInfo
	SchedulerState            = types.SchedulerState
)

// Re-export interfaces from the types package for convenience.
type (
	WorkloadRegistry = types.WorkloadRegistry
	GroupStrategy    = types.GroupStrategy
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export enum constants from the types package.
const (
	CoreFree      = types.CoreFree
	CoreIndracore = types.CoreIndracore
	CoreIndrabase = types.CoreIndrabase

	FreedConcluded = types.FreedConcluded
	FreedTimedOut  = types.FreedTimedOut

	AssignIndracore = types.AssignIndracore
	AssignIndrabase = types.AssignIndrabase
)
