// Package registry provides workload registry implementations for the
// coresched scheduler.
//
// The Static registry holds a fixed set of indracores and indrabases with
// explicit update methods. It suits hosts that drive registration through
// their own lifecycle logic, and tests.
package registry
