// Package partition provides validator-group partition strategies for the
// coresched scheduler.
//
// A strategy splits the session's (already shuffled) validator list into one
// group per availability core. The default Balanced strategy keeps group
// sizes within one of each other, with the larger groups at the lowest group
// indices.
package partition
