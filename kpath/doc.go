// Package kpath provides kinded paths into tag trees.
//
// Kinded paths encode the container kind of each step in the syntax:
//   - .key - compound key
//   - [index] - list index
//
// # Usage
//
//	// Parse a kinded path
//	kp, err := kpath.Parse("Items[0].id")
//
//	// Build one from steps
//	kp = kpath.New(kpath.Field("Items"), kpath.Index(0), kpath.Field("id"))
//
//	// Split off the last step
//	parent, last := kp.Split()
//
// # Related Packages
//
//   - github.com/CuiZhenhang/scriptable-nbt/scriptable - navigates nbt trees with kinded paths
package kpath
