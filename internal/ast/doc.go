// Package ast holds the declaration-level model of one Apex class file.
//
// Only what the declaration generator needs is represented: the class header,
// its annotations and modifiers, and the fields and methods of its body with
// their type expressions. Statements and expressions are never parsed.
//
// All nodes are plain values so that a parsed class can be cached on disk
// (msgpack) and reused when the source hash does not change.
package ast
