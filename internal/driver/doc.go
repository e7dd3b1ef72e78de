// Package driver runs the apexts pipeline over files and directories.
//
// A run is: discover *.cls files, load them into one FileSet, convert every
// file independently (lex, extract the class, parse members), then aggregate
// the results in discovery order and render the declaration file. Per-file
// conversion is pure, so it runs in parallel and can be served from the
// on-disk cache.
package driver
