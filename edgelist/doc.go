// Package edgelist reads directed link lists for affinity propagation and
// writes exemplar assignments back out.
//
// Input is line oriented: the first two whitespace-separated tokens of a line
// are the source and target node indices. The first line whose tokens do not
// parse as two integers ends the input, a blank line included; everything read
// up to that point is kept. Header lines starting with '#' are skipped only
// before the first link. Lines are limited to MaxLineBytes.
//
// Output is one exemplar index per line in node order. WriteFile stages the
// output in a temporary file next to the destination and renames it into
// place, so a failed write never leaves a truncated result behind.
//
// FromDirected converts a gonum directed graph with dense ids 0..n-1 into the
// same link form.
package edgelist
