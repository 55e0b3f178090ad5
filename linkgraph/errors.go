// SPDX-License-Identifier: MIT

package linkgraph

import "errors"

var (
	// ErrMalformedLine is returned by the parsers for a line that is neither a
	// comment, blank, nor a well-formed record. The message carries the line number.
	ErrMalformedLine = errors.New("linkgraph: malformed line")

	// ErrEmptyID is returned when an edge endpoint is the empty string.
	ErrEmptyID = errors.New("linkgraph: empty node id")

	// ErrEmptyGraph is returned when a matrix is requested from a graph without nodes
	// or a matrix source holds no rows.
	ErrEmptyGraph = errors.New("linkgraph: graph has no nodes")
)
