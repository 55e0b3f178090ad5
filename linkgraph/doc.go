// Package linkgraph turns link data into the transition matrices consumed by
// package pagerank.
//
// Two text formats are read:
//
//   - Edge lists (ParseEdgeList): one "from to" or "from,to" pair per line.
//     Lines starting with "#" or "//" and blank lines are skipped. Node IDs
//     are arbitrary strings; nodes are indexed in order of first appearance.
//   - Dense matrices (ParseMatrix): one row per line, values separated by
//     whitespace or commas.
//
// Graph.LinkCounts builds the raw count matrix C with C[i,j] = number of links
// j→i, and TransitionMatrix divides every column by its sum so column j becomes
// node j's outgoing-link distribution. Nodes without outgoing links keep a zero
// column; pagerank.DanglingPolicy decides what happens to them.
package linkgraph
