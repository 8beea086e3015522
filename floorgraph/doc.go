// Package floorgraph answers "which floors already touch" for the corridor
// connector: an undirected adjacency graph over floor outlines, unweighted
// BFS over it, and the closest boundary-edge pair between two floor sets.
//
// What
//
//   - Build links two floors when any vertex of one lies within Tolerance
//     (default 16 px, half a meter) of any vertex of the other. Adjacency is
//     symmetric by construction.
//   - Path runs an unweighted BFS and returns the floor ids from start to
//     goal. It answers "is there a connection", not "which one is shortest
//     in meters".
//   - Reachable floods from one floor; Components partitions all floors.
//   - FindGap scans every cross pair of floors in two sets and keeps the
//     boundary-edge pair whose midpoints are closest.
//
// Determinism
//
//	Neighbors are returned in ascending id order and BFS enqueues them in
//	that order, so paths and components are reproducible for a given input.
//
// Complexity (F = floors, V = vertices per floor, E = edges per floor)
//
//   - Build:    O(F² × V²)
//   - Path, Reachable, Components: O(F + adjacencies)
//   - FindGap:  O(|A| × |B| × E²)
//
// Options
//
//   - WithTolerance(px): vertex snapping distance for adjacency (≥ 0).
//   - WithLink(a, b):    force an adjacency, ignoring geometry.
//   - WithEdgeContact(): also link a vertex resting on the other floor's edge.
//
// Errors
//
//   - ErrFloorNotFound:   a start or goal id is not a vertex of the graph.
//   - ErrNoPath:          the goal is not reachable from the start.
//   - ErrNoGap:           one of the floor sets has no boundary edge.
//   - ErrOptionViolation: an invalid option value.
package floorgraph
