// Package navgrid rasterizes floor outlines into a uniform walkability grid
// and answers route queries over it.
//
// What:
//
//   - Build turns a level.FloorIndex into a Grid: one cell per CellSize
//     pixels, walkable when the cell center is on a floor, with a cost layer
//     that penalizes cells hugging walls (5 at distance 1, 2 at distance 2).
//   - FindPath runs A* (8 directions, no corner cutting, Manhattan heuristic)
//     between two world points, snapping blocked endpoints to the nearest
//     walkable cell within SearchRadius rings.
//   - Simplify reduces a cell path to a line-of-sight polyline tested against
//     the floor polygons themselves, independent of the grid resolution.
//   - Regions labels 4-connected walkable components, which is exactly A*
//     reachability under the no-corner-cutting rule.
//   - Cache keeps one Grid per layer and rebuilds it when the snapshot
//     revision advances.
//
// Why:
//
//   - Route length and spawn-to-objective timing overlays in the editor.
//   - Verifying that generated corridors actually join the two regions.
//
// Complexity:
//
//   - Build:     O(W×H×F) point-in-polygon tests (F = floor count) + O(W×H) cost pass.
//   - FindPath:  O(W×H × log(W×H)) worst case.
//   - Simplify:  O(n² × L/step) floor tests for n points of path length L.
//
// Options:
//
//   - WithPadding(cells), WithWallCosts(near, mid) for Build.
//   - WithRandomness(r), WithRand(rng), WithSearchRadius(n) for FindPath.
//
// Errors:
//
//   - ErrNoFloors:       no floor-bearing object on the layer (no grid).
//   - ErrBadCellSize:    cell size is not positive.
//   - ErrOutOfBounds:    an endpoint lies outside the grid.
//   - ErrNoWalkableCell: no walkable cell within SearchRadius of an endpoint.
//   - ErrNoPath:         the open set was exhausted before reaching the goal.
//   - ErrOptionViolation: an invalid option value.
package navgrid
