// Package levelforge is the route engine behind a browser FPS level editor:
// grid pathfinding over arbitrary floor polygons and procedural corridors
// that join disconnected floors.
//
// 🚀 What is inside?
//
//	A small set of packages, each usable on its own:
//		• Floor model: object kinds, immutable snapshots with a revision, the editor's JSON format
//		• Navigation grid: walkability raster with wall-proximity costs and region labels
//		• A* search: 8-connected, no corner cutting, optional jitter for varied routes
//		• Path simplification: line-of-sight corner reduction
//		• Floor graph: vertex adjacency, BFS reachability, closest-gap search
//		• Corridors: straight and L-shaped extrusion across a gap, Defence then Offence
//		• Analysis & rules: route length/time overlay and advisory level-design checks
//
// ✨ Conventions
//
//   - Coordinates are editor pixels, y grows downward, 32 px = 1 m by default.
//   - Algorithms take a level.Snapshot, never live editor state.
//   - Failures the editor shows as "nothing found" are sentinel errors,
//     checked with errors.Is.
//   - Options are functional (WithX) and validated up front.
//
// Layout:
//
//	geom/:       points, segments, rectangles, polygons
//	level/:      objects, snapshots, documents, JSON codec, floor index
//	navgrid/:    grid builder, A*, simplifier, revision-keyed grid cache
//	floorgraph/: floor adjacency graph, BFS, gap search
//	corridor/:   slot selection, extrusion, the Connector
//	analysis/:   throttled spawn → objective route reports
//	rules/:      spawn, distance, path, three-second, three-route, width checks
//	config/:     YAML settings translated into options at the edge
//	cmd/levelforge: connect, path and check from the command line
//
// Quick ASCII example:
//
//	┌────┐          ┌────┐
//	│ D  │══════════│ O  │
//	└────┘          └────┘
//
//	a defence spawn room joined to the objective room by a 5 m corridor.
//
//	go install github.com/katalvlaran/levelforge/cmd/levelforge@latest
package levelforge
