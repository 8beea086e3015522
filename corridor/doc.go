// Package corridor closes the gaps between disconnected floor groups by
// extruding rectangular corridor floors between them.
//
// What
//
//   - FindSlot picks, on one floor, the boundary edge whose outward normal
//     best faces a target floor, skipping edges too short for the corridor,
//     and centres a width-long attachment slot on it.
//   - Straight joins two slots that face along the same axis with one
//     rectangle whose short sides lie on the two slot edges.
//   - WithBends joins a horizontal-facing slot to a vertical-facing one with
//     an L: leg, bend square, leg. Adjoining pieces share exact edges.
//   - Connector.Connect runs the whole workflow for the defence and offence
//     spawns: locate their floors and the objective floor, test the floor
//     graph for an existing route, find the closest gap between the two
//     reachable sets, and extrude a corridor across it.
//   - Between lays a drag-tool corridor from one point to another: longer
//     axis first, with a bend room on the corner. Connector.ConnectPoints
//     turns the pieces into objects.
//
// Units
//
//	Geometry is in editor pixels; widths and the gap ceiling are given in
//	meters and converted with the snapshot grid size.
//
// Straight-corridor placement
//
//	When the two source edges overlap by at least the corridor width, the
//	corridor sits inside the overlap, as close to both slot centres as it
//	fits. Otherwise it is centred on the midpoint of the union of the two
//	ranges. That fallback is an approximation: the corridor may not be
//	flush with either slot.
//
//	The corridor ends sit on the slot midpoints. On a slanted edge that
//	faces mostly along one axis, part of the end is therefore short of, or
//	inside, the edge rather than flush with it.
//
// Errors
//
//   - ErrNoSlot:          no edge of a floor is long enough for the corridor.
//   - ErrDegenerate:      the two slots lie on the same line.
//   - ErrBadWidth:        corridor width is not positive.
//   - ErrShortDrag:       a Between drag shorter than MinDragPx.
//   - ErrOptionViolation: an invalid option value.
//
// Connect and ConnectPoints never return these directly; every failure ends
// up in Result.Message.
package corridor
