// Package rules runs the advisory level-design checks the editor shows next
// to the map. None of them blocks corridor generation; they only report.
//
// Checks
//
//   - spawn:          exactly one defence and one offence spawn.
//   - objective:      exactly one objective.
//   - distance:       defence ≥ 25 m and offence ≥ 50 m from the objective,
//     centre to centre.
//   - path:           offence needs at least two approaches. Paths are
//     estimated from floor areas labelled "Junction": n junctions give
//     n+1 paths, none gives one.
//   - three-second:   no straight run longer than PlayerSpeed × 3 s (13.5 m),
//     measured on the simplified analysis routes.
//   - three-route:    every junction floor touches at least three others
//     (advance, retreat, flank).
//   - corridor-width: floors labelled "Corridor" are 4 m to 6 m across;
//     wider reads as a room.
//
// Every check looks at the WithLayer layer only; zones and floors on other
// layers are ignored.
//
// Options
//
//   - WithLayer(n), WithPlayerSpeed(mps), WithStraightRun(seconds),
//     WithMinRoutes(n), WithCorridorWidth(min, max),
//     WithObjectiveDistance(def, off), WithMinOffencePaths(n),
//     WithTolerance(px).
//
// Errors
//
//   - ErrOptionViolation: an invalid option value.
package rules
