// Package analysis computes the spawn-to-objective route overlay: walking
// routes on the nav grid, their length in meters, the time a player needs
// at running speed, and the longest straight leg of each route.
//
// Spawns and the objective are taken from the analysed layer only.
//
// A route the grid cannot confirm (a grid that cannot be built, an endpoint
// off the grid, disconnected regions) degrades to the straight line between
// the two centres with Verified set to false. Analysis never fails because
// of missing geometry; only a layer without an objective is an error.
//
// Routes are throttled: within Cooldown of the last computation for a
// layer the previous report is returned as-is, even if the snapshot has
// moved on, so an editor can call Routes every frame while an object is
// dragged. After the cooldown the report is recomputed only when the
// snapshot comes from another document or revision.
package analysis
