// Package report renders finished dispatch runs for people and tools:
// text Gantt charts, per-tick listings, schedule and comparison tables,
// CSV exports and PNG charts.
//
// Every function reads *sim.Result values and never re-runs a policy.
package report
