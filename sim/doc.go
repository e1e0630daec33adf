// Package sim provides the core engine for simulating a timed hot dog
// eating competition.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - ratefn.go: per-competitor rate functions (seconds to eat the n-th hot dog)
//   - event.go: the Event value type and its total order
//   - competition.go: the simulation loop, boundary arithmetic, and winner query
//
// Competitors eat independently. The engine converts each one's continuous
// rate function into discrete whole-hot-dog events, closes every competitor
// out with a terminal event at the final bell carrying fractional progress
// on the hot dog in hand, and returns the merged log sorted by
// (elapsed time, name).
package sim
