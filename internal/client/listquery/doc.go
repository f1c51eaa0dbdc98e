// Package listquery is the state machine behind every list screen: filters,
// debounced free-text search, pagination, sort, and mapping of wire records
// into view records.
//
// Each fetch is tagged with a monotonically increasing request id. Only the
// result of the most recently issued request is applied; an older request is
// cancelled through its context and its result, if it still arrives, is
// dropped. Arrival order never decides what the screen shows.
package listquery
