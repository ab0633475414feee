// Package field defines the descriptor model shared by every prompt flow:
// control descriptors, confirmation-time validation rules, the live form
// state widgets maintain while a dialog is open, and the aggregated value
// map a confirmed prompt resolves with. Descriptors are declarative and
// short-lived; they are constructed per invocation, consumed once to build
// a dialog and once to collect results, and never persisted.
package field
