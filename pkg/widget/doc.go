// Package widget defines the seam between prompt operations and whatever
// actually shows a dialog: an HTML modal, a terminal prompt session, or a
// scripted test double. The Widget interface is injected into every
// operation rather than hidden behind a process-wide singleton, so only
// implementations need to care about the one-dialog-at-a-time rule.
package widget
