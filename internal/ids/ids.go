// Package ids generates the identifiers attached to shipments and
// runtime activities, kept in one place so every subsystem gets the
// same representation (a string, for log and JSON friendliness).
package ids

import "github.com/google/uuid"

// NewShipmentID returns a fresh identifier for a package moving through
// the network.
func NewShipmentID() string { return uuid.NewString() }

// NewActivityID returns a fresh identifier for a scheduled activity, used
// for correlating log lines with a specific firing rather than its name
// (names repeat across many instances of the same kind of activity).
func NewActivityID() string { return uuid.NewString() }
