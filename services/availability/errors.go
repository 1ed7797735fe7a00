package availability

import "errors"

// ErrLedgerUnavailable distinguishes a failed ledger read from an empty
// calendar so the UI can show a retry affordance instead of silently
// rendering stale or optimistic data as current.
var ErrLedgerUnavailable = errors.New("reservation ledger unavailable")

// ErrUnknownResourceClass is returned for a class outside the inventory.
var ErrUnknownResourceClass = errors.New("unknown resource class")
