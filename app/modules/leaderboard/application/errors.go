package leaderboardservice

import "errors"

// ErrLedgerUnavailable indicates the ledger could not be read.
var ErrLedgerUnavailable = errors.New("score ledger unavailable")
