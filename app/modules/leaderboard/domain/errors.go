package leaderboarddomain

import "errors"

// ErrUnknownWindow is returned by ParseWindow for unrecognized input.
var ErrUnknownWindow = errors.New("unknown ranking window")
