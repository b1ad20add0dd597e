package models

// Post types
const (
	PostTypeNeed      = "need"
	PostTypeSpace     = "space"
	PostTypeCommunity = "community"
)

// Post statuses
const (
	PostStatusActive  = "active"
	PostStatusClosed  = "closed"
	PostStatusDeleted = "deleted"
)

// Match statuses
const (
	MatchStatusPending   = "pending"
	MatchStatusPaid      = "paid"
	MatchStatusConnected = "connected"
)

// statusRank orders match statuses for monotonic transitions.
var statusRank = map[string]int{
	MatchStatusPending:   0,
	MatchStatusPaid:      1,
	MatchStatusConnected: 2,
}

// IsValidMatchStatus reports whether s is a known match status.
func IsValidMatchStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// MatchStatusRank returns the ordering rank of a match status.
// Unknown statuses rank below pending.
func MatchStatusRank(s string) int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}
