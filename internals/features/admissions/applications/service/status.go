package service

import (
	"fmt"

	"admissions_backend/internals/constants"
)

// Application statuses. submitted is the initial state; accepted and rejected
// are terminal for every caller type.
const (
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under review"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

// Staged workflow for staff reviewers. Terminal states have no entry, which
// locks them against further transitions.
var staffTransitions = map[string][]string{
	StatusSubmitted:   {StatusUnderReview},
	StatusUnderReview: {StatusAccepted, StatusRejected},
}

func ValidStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

func IsTerminal(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

// ValidateTransition decides whether a caller with the given role may move an
// application from one status to another.
//
// Admins bypass the staged workflow and set accepted/rejected directly, but
// may not move an application out of a terminal state. Non-admin callers are
// held to the staged table even though the route gate already excludes them.
func ValidateTransition(role, from, to string) error {
	if role == constants.RoleAdmin {
		if to != StatusAccepted && to != StatusRejected {
			return fmt.Errorf("Admin can only set status to accepted or rejected")
		}
		if IsTerminal(from) {
			return fmt.Errorf("Cannot change status from '%s' to '%s'", from, to)
		}
		return nil
	}

	for _, allowed := range staffTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("Cannot change status from '%s' to '%s'", from, to)
}
