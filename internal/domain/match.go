package domain

import (
	"strings"

	"github.com/samber/lo"
)

// MatchOutcome distinguishes why a requirement did or did not match.
type MatchOutcome int

const (
	// MatchFound means a candidate event satisfied the requirement.
	MatchFound MatchOutcome = iota

	// NoEventWithPrefix means no candidate event name starts with the
	// required name.
	NoEventWithPrefix

	// InputCountsMismatch means at least one name-prefix candidate exists,
	// but none of them carries enough inputs of every required type.
	InputCountsMismatch
)

func (o MatchOutcome) String() string {
	switch o {
	case MatchFound:
		return "matched"
	case NoEventWithPrefix:
		return "no event with matching name"
	case InputCountsMismatch:
		return "input types mismatch"
	default:
		return "unknown"
	}
}

func inputType(in ABIInput) string {
	return in.Type
}

// MatchRequirement scans candidate events in their declared order and returns
// the name of the first one satisfying the requirement.
//
// A candidate qualifies when its name starts with the required name (prefix,
// not equality, so Transfer also matches TransferSingle) and, per distinct
// input type, it carries at least as many inputs of that type as the
// requirement asks for. Input order is irrelevant here; only per-type counts
// matter. Extra inputs of other types never disqualify a candidate.
func MatchRequirement(req EventRequirement, events []ABIEntry) (string, MatchOutcome) {
	outcome := NoEventWithPrefix
	want := lo.CountValuesBy(req.Inputs, inputType)

	for _, event := range events {
		if !strings.HasPrefix(event.Name, req.Name) {
			continue
		}
		outcome = InputCountsMismatch

		have := lo.CountValuesBy(event.Inputs, inputType)
		satisfied := true
		for typ, count := range want {
			if have[typ] < count {
				satisfied = false
				break
			}
		}
		if satisfied {
			return event.Name, MatchFound
		}
	}

	return "", outcome
}

// SatisfiesRole reports whether the ABI can fill the role: every event
// requirement must find a match among the ABI's events. Different
// requirements may be satisfied by the same candidate event.
func (a ABI) SatisfiesRole(role RoleSpec) bool {
	events := a.Events()
	for _, req := range role.Events {
		if _, outcome := MatchRequirement(req, events); outcome != MatchFound {
			return false
		}
	}
	return true
}
