package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Signature renders the entry as "Name(type1,type2,...)". Input order is the
// declared order; it is never re-sorted, since parameter order is part of the
// event's identity.
func (e ABIEntry) Signature() string {
	types := lo.Map(e.Inputs, func(in ABIInput, _ int) string {
		return in.Type
	})
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(types, ","))
}

// Signature renders the requirement in the same form as ABIEntry.Signature.
func (r EventRequirement) Signature() string {
	types := lo.Map(r.Inputs, func(in ABIInput, _ int) string {
		return in.Type
	})
	return fmt.Sprintf("%s(%s)", r.Name, strings.Join(types, ","))
}

// EventSignatures returns one signature string per event entry, in the same
// relative order the events appear in the ABI.
func (a ABI) EventSignatures() []string {
	return lo.Map(a.Events(), func(e ABIEntry, _ int) string {
		return e.Signature()
	})
}
