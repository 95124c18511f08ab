package model

import (
	"strings"

	"github.com/google/uuid"

	user "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
)

// IDSeparator joins the two sorted participant uids into the canonical
// conversation id. uuid strings never contain it, so splitting is safe.
const IDSeparator = "_"

// CanonicalID derives the single conversation id for an unordered pair:
// sort the two uids lexicographically, join with the separator. Pure and
// stable across restarts, so it doubles as the existence probe for a
// conversation before any message is sent.
func CanonicalID(a, b uuid.UUID) string {
	ua, ub := a.String(), b.String()
	if ua > ub {
		ua, ub = ub, ua
	}
	return ua + IDSeparator + ub
}

// ParticipantIDs splits a canonical id back into its two uids.
func ParticipantIDs(conversationID string) (uuid.UUID, uuid.UUID, bool) {
	parts := strings.Split(conversationID, IDSeparator)
	if len(parts) != 2 {
		return uuid.Nil, uuid.Nil, false
	}
	a, errA := uuid.Parse(parts[0])
	b, errB := uuid.Parse(parts[1])
	if errA != nil || errB != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return a, b, true
}

// HasParticipant reports whether uid is one of the two parties encoded in
// the canonical id.
func HasParticipant(conversationID string, uid uuid.UUID) bool {
	a, b, ok := ParticipantIDs(conversationID)
	return ok && (a == uid || b == uid)
}

// State tags the conversation lifecycle. A conversation has no explicit
// create operation: it is Transient until the first message is appended,
// Persisted afterwards. Only Persisted conversations are listable.
type State string

const (
	StateTransient State = "transient"
	StatePersisted State = "persisted"
)

// Conversation is a view reconstructed on every query from the message
// log's keys; it is never stored directly.
type Conversation struct {
	ID           string          `json:"id"`
	State        State           `json:"state"`
	Participants []*user.Profile `json:"participants"`
	LastMessage  *Message        `json:"lastMessage"`
}
