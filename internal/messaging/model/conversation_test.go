package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CanonicalID_OrderIndependent(t *testing.T) {
	for i := 0; i < 50; i++ {
		a, b := uuid.New(), uuid.New()

		id := CanonicalID(a, b)
		assert.Equal(t, id, CanonicalID(b, a))
		assert.Equal(t, id, CanonicalID(a, b), "must be idempotent")
	}
}

func Test_CanonicalID_SortedJoin(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	assert.Equal(t, a.String()+"_"+b.String(), CanonicalID(b, a))
}

func Test_ParticipantIDs_RoundTrip(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	id := CanonicalID(a, b)

	gotA, gotB, ok := ParticipantIDs(id)
	require.True(t, ok)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, []uuid.UUID{gotA, gotB})

	assert.True(t, HasParticipant(id, a))
	assert.True(t, HasParticipant(id, b))
	assert.False(t, HasParticipant(id, uuid.New()))
}

func Test_ParticipantIDs_Malformed(t *testing.T) {
	_, _, ok := ParticipantIDs("not-a-conversation-id")
	assert.False(t, ok)

	_, _, ok = ParticipantIDs("junk_junk")
	assert.False(t, ok)
}
