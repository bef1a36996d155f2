package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoteDelta(t *testing.T) {
	up := int16(1)
	down := int16(-1)

	tests := []struct {
		name  string
		prior *int16
		next  int16
		want  int16
	}{
		{"first upvote", nil, 1, 1},
		{"first downvote", nil, -1, -1},
		{"remove without prior", nil, 0, 0},
		{"repeat upvote", &up, 1, 0},
		{"repeat downvote", &down, -1, 0},
		{"upvote to downvote", &up, -1, -2},
		{"downvote to upvote", &down, 1, 2},
		{"remove upvote", &up, 0, -1},
		{"remove downvote", &down, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, VoteDelta(tt.prior, tt.next))
		})
	}
}

func TestVoteKindValid(t *testing.T) {
	require.True(t, VoteKindPost.Valid())
	require.True(t, VoteKindComment.Valid())
	require.True(t, VoteKindCommunityLink.Valid())
	require.False(t, VoteKind("user").Valid())
	require.False(t, VoteKind("").Valid())
}
