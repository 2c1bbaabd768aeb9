package reviews_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flex_reviews/internal/domain"
	"flex_reviews/internal/reviews"
)

func hostawaySet(n int) []domain.Review {
	out := make([]domain.Review, n)
	for i := range out {
		out[i] = domain.Review{ID: int64(7453 + i), Channel: domain.ChannelHostaway}
	}
	return out
}

func googleSet(ids ...int64) []domain.Review {
	out := make([]domain.Review, len(ids))
	for i, id := range ids {
		out[i] = domain.Review{ID: id, Channel: domain.ChannelGoogle}
	}
	return out
}

func assertUniqueIDs(t *testing.T, rs []domain.Review) {
	t.Helper()
	seen := map[int64]bool{}
	for _, rv := range rs {
		if seen[rv.ID] {
			t.Fatalf("duplicate id %d in merged collection", rv.ID)
		}
		seen[rv.ID] = true
	}
}

func TestMergeUnique_DisjointSets(t *testing.T) {
	existing := hostawaySet(8)
	incoming := googleSet(20001, 20002, 20003, 20004)
	alloc := reviews.NewAllocator(reviews.MaxID(existing) + 1)

	merged := reviews.MergeUnique(existing, incoming, alloc)

	require.Len(t, merged, 12)
	assertUniqueIDs(t, merged)
	for i, rv := range existing {
		assert.Equal(t, rv.ID, merged[i].ID, "existing order must be preserved")
	}
	for i, rv := range incoming {
		assert.Equal(t, rv.ID, merged[8+i].ID, "admitted order must be preserved")
	}
}

func TestMergeUnique_EmptyIncoming(t *testing.T) {
	existing := hostawaySet(3)
	alloc := reviews.NewAllocator(reviews.MaxID(existing) + 1)
	merged := reviews.MergeUnique(existing, nil, alloc)
	assert.Equal(t, existing, merged)
}

func TestMergeUnique_SameChannelCollisionIsDropped(t *testing.T) {
	existing := googleSet(20001, 20002)
	incoming := googleSet(20001, 20003)
	alloc := reviews.NewAllocator(reviews.MaxID(existing) + 1)

	merged := reviews.MergeUnique(existing, incoming, alloc)

	require.Len(t, merged, 3, "20001 is a same-channel duplicate")
	assert.Equal(t, int64(20003), merged[2].ID)
}

func TestMergeUnique_CrossChannelCollisionIsReassigned(t *testing.T) {
	existing := hostawaySet(2) // ids 7453, 7454
	incoming := googleSet(7453)
	alloc := reviews.NewAllocator(reviews.MaxID(existing) + 1)

	merged := reviews.MergeUnique(existing, incoming, alloc)

	require.Len(t, merged, 3)
	assertUniqueIDs(t, merged)
	assert.NotEqual(t, int64(7453), merged[2].ID)
	assert.Equal(t, domain.ChannelGoogle, merged[2].Channel)
}

func TestMergeUnique_Idempotent(t *testing.T) {
	existing := hostawaySet(4)
	incoming := googleSet(20001, 20002)
	alloc := reviews.NewAllocator(reviews.MaxID(existing) + 1)
	merged := reviews.MergeUnique(existing, incoming, alloc)

	again := reviews.MergeUnique(merged, incoming, reviews.NewAllocator(reviews.MaxID(merged)+1))
	assert.Equal(t, merged, again, "re-merging the same batch must admit nothing")
}

func TestMergeUnique_UnsetChannelCountsAsHostaway(t *testing.T) {
	existing := []domain.Review{{ID: 5}} // channel unset -> hostaway
	incoming := []domain.Review{{ID: 5, Channel: domain.ChannelHostaway}}
	alloc := reviews.NewAllocator(reviews.MaxID(existing) + 1)

	merged := reviews.MergeUnique(existing, incoming, alloc)
	assert.Len(t, merged, 1, "same-channel duplicate via the default channel")
}
