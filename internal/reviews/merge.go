package reviews

import "flex_reviews/internal/domain"

// MergeUnique combines an existing collection with candidate reviews
// from one fetch, enforcing ID uniqueness across the result:
//
//   - a candidate whose ID matches an existing review on the same
//     channel is a duplicate of that review and is dropped
//   - a candidate whose ID collides with any other existing ID is kept
//     but reassigned a fresh ID from alloc
//
// Output order is existing first, then admitted candidates, each group
// in its original order. Merging a merged result again admits nothing.
func MergeUnique(existing, incoming []domain.Review, alloc *Allocator) []domain.Review {
	out := make([]domain.Review, 0, len(existing)+len(incoming))
	out = append(out, existing...)

	perChannel := make(map[string]map[int64]struct{})
	claim := func(ch string, id int64) {
		alloc.Claim(id)
		m := perChannel[ch]
		if m == nil {
			m = make(map[int64]struct{})
			perChannel[ch] = m
		}
		m[id] = struct{}{}
	}

	for _, rv := range existing {
		claim(channelOf(rv), rv.ID)
	}

	for _, cand := range incoming {
		ch := channelOf(cand)
		if _, dup := perChannel[ch][cand.ID]; dup {
			continue
		}
		if alloc.Used(cand.ID) {
			cand.ID = alloc.Next()
			claim(ch, cand.ID)
		} else {
			claim(ch, cand.ID)
		}
		out = append(out, cand)
	}
	return out
}

func channelOf(rv domain.Review) string {
	if rv.Channel == "" {
		return domain.ChannelHostaway
	}
	return rv.Channel
}

// MaxID returns the largest ID in rs, or 0 for an empty collection.
// Handy as an allocator seed when merging into an existing set.
func MaxID(rs []domain.Review) int64 {
	var max int64
	for _, rv := range rs {
		if rv.ID > max {
			max = rv.ID
		}
	}
	return max
}
