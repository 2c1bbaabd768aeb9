package reviews

import "flex_reviews/internal/domain"

// ApplyAction applies one moderation action to the review with the
// given ID and returns the updated collection. Only the two local
// flags ever change; the source-reported status is untouched. Unknown
// actions and unknown IDs leave the collection as-is rather than
// erroring.
func ApplyAction(rs []domain.Review, id int64, action string) []domain.Review {
	out := make([]domain.Review, len(rs))
	copy(out, rs)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch action {
		case domain.ActionApprove:
			out[i].IsApproved = pbool(true)
		case domain.ActionReject:
			out[i].IsApproved = pbool(false)
		case domain.ActionPublish:
			out[i].IsPublic = pbool(true)
		case domain.ActionUnpublish:
			out[i].IsPublic = pbool(false)
		}
		break
	}
	return out
}

// KnownAction reports whether action is one of the four moderation
// verbs. Unknown actions are still accepted as no-ops downstream; this
// only exists for advisory messages.
func KnownAction(action string) bool {
	switch action {
	case domain.ActionApprove, domain.ActionReject, domain.ActionPublish, domain.ActionUnpublish:
		return true
	}
	return false
}

// Public selects the reviews shown on the public property page:
// approved and public only.
func Public(rs []domain.Review) []domain.Review {
	out := make([]domain.Review, 0, len(rs))
	for _, rv := range rs {
		if rv.IsApproved != nil && *rv.IsApproved && rv.IsPublic != nil && *rv.IsPublic {
			out = append(out, rv)
		}
	}
	return out
}
