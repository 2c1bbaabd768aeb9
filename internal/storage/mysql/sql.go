package mysql

// Multi-row insert; the suffix makes re-syncing the same review ID a
// metadata refresh that keeps the stored moderation flags when the new
// row carries none. Review IDs are only unique within one property's
// collection, so (property_id, id) is the key.
const insertReviewsPrefix = "INSERT INTO reviews\n  (id, property_id, `type`, status, rating, public_review, categories, submitted_at, guest_name, listing_name, channel, is_approved, is_public)\nVALUES "

const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  `type`        = VALUES(`type`),\n" +
	"  status        = VALUES(status),\n" +
	"  rating        = COALESCE(VALUES(rating), reviews.rating),\n" +
	"  public_review = VALUES(public_review),\n" +
	"  categories    = VALUES(categories),\n" +
	"  submitted_at  = VALUES(submitted_at),\n" +
	"  guest_name    = VALUES(guest_name),\n" +
	"  listing_name  = VALUES(listing_name),\n" +
	"  channel       = VALUES(channel),\n" +
	"  is_approved   = COALESCE(VALUES(is_approved), reviews.is_approved),\n" +
	"  is_public     = COALESCE(VALUES(is_public), reviews.is_public),\n" +
	"  updated_at    = CURRENT_TIMESTAMP\n"

const insertActionSQL = `
INSERT INTO moderation_log (property_id, review_id, action)
VALUES (?, ?, ?)
`

// Moderation flags are applied while reading so a restored collection
// reflects the latest recorded decision per review.
const applyActionSQL = `
UPDATE reviews
SET is_approved = CASE ?
      WHEN 'approve' THEN 1
      WHEN 'reject'  THEN 0
      ELSE is_approved END,
    is_public = CASE ?
      WHEN 'publish'   THEN 1
      WHEN 'unpublish' THEN 0
      ELSE is_public END
WHERE property_id = ? AND id = ?
`

const listReviewsSQL = `
SELECT
  id,
  ` + "`type`" + `,
  status,
  rating,
  public_review,
  categories,
  submitted_at,
  guest_name,
  listing_name,
  channel,
  is_approved,
  is_public
FROM reviews
WHERE property_id = ?
ORDER BY submitted_at DESC, id DESC
`
