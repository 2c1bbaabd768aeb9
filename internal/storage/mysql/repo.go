package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"flex_reviews/internal/domain"
)

func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func valBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertReviews(ctx context.Context, propertyID string, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*13)
	for _, rv := range rs {
		cats, _ := json.Marshal(rv.Categories)
		values = append(values, "(?,?,?,?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			rv.ID,
			propertyID,
			rv.Type,
			rv.Status,
			valInt(rv.Rating),
			rv.PublicReview,
			string(cats),
			rv.SubmittedAt,
			rv.GuestName,
			rv.ListingName,
			rv.Channel,
			valBool(rv.IsApproved),
			valBool(rv.IsPublic),
		)
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) RecordAction(ctx context.Context, propertyID string, reviewID int64, action string) error {
	if _, err := r.db.ExecContext(ctx, insertActionSQL, propertyID, reviewID, action); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, applyActionSQL, action, action, propertyID, reviewID)
	return err
}

func (r *Repo) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var (
			rating     sql.NullInt64
			catsRaw    []byte
			isApproved sql.NullBool
			isPublic   sql.NullBool
		)
		if err := rows.Scan(
			&rv.ID,
			&rv.Type,
			&rv.Status,
			&rating,
			&rv.PublicReview,
			&catsRaw,
			&rv.SubmittedAt,
			&rv.GuestName,
			&rv.ListingName,
			&rv.Channel,
			&isApproved,
			&isPublic,
		); err != nil {
			return nil, err
		}
		if rating.Valid {
			n := int(rating.Int64)
			rv.Rating = &n
		}
		if len(catsRaw) > 0 {
			_ = json.Unmarshal(catsRaw, &rv.Categories)
		}
		if isApproved.Valid {
			b := isApproved.Bool
			rv.IsApproved = &b
		}
		if isPublic.Valid {
			b := isPublic.Bool
			rv.IsPublic = &b
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
