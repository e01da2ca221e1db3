package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mvbakke/wcag-reviews/internal/model"
)

// VoteOnReviewRepo applies one vote mutation atomically. The review
// row is locked first, which both proves existence and serializes
// concurrent votes on the same review: the ledger change and the
// counter update commit together or not at all.
func (api *API) VoteOnReviewRepo(ctx context.Context, reviewID, userID uuid.UUID, direction string) (model.VoteResult, error) {
	var result model.VoteResult

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var up, down int
		err := tx.QueryRow(ctx,
			`SELECT upvotes, downvotes FROM reviews WHERE id = $1 FOR UPDATE`,
			reviewID,
		).Scan(&up, &down)
		if err == pgx.ErrNoRows {
			return ErrReviewNotFound
		}
		if err != nil {
			return err
		}

		current := ""
		err = tx.QueryRow(ctx,
			`SELECT vote FROM review_votes WHERE review_id = $1 AND user_id = $2`,
			reviewID, userID,
		).Scan(&current)
		if err != nil && err != pgx.ErrNoRows {
			return err
		}

		next, dUp, dDown := applyVote(current, direction)

		switch {
		case current == "":
			_, err = tx.Exec(ctx,
				`INSERT INTO review_votes (review_id, user_id, vote) VALUES ($1, $2, $3)`,
				reviewID, userID, next,
			)
		case next == "":
			_, err = tx.Exec(ctx,
				`DELETE FROM review_votes WHERE review_id = $1 AND user_id = $2`,
				reviewID, userID,
			)
		default:
			_, err = tx.Exec(ctx,
				`UPDATE review_votes SET vote = $3 WHERE review_id = $1 AND user_id = $2`,
				reviewID, userID, next,
			)
		}
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx,
			`UPDATE reviews SET upvotes = upvotes + $2, downvotes = downvotes + $3
             WHERE id = $1 RETURNING upvotes, downvotes`,
			reviewID, dUp, dDown,
		).Scan(&result.Upvotes, &result.Downvotes)
		if err != nil {
			return err
		}

		result.Success = true
		result.TotalVotes = result.Upvotes - result.Downvotes
		if next != "" {
			v := next
			result.UserVote = &v
		}
		return nil
	})

	return result, err
}
