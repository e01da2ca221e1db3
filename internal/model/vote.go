package model

import "github.com/google/uuid"

type Vote struct {
	ReviewID uuid.UUID `json:"review_id"`
	UserID   uuid.UUID `json:"user_id"`
	Vote     string    `json:"vote"`
}

type VoteRequest struct {
	Vote string `json:"vote" validate:"required,votedir"`
}

// VoteResult is returned after every vote mutation: the fresh counters
// plus the caller's resulting vote (nil after a toggle-off).
type VoteResult struct {
	Success    bool    `json:"success"`
	Upvotes    int     `json:"upvotes"`
	Downvotes  int     `json:"downvotes"`
	TotalVotes int     `json:"totalVotes"`
	UserVote   *string `json:"userVote"`
}
