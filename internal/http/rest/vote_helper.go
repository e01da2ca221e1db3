package rest

// applyVote computes the next ledger state for one user on one review.
// current is the user's existing vote ("" for none); direction is the
// incoming vote. It returns the resulting vote ("" when toggled off)
// and the counter deltas to apply.
//
// Same direction twice toggles the vote off; the opposite direction
// switches it, moving one count from each counter.
func applyVote(current, direction string) (next string, dUp, dDown int) {
	switch {
	case current == "":
		next = direction
		if direction == "up" {
			dUp = 1
		} else {
			dDown = 1
		}
	case current == direction:
		next = ""
		if direction == "up" {
			dUp = -1
		} else {
			dDown = -1
		}
	default:
		next = direction
		if direction == "up" {
			dUp, dDown = 1, -1
		} else {
			dUp, dDown = -1, 1
		}
	}
	return next, dUp, dDown
}
