package rest

import "testing"

func TestApplyVote(t *testing.T) {
	testCases := []struct {
		name      string
		current   string
		direction string
		wantNext  string
		wantUp    int
		wantDown  int
	}{
		{"new upvote", "", "up", "up", 1, 0},
		{"new downvote", "", "down", "down", 0, 1},
		{"toggle upvote off", "up", "up", "", -1, 0},
		{"toggle downvote off", "down", "down", "", 0, -1},
		{"switch up to down", "up", "down", "down", -1, 1},
		{"switch down to up", "down", "up", "up", 1, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, dUp, dDown := applyVote(tc.current, tc.direction)
			if next != tc.wantNext || dUp != tc.wantUp || dDown != tc.wantDown {
				t.Errorf("applyVote(%q, %q) = (%q, %d, %d); want (%q, %d, %d)",
					tc.current, tc.direction, next, dUp, dDown, tc.wantNext, tc.wantUp, tc.wantDown)
			}
		})
	}
}

// Voting the same direction twice must always land back on no vote with
// the counters unchanged overall.
func TestApplyVoteToggleRoundTrip(t *testing.T) {
	for _, direction := range []string{"up", "down"} {
		next, dUp1, dDown1 := applyVote("", direction)
		if next != direction {
			t.Fatalf("first vote %q gave state %q", direction, next)
		}
		next, dUp2, dDown2 := applyVote(next, direction)
		if next != "" {
			t.Errorf("second %q vote should toggle off, got %q", direction, next)
		}
		if dUp1+dUp2 != 0 || dDown1+dDown2 != 0 {
			t.Errorf("toggle round trip for %q changed counters: up %d, down %d",
				direction, dUp1+dUp2, dDown1+dDown2)
		}
	}
}

// A single vote action never changes the total number of votes cast by
// the user by more than one in either counter.
func TestApplyVoteDeltaBounds(t *testing.T) {
	for _, current := range []string{"", "up", "down"} {
		for _, direction := range []string{"up", "down"} {
			_, dUp, dDown := applyVote(current, direction)
			if dUp < -1 || dUp > 1 || dDown < -1 || dDown > 1 {
				t.Errorf("applyVote(%q, %q) deltas out of range: up %d, down %d",
					current, direction, dUp, dDown)
			}
		}
	}
}
