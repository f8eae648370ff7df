package domain

import "testing"

func TestSwapStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to SwapStatus
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusRejected, false},
		{StatusAccepted, StatusPending, false},
		{StatusRejected, StatusAccepted, false},
		{StatusRejected, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusAccepted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestSwapStatus_Terminal(t *testing.T) {
	if StatusPending.Terminal() || StatusAccepted.Terminal() {
		t.Error("pending and accepted must not be terminal")
	}
	if !StatusRejected.Terminal() || !StatusCompleted.Terminal() {
		t.Error("rejected and completed must be terminal")
	}
}

func TestSwapRequest_Counterpart(t *testing.T) {
	request := &SwapRequest{FromUser: "a", ToUser: "b"}

	if other, ok := request.Counterpart("a"); !ok || other != "b" {
		t.Errorf("expected counterpart b, got %q (ok=%v)", other, ok)
	}
	if other, ok := request.Counterpart("b"); !ok || other != "a" {
		t.Errorf("expected counterpart a, got %q (ok=%v)", other, ok)
	}
	if _, ok := request.Counterpart("c"); ok {
		t.Error("expected no counterpart for a stranger")
	}
	if !request.Participant("a") || !request.Participant("b") || request.Participant("c") {
		t.Error("participant check mismatch")
	}
}

func TestUser_SkillSets(t *testing.T) {
	user := &User{
		Name:          "Dana",
		SkillsOffered: []string{"Go", "SQL"},
		SkillsWanted:  []string{"Rust"},
		Availability:  []string{"Weekends", "Evenings"},
	}

	if !user.Offers("Go") || user.Offers("go") {
		t.Error("offered skill match must be exact")
	}
	if !user.Wants("Rust") || user.Wants("Go") {
		t.Error("wanted skill match mismatch")
	}
	if !user.MatchesSearch("sql") || !user.MatchesSearch("dan") || user.MatchesSearch("python") {
		t.Error("search match mismatch")
	}
	if !user.AvailableDuring("weekend") || user.AvailableDuring("mornings") {
		t.Error("availability match mismatch")
	}
}
