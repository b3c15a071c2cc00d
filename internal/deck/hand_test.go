package deck

import "testing"

func handOf(ranks ...Rank) *Hand {
	h := NewHand(10)
	for _, r := range ranks {
		h.AddCard(NewCard(r, Spades))
	}
	return h
}

func TestHandTotals(t *testing.T) {
	tests := []struct {
		name   string
		hand   *Hand
		totals []int
	}{
		{"no aces", handOf(Ten, Six), []int{16}},
		{"one ace", handOf(Ace, Six), []int{7, 17}},
		{"two aces", handOf(Ace, Ace), []int{2, 12, 22}},
		{"ace after draw", handOf(Ace, Six, Ten), []int{17, 27}},
	}

	for _, tt := range tests {
		got := tt.hand.Totals()
		if len(got) != len(tt.totals) {
			t.Errorf("%s: expected totals %v, got %v", tt.name, tt.totals, got)
			continue
		}
		for i := range got {
			if got[i] != tt.totals[i] {
				t.Errorf("%s: expected totals %v, got %v", tt.name, tt.totals, got)
			}
		}
	}
}

func TestHandBestValue(t *testing.T) {
	tests := []struct {
		name string
		hand *Hand
		want int
	}{
		{"hard 16", handOf(Ten, Six), 16},
		{"soft 17 counts high", handOf(Ace, Six), 17},
		{"ace drops to 1 after draw", handOf(Ace, Six, Ten), 17},
		{"blackjack", handOf(Ace, King), 21},
		{"busted returns smallest", handOf(Ten, Six, Nine), 25},
		{"two aces", handOf(Ace, Ace), 12},
	}

	for _, tt := range tests {
		if got := tt.hand.BestValue(); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestHandIsSoft(t *testing.T) {
	if !handOf(Ace, Six).IsSoft() {
		t.Error("Expected A,6 to be soft 17")
	}
	if handOf(Ten, Seven).IsSoft() {
		t.Error("Expected T,7 to be hard 17")
	}
	// The ace can only count 1 here, so the 17 is hard. This is what lets
	// the dealer stand on A,6,T under hit-soft-17 rules.
	if handOf(Ace, Six, Ten).IsSoft() {
		t.Error("Expected A,6,T to be hard 17")
	}
	if !handOf(Ace, Ace).IsSoft() {
		t.Error("Expected A,A to be soft 12")
	}
}

func TestHandIsBust(t *testing.T) {
	if handOf(Ten, Six).IsBust() {
		t.Error("16 is not a bust")
	}
	if handOf(Ace, Ten, Ten).IsBust() {
		t.Error("A,T,T counts 21 with the ace low")
	}
	if !handOf(Ten, Six, Nine).IsBust() {
		t.Error("Expected 25 to bust")
	}
}

func TestHandIsNatural(t *testing.T) {
	if !handOf(Ace, King).IsNatural() {
		t.Error("Expected A,K to be a natural")
	}
	if handOf(Seven, Seven, Seven).IsNatural() {
		t.Error("21 in three cards is not a natural")
	}

	split := handOf(Ace, King)
	split.Split = true
	if split.IsNatural() {
		t.Error("21 on a split hand is not a natural")
	}
}

func TestHandCanSplit(t *testing.T) {
	if !handOf(Eight, Eight).CanSplit() {
		t.Error("Expected 8,8 to be splittable")
	}
	if !handOf(Ace, Ace).CanSplit() {
		t.Error("Expected A,A to be splittable")
	}
	if handOf(Eight, Nine).CanSplit() {
		t.Error("8,9 is not a pair")
	}
	if handOf(Eight, Eight, Eight).CanSplit() {
		t.Error("Three cards cannot split")
	}

	// Any two ten-value cards pair up
	h := NewHand(10)
	h.AddCard(NewCard(King, Spades))
	h.AddCard(NewCard(Jack, Hearts))
	if !h.CanSplit() {
		t.Error("Expected K,J to be splittable")
	}
}

func TestHandString(t *testing.T) {
	h := NewHand(10)
	h.AddCard(NewCard(Eight, Hearts))
	h.AddCard(NewCard(Eight, Spades))
	if got := h.String(); got != "8♥ 8♠ (16)" {
		t.Errorf("Expected %q, got %q", "8♥ 8♠ (16)", got)
	}
}
