package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seat(name, cards string, busted bool) Participant {
	return Participant{Name: name, Hand: handOf(cards), Busted: busted}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		player Participant
		dealer Participant
		want   OutcomeKind
		net    int
	}{
		{
			name:   "player bust beats dealer bust",
			player: seat("Alice", "ThKdQs", true),
			dealer: seat("Dealer", "Th6dKs", true),
			want:   OutcomeBust,
			net:    -1,
		},
		{
			name:   "dealer bust",
			player: seat("Alice", "Th2d", false),
			dealer: seat("Dealer", "Th6dKs", true),
			want:   OutcomeDealerBust,
			net:    1,
		},
		{
			name:   "higher value wins",
			player: seat("Alice", "ThQd", false),
			dealer: seat("Dealer", "Th8d", false),
			want:   OutcomeWin,
			net:    1,
		},
		{
			name:   "lower value loses",
			player: seat("Alice", "Th7d", false),
			dealer: seat("Dealer", "Th8d", false),
			want:   OutcomeLose,
			net:    -1,
		},
		{
			name:   "equal values push",
			player: seat("Alice", "9h8d", false),
			dealer: seat("Dealer", "Th7d", false),
			want:   OutcomePush,
			net:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Evaluate(tt.player, tt.dealer)
			assert.Equal(t, tt.want, o.Kind)
			assert.Equal(t, tt.net, o.Net())
			assert.Equal(t, tt.player.Hand.Value(), o.PlayerValue)
			assert.Equal(t, tt.dealer.Hand.Value(), o.DealerValue)
			assert.Contains(t, o.String(), "Alice")
		})
	}
}

func TestOutcomeKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "bust", OutcomeBust.String())
	assert.Equal(t, "dealerBust", OutcomeDealerBust.String())
	assert.Equal(t, "win", OutcomeWin.String())
	assert.Equal(t, "lose", OutcomeLose.String())
	assert.Equal(t, "push", OutcomePush.String())
}
