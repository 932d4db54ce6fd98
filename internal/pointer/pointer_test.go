package pointer

import "testing"

func TestMoveNormalizes(t *testing.T) {
	cases := []struct {
		name   string
		px, py float32
		want   State
	}{
		{"top-left", 0, 0, State{X: -0.5, Y: -0.5, NDCX: -1, NDCY: 1}},
		{"center", 400, 300, State{X: 0, Y: 0, NDCX: 0, NDCY: 0}},
		{"bottom-right", 800, 600, State{X: 0.5, Y: 0.5, NDCX: 1, NDCY: -1}},
		{"quarter", 200, 450, State{X: -0.25, Y: 0.25, NDCX: -0.5, NDCY: -0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker()
			tr.Move(tc.px, tc.py, 800, 600)
			if got := tr.State(); got != tc.want {
				t.Errorf("Expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestLastWriteWins(t *testing.T) {
	tr := NewTracker()
	tr.Move(10, 10, 100, 100)
	tr.Move(90, 20, 100, 100)
	tr.Move(50, 50, 100, 100)
	if got := tr.State(); got != (State{}) {
		t.Errorf("Expected only the last move to survive, got %+v", got)
	}
	if tr.Moves() != 3 {
		t.Errorf("Expected 3 moves counted, got %d", tr.Moves())
	}
}

func TestInitialStateCentered(t *testing.T) {
	if got := NewTracker().State(); got != (State{}) {
		t.Errorf("Expected zero state, got %+v", got)
	}
}
