package pointer

// State is the last known cursor position in two normalizations:
// X/Y in [-0.5, 0.5] (top-left is -0.5,-0.5) drive parallax; NDCX/NDCY in [-1, 1] (y up) drive ray casting.
type State struct {
	X    float32
	Y    float32
	NDCX float32
	NDCY float32
}

// Tracker records pointer-move notifications. Only the latest position is kept;
// moves between two frames overwrite each other.
type Tracker struct {
	state State
	moves uint64
}

// NewTracker returns a tracker with the pointer at the viewport center.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Move updates the state from viewport pixel coordinates. No validation: a zero-sized
// viewport yields non-finite values, which is the host's problem to prevent.
func (t *Tracker) Move(px, py, width, height float32) {
	fx := px / width
	fy := py / height
	t.state = State{
		X:    fx - 0.5,
		Y:    fy - 0.5,
		NDCX: fx*2 - 1,
		NDCY: -fy*2 + 1,
	}
	t.moves++
}

// State returns a snapshot of the current pointer state.
func (t *Tracker) State() State {
	return t.state
}

// Moves counts notifications received so far.
func (t *Tracker) Moves() uint64 {
	return t.moves
}
