package rng

// Replay is a deterministic Rand that cycles through fixed sequences. It is
// meant for tests that need exact control over every draw.
type Replay struct {
	floats []float64
	ints   []int
	fi     int
	ii     int
}

// NewReplay cycles through floats for Float64 (and Uint64). Intn draws are
// zero until set with WithInts.
func NewReplay(floats ...float64) *Replay {
	if len(floats) == 0 {
		floats = []float64{0}
	}
	return &Replay{floats: floats}
}

// WithInts sets the sequence cycled by Intn. Each value is reduced modulo n.
func (r *Replay) WithInts(ints ...int) *Replay {
	r.ints = ints
	r.ii = 0
	return r
}

func (r *Replay) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *Replay) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (r *Replay) Uint64() uint64 {
	return uint64(r.Float64()*(1<<53)) << 11
}

// Seed rewinds both sequences.
func (r *Replay) Seed(uint64) {
	r.fi = 0
	r.ii = 0
}

// Draws reports how many Float64 and Intn values have been consumed.
func (r *Replay) Draws() (floats, ints int) {
	return r.fi, r.ii
}
