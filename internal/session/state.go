// Package session holds the per-generator mutable state: the seeded random
// stream and the set of names already handed out.
package session

import "namecraft/internal/random"

type State struct {
	seed    int64
	stream  *random.Stream
	tracker *Tracker
}

func NewState(seed int64) *State {
	return &State{
		seed:    seed,
		stream:  random.New(seed),
		tracker: NewTracker(),
	}
}

func (s *State) Seed() int64 {
	return s.seed
}

func (s *State) Stream() *random.Stream {
	return s.stream
}

func (s *State) Tracker() *Tracker {
	return s.tracker
}

// Reset clears the tracker and restarts the stream from the original seed,
// so the next calls replay the sequence produced after construction.
func (s *State) Reset() {
	s.tracker.Clear()
	s.stream = random.New(s.seed)
}
