package palette

// State is everything the palette screen owns: the palette itself and the
// optional generated snippet. All mutation goes through its methods.
type State struct {
	palette *Palette
	snippet *Snippet
}

// Snapshot is an immutable copy of State handed to the rendering layer.
type Snapshot struct {
	Columns int
	Colors  []Color
	Locked  []bool
	Snippet *Snippet
}

// NewState starts a session with a fresh palette of the given size.
func NewState(columns int, src Source) *State {
	return &State{palette: New(columns, src)}
}

// Palette exposes the underlying palette for read access.
func (s *State) Palette() *Palette {
	return s.palette
}

// Columns returns the current column count.
func (s *State) Columns() int {
	return s.palette.Len()
}

// Resize changes the column count, clamped to MinColumns.
func (s *State) Resize(n int) {
	s.palette.Resize(n)
}

// Regenerate redraws unlocked colors and returns how many changed.
func (s *State) Regenerate() int {
	return s.palette.Regenerate()
}

// ToggleLock flips the lock at i and returns the new value.
func (s *State) ToggleLock(i int) bool {
	return s.palette.ToggleLock(i)
}

// GenerateSnippet stores the example snippet for the palette entry at i,
// replacing any previous one. Out-of-range indices leave the state unchanged
// and return false.
func (s *State) GenerateSnippet(i int) (Snippet, bool) {
	if i < 0 || i >= s.palette.Len() {
		return Snippet{}, false
	}
	sn := GenerateSnippet(s.palette.Color(i), i)
	s.snippet = &sn
	return sn, true
}

// ClearSnippet removes the stored snippet.
func (s *State) ClearSnippet() {
	s.snippet = nil
}

// Snippet returns the stored snippet, if any.
func (s *State) Snippet() (Snippet, bool) {
	if s.snippet == nil {
		return Snippet{}, false
	}
	return *s.snippet, true
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Columns: s.palette.Len(),
		Colors:  s.palette.Colors(),
		Locked:  s.palette.LockedFlags(),
	}
	if s.snippet != nil {
		sn := *s.snippet
		snap.Snippet = &sn
	}
	return snap
}
