package palette

const (
	// MinColumns is the smallest palette size.
	MinColumns = 1
	// DefaultColumns is the palette size a fresh session starts with.
	DefaultColumns = 5
)

// Palette is an ordered list of colors with an index-aligned lock flag per
// color. len(colors) == len(locked) >= MinColumns holds after every call.
type Palette struct {
	colors []Color
	locked []bool
	src    Source
}

// New creates a palette of random, unlocked colors. A nil source uses
// DefaultSource.
func New(columns int, src Source) *Palette {
	if src == nil {
		src = DefaultSource()
	}
	p := &Palette{src: src}
	p.Resize(columns)
	return p
}

// ClampColumns bounds n below by MinColumns.
func ClampColumns(n int) int {
	return max(n, MinColumns)
}

// Len returns the number of colors, which is also the column count.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Color returns the color at i.
func (p *Palette) Color(i int) Color {
	return p.colors[i]
}

// Locked reports whether the color at i is locked. Out-of-range indices are
// reported as unlocked.
func (p *Palette) Locked(i int) bool {
	if i < 0 || i >= len(p.locked) {
		return false
	}
	return p.locked[i]
}

// Colors returns a copy of the colors in display order.
func (p *Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

// LockedFlags returns a copy of the lock flags.
func (p *Palette) LockedFlags() []bool {
	return append([]bool(nil), p.locked...)
}

// LockedCount returns how many colors are locked.
func (p *Palette) LockedCount() int {
	n := 0
	for _, l := range p.locked {
		if l {
			n++
		}
	}
	return n
}

// Resize grows or shrinks the palette to n columns (at least MinColumns).
// Growing appends fresh unlocked colors; shrinking drops the tail. Retained
// entries keep both their color and their lock flag.
func (p *Palette) Resize(n int) {
	n = ClampColumns(n)
	if n <= len(p.colors) {
		p.colors = p.colors[:n:n]
		p.locked = p.locked[:n:n]
		return
	}
	for len(p.colors) < n {
		p.colors = append(p.colors, RandomColor(p.src))
		p.locked = append(p.locked, false)
	}
}

// Regenerate redraws every unlocked color and returns how many were replaced.
func (p *Palette) Regenerate() int {
	n := 0
	for i := range p.colors {
		if p.locked[i] {
			continue
		}
		p.colors[i] = RandomColor(p.src)
		n++
	}
	return n
}

// ToggleLock flips the lock flag at i and returns the new value. Indices
// outside the palette are ignored.
func (p *Palette) ToggleLock(i int) bool {
	if i < 0 || i >= len(p.locked) {
		return false
	}
	p.locked[i] = !p.locked[i]
	return p.locked[i]
}
