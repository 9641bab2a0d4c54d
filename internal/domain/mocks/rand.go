// Package mocks provides mock implementations for testing.
package mocks

// Rand is a mock implementation of ports.Rand that replays scripted
// values. When a script runs out the last value repeats; an empty
// script yields zeros.
type Rand struct {
	Floats []float64
	Ints   []int

	floatIdx int
	intIdx   int
}

// Float64 returns the next scripted float.
func (m *Rand) Float64() float64 {
	if len(m.Floats) == 0 {
		return 0
	}
	if m.floatIdx >= len(m.Floats) {
		return m.Floats[len(m.Floats)-1]
	}
	v := m.Floats[m.floatIdx]
	m.floatIdx++
	return v
}

// IntN returns the next scripted int modulo n.
func (m *Rand) IntN(n int) int {
	if len(m.Ints) == 0 {
		return 0
	}
	var v int
	if m.intIdx >= len(m.Ints) {
		v = m.Ints[len(m.Ints)-1]
	} else {
		v = m.Ints[m.intIdx]
		m.intIdx++
	}
	return v % n
}
