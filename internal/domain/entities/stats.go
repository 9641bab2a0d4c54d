// Package entities contains the core data model for a simulated life.
package entities

// Bounds applied to every bounded stat after each additive update.
const (
	StatMin = 0
	StatMax = 100
)

// Stats holds the numeric attributes of a life. Happiness, health,
// smarts, looks, fame and approval stay within [StatMin, StatMax];
// money is unbounded and may go negative. Fame and approval are nil
// until something touches them.
type Stats struct {
	Happiness int   `json:"happiness" yaml:"happiness"`
	Health    int   `json:"health" yaml:"health"`
	Smarts    int   `json:"smarts" yaml:"smarts"`
	Looks     int   `json:"looks" yaml:"looks"`
	Money     int64 `json:"money" yaml:"money"`
	Age       int   `json:"age" yaml:"age"`
	Fame      *int  `json:"fame,omitempty" yaml:"fame,omitempty"`
	Approval  *int  `json:"approval,omitempty" yaml:"approval,omitempty"`
}

// StatDelta is an additive change to Stats. Zero fields are no-ops.
// Stats are only ever mutated additively after character creation, so
// applying a delta is the single clamping point.
type StatDelta struct {
	Happiness int   `json:"happiness,omitempty" yaml:"happiness,omitempty"`
	Health    int   `json:"health,omitempty" yaml:"health,omitempty"`
	Smarts    int   `json:"smarts,omitempty" yaml:"smarts,omitempty"`
	Looks     int   `json:"looks,omitempty" yaml:"looks,omitempty"`
	Money     int64 `json:"money,omitempty" yaml:"money,omitempty"`
	Fame      int   `json:"fame,omitempty" yaml:"fame,omitempty"`
	Approval  int   `json:"approval,omitempty" yaml:"approval,omitempty"`
}

// IsZero reports whether the delta changes nothing.
func (d StatDelta) IsZero() bool {
	return d == StatDelta{}
}

// Apply adds d to s, re-clamping every bounded stat. Money is added
// without bounds. Fame and approval are materialized on first touch
// and clamped thereafter.
func (s *Stats) Apply(d StatDelta) {
	s.Happiness = ClampStat(s.Happiness + d.Happiness)
	s.Health = ClampStat(s.Health + d.Health)
	s.Smarts = ClampStat(s.Smarts + d.Smarts)
	s.Looks = ClampStat(s.Looks + d.Looks)
	s.Money += d.Money

	if d.Fame != 0 || s.Fame != nil {
		v := ClampStat(intOrZero(s.Fame) + d.Fame)
		s.Fame = &v
	}
	if d.Approval != 0 || s.Approval != nil {
		v := ClampStat(intOrZero(s.Approval) + d.Approval)
		s.Approval = &v
	}
}

// ClampStat clamps v to [StatMin, StatMax].
func ClampStat(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
