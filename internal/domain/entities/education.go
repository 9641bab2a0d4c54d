package entities

// EducationLevel is an ordered schooling stage.
type EducationLevel string

const (
	EducationNone       EducationLevel = "none"
	EducationElementary EducationLevel = "elementary"
	EducationMiddle     EducationLevel = "middle"
	EducationHigh       EducationLevel = "high"
	EducationUniversity EducationLevel = "university"
	EducationGraduate   EducationLevel = "graduate"
)

var educationRank = map[EducationLevel]int{
	EducationNone:       0,
	EducationElementary: 1,
	EducationMiddle:     2,
	EducationHigh:       3,
	EducationUniversity: 4,
	EducationGraduate:   5,
}

// ValidEducationLevel reports whether l is a known level.
func ValidEducationLevel(l EducationLevel) bool {
	_, ok := educationRank[l]
	return ok
}

// AtLeast reports whether l is the same level as other or beyond it.
func (l EducationLevel) AtLeast(other EducationLevel) bool {
	return educationRank[l] >= educationRank[other]
}

// Education tracks schooling progress. Compulsory levels advance
// automatically at fixed ages; university and graduate school are
// voluntary and reset the graduated flag on enrollment.
type Education struct {
	Level     EducationLevel `json:"level"`
	Major     string         `json:"major,omitempty"`
	Graduated bool           `json:"graduated"`
}

// CompulsoryStageAt returns the schooling level that starts at the
// given age, if any. Ages 6, 11 and 14 begin elementary, middle and
// high school regardless of player action.
func CompulsoryStageAt(age int) (EducationLevel, bool) {
	switch age {
	case 6:
		return EducationElementary, true
	case 11:
		return EducationMiddle, true
	case 14:
		return EducationHigh, true
	}
	return "", false
}
