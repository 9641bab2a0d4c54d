package entities

// MajorStage says which school a major belongs to.
type MajorStage string

const (
	MajorUniversity MajorStage = "university"
	MajorGraduate   MajorStage = "graduate"
)

// Major is an authored field of study, gated by a smarts threshold.
type Major struct {
	ID             string     `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	Description    string     `json:"description,omitempty" yaml:"description,omitempty"`
	Stage          MajorStage `json:"stage" yaml:"stage"`
	RequiredSmarts int        `json:"required_smarts" yaml:"required_smarts"`
	Difficulty     string     `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// Requirements expresses the major's entry gate.
func (m Major) Requirements() Requirements {
	return Requirements{
		{Kind: RequireMinSmarts, Value: int64(m.RequiredSmarts)},
	}
}
