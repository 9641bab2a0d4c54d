package entities

// CareerPath is an authored job opening. Salaries are annual; the
// character is hired at BaseSalary and raises move toward MaxSalary.
type CareerPath struct {
	Title             string         `json:"title" yaml:"title"`
	BaseSalary        int64          `json:"base_salary" yaml:"base_salary"`
	MaxSalary         int64          `json:"max_salary" yaml:"max_salary"`
	Category          string         `json:"category" yaml:"category"`
	MinAge            int            `json:"min_age" yaml:"min_age"`
	RequiredEducation EducationLevel `json:"required_education" yaml:"required_education"`
	RequiredMajors    []string       `json:"required_majors,omitempty" yaml:"required_majors,omitempty"`
}

// Requirements expresses the career's gates as a structured set.
func (c CareerPath) Requirements() Requirements {
	reqs := Requirements{
		{Kind: RequireMinAge, Value: int64(c.MinAge)},
		{Kind: RequireMinEducation, Level: c.RequiredEducation},
	}
	if len(c.RequiredMajors) > 0 {
		reqs = append(reqs, Requirement{Kind: RequireMajorOneOf, Majors: c.RequiredMajors})
	}
	return reqs
}
