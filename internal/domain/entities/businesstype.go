package entities

// BusinessType is an authored venture the character can found. The
// startup cost becomes the initial business value; revenue starts at
// BaseRevenue and reputation at 50.
type BusinessType struct {
	ID                string         `json:"id" yaml:"id"`
	Name              string         `json:"name" yaml:"name"`
	Description       string         `json:"description,omitempty" yaml:"description,omitempty"`
	StartupCost       int64          `json:"startup_cost" yaml:"startup_cost"`
	BaseRevenue       int64          `json:"base_revenue" yaml:"base_revenue"`
	BaseEmployees     int            `json:"base_employees" yaml:"base_employees"`
	MinAge            int            `json:"min_age" yaml:"min_age"`
	RequiredEducation EducationLevel `json:"required_education,omitempty" yaml:"required_education,omitempty"`
}

// StartingReputation is the reputation every new business opens with.
const StartingReputation = 50

// Requirements expresses the founding gates as a structured set.
func (t BusinessType) Requirements() Requirements {
	reqs := Requirements{
		{Kind: RequireMinAge, Value: int64(t.MinAge)},
		{Kind: RequireMinMoney, Value: t.StartupCost},
	}
	if t.RequiredEducation != "" {
		reqs = append(reqs, Requirement{Kind: RequireMinEducation, Level: t.RequiredEducation})
	}
	return reqs
}

// Found creates the business the type describes. The caller debits the
// startup cost and assigns the ID.
func (t BusinessType) Found(id string) Business {
	return Business{
		ID:         id,
		Name:       t.Name,
		Type:       t.ID,
		Value:      t.StartupCost,
		Revenue:    t.BaseRevenue,
		Employees:  t.BaseEmployees,
		Reputation: StartingReputation,
	}
}
