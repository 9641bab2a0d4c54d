package entities

// Job is the character's active employment. At most one job exists at
// a time; applying for a new one requires quitting first. Salary is
// annual and accrues on every turn advance.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Salary      int64  `json:"salary"`
	YearsWorked int    `json:"years_worked"`
	Category    string `json:"category,omitempty"`
}
