package entities

// DefaultMajors is the builtin field-of-study catalog, seeded into the
// catalog store by `dreamlife catalog init` and used directly when no
// catalog database exists.
var DefaultMajors = []Major{
	// University
	{ID: "computer_science", Name: "Computer Science", Description: "Programming, algorithms, and software development", Stage: MajorUniversity, RequiredSmarts: 60, Difficulty: "Hard"},
	{ID: "engineering", Name: "Engineering", Description: "Design and build systems and structures", Stage: MajorUniversity, RequiredSmarts: 65, Difficulty: "Hard"},
	{ID: "medicine", Name: "Medicine (Pre-Med)", Description: "Prepare for medical school and healthcare", Stage: MajorUniversity, RequiredSmarts: 70, Difficulty: "Very Hard"},
	{ID: "business", Name: "Business Administration", Description: "Management, finance, and entrepreneurship", Stage: MajorUniversity, RequiredSmarts: 50, Difficulty: "Medium"},
	{ID: "law", Name: "Pre-Law", Description: "Prepare for law school and legal career", Stage: MajorUniversity, RequiredSmarts: 65, Difficulty: "Hard"},
	{ID: "psychology", Name: "Psychology", Description: "Study of human behavior and mental processes", Stage: MajorUniversity, RequiredSmarts: 55, Difficulty: "Medium"},
	{ID: "education", Name: "Education", Description: "Teaching and educational administration", Stage: MajorUniversity, RequiredSmarts: 50, Difficulty: "Medium"},
	{ID: "nursing", Name: "Nursing", Description: "Patient care and healthcare services", Stage: MajorUniversity, RequiredSmarts: 60, Difficulty: "Hard"},
	{ID: "arts", Name: "Arts & Humanities", Description: "Creative arts, literature, and culture", Stage: MajorUniversity, RequiredSmarts: 45, Difficulty: "Easy"},
	{ID: "communications", Name: "Communications", Description: "Media, journalism, and public relations", Stage: MajorUniversity, RequiredSmarts: 50, Difficulty: "Medium"},

	// Graduate school
	{ID: "mba", Name: "MBA (Business)", Description: "Master of Business Administration", Stage: MajorGraduate, RequiredSmarts: 65, Difficulty: "Hard"},
	{ID: "medical_degree", Name: "Doctor of Medicine (MD)", Description: "Become a licensed physician", Stage: MajorGraduate, RequiredSmarts: 80, Difficulty: "Very Hard"},
	{ID: "law_degree", Name: "Juris Doctor (JD)", Description: "Law degree to practice as attorney", Stage: MajorGraduate, RequiredSmarts: 75, Difficulty: "Very Hard"},
	{ID: "phd_engineering", Name: "PhD Engineering", Description: "Advanced research in engineering", Stage: MajorGraduate, RequiredSmarts: 75, Difficulty: "Very Hard"},
	{ID: "phd_cs", Name: "PhD Computer Science", Description: "Research in computer science", Stage: MajorGraduate, RequiredSmarts: 75, Difficulty: "Very Hard"},
	{ID: "masters_education", Name: "Master of Education", Description: "Advanced teaching credentials", Stage: MajorGraduate, RequiredSmarts: 60, Difficulty: "Medium"},
}
