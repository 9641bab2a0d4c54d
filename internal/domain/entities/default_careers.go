package entities

// DefaultCareers is the builtin career catalog. Entry-level jobs gate
// on age only; degree careers gate on education level and major.
var DefaultCareers = []CareerPath{
	// No degree required
	{Title: "Cashier", BaseSalary: 25000, MaxSalary: 35000, Category: "Retail", MinAge: 16, RequiredEducation: EducationNone},
	{Title: "Fast Food Worker", BaseSalary: 22000, MaxSalary: 30000, Category: "Food Service", MinAge: 16, RequiredEducation: EducationNone},
	{Title: "Warehouse Worker", BaseSalary: 30000, MaxSalary: 45000, Category: "Logistics", MinAge: 18, RequiredEducation: EducationNone},
	{Title: "Delivery Driver", BaseSalary: 35000, MaxSalary: 50000, Category: "Transportation", MinAge: 18, RequiredEducation: EducationNone},

	// Technology
	{Title: "Junior Software Developer", BaseSalary: 65000, MaxSalary: 85000, Category: "Technology", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"computer_science", "engineering"}},
	{Title: "Software Engineer", BaseSalary: 90000, MaxSalary: 150000, Category: "Technology", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"computer_science", "engineering"}},
	{Title: "Data Scientist", BaseSalary: 95000, MaxSalary: 160000, Category: "Technology", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"computer_science", "engineering"}},
	{Title: "AI/ML Engineer", BaseSalary: 120000, MaxSalary: 200000, Category: "Technology", MinAge: 26, RequiredEducation: EducationGraduate, RequiredMajors: []string{"phd_cs", "computer_science"}},

	// Engineering
	{Title: "Mechanical Engineer", BaseSalary: 70000, MaxSalary: 110000, Category: "Engineering", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"engineering"}},
	{Title: "Civil Engineer", BaseSalary: 68000, MaxSalary: 105000, Category: "Engineering", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"engineering"}},
	{Title: "Electrical Engineer", BaseSalary: 75000, MaxSalary: 120000, Category: "Engineering", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"engineering"}},
	{Title: "Chief Engineer", BaseSalary: 110000, MaxSalary: 180000, Category: "Engineering", MinAge: 30, RequiredEducation: EducationGraduate, RequiredMajors: []string{"phd_engineering", "engineering"}},

	// Healthcare
	{Title: "Registered Nurse", BaseSalary: 65000, MaxSalary: 95000, Category: "Healthcare", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"nursing"}},
	{Title: "Physician", BaseSalary: 180000, MaxSalary: 350000, Category: "Healthcare", MinAge: 28, RequiredEducation: EducationGraduate, RequiredMajors: []string{"medical_degree"}},
	{Title: "Surgeon", BaseSalary: 250000, MaxSalary: 500000, Category: "Healthcare", MinAge: 32, RequiredEducation: EducationGraduate, RequiredMajors: []string{"medical_degree"}},
	{Title: "School Counselor", BaseSalary: 50000, MaxSalary: 75000, Category: "Healthcare", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"psychology"}},
	{Title: "Clinical Psychologist", BaseSalary: 70000, MaxSalary: 120000, Category: "Healthcare", MinAge: 26, RequiredEducation: EducationGraduate, RequiredMajors: []string{"psychology"}},

	// Business
	{Title: "Business Analyst", BaseSalary: 60000, MaxSalary: 90000, Category: "Business", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"business", "economics"}},
	{Title: "Marketing Manager", BaseSalary: 70000, MaxSalary: 120000, Category: "Business", MinAge: 24, RequiredEducation: EducationUniversity, RequiredMajors: []string{"business", "communications"}},
	{Title: "Senior Manager", BaseSalary: 95000, MaxSalary: 160000, Category: "Business", MinAge: 28, RequiredEducation: EducationGraduate, RequiredMajors: []string{"mba", "business"}},
	{Title: "CEO", BaseSalary: 200000, MaxSalary: 1000000, Category: "Business", MinAge: 35, RequiredEducation: EducationGraduate, RequiredMajors: []string{"mba", "business"}},

	// Legal
	{Title: "Paralegal", BaseSalary: 45000, MaxSalary: 70000, Category: "Legal", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"law"}},
	{Title: "Attorney", BaseSalary: 85000, MaxSalary: 180000, Category: "Legal", MinAge: 25, RequiredEducation: EducationGraduate, RequiredMajors: []string{"law_degree"}},
	{Title: "Senior Partner (Law)", BaseSalary: 250000, MaxSalary: 800000, Category: "Legal", MinAge: 35, RequiredEducation: EducationGraduate, RequiredMajors: []string{"law_degree"}},

	// Education
	{Title: "Elementary Teacher", BaseSalary: 45000, MaxSalary: 70000, Category: "Education", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"education"}},
	{Title: "High School Teacher", BaseSalary: 50000, MaxSalary: 75000, Category: "Education", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"education"}},
	{Title: "Principal", BaseSalary: 85000, MaxSalary: 120000, Category: "Education", MinAge: 30, RequiredEducation: EducationGraduate, RequiredMajors: []string{"masters_education", "education"}},

	// Creative and media
	{Title: "Graphic Designer", BaseSalary: 45000, MaxSalary: 75000, Category: "Creative", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"arts"}},
	{Title: "Art Director", BaseSalary: 70000, MaxSalary: 120000, Category: "Creative", MinAge: 25, RequiredEducation: EducationUniversity, RequiredMajors: []string{"arts"}},
	{Title: "Journalist", BaseSalary: 40000, MaxSalary: 70000, Category: "Media", MinAge: 22, RequiredEducation: EducationUniversity, RequiredMajors: []string{"communications"}},
	{Title: "Public Relations Manager", BaseSalary: 60000, MaxSalary: 110000, Category: "Media", MinAge: 24, RequiredEducation: EducationUniversity, RequiredMajors: []string{"communications", "business"}},
}
