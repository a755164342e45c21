package domain

// ModuleOption is one selectable learning module on the modules screen.
type ModuleOption struct {
	Slug  string
	Label string
}

// ModuleOptions is the fixed set offered on the modules screen.
// Order is presentation only; nothing depends on it.
func ModuleOptions() []ModuleOption {
	return []ModuleOption{
		{Slug: "kinder", Label: "Kinder"},
		{Slug: "grade-1", Label: "Grade 1"},
		{Slug: "grade-2", Label: "Grade 2"},
		{Slug: "grade-3", Label: "Grade 3"},
	}
}
