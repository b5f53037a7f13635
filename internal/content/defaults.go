package content

const aboutMe = `I am a passionate frontend developer who loves building modern and responsive web applications. I focus on clean code, smooth user experience, and attractive design.

I enjoy turning complex problems into simple, beautiful, and intuitive interfaces.`

const serviceBlurb = "High-end digital solutions focused on performance and accessibility."

// Default is the site as published.
func Default() *Site {
	return &Site{
		Brand:        "AHMED.DEV",
		Name:         "Muhammad Ahmed",
		Tagline:      "Available for work",
		Role:         "FRONTEND",
		RoleAccent:   "DEV.",
		CVPath:       "/My_CV.pdf",
		ProfileImage: "/portfolio.jpg",
		Links: Links{
			GitHub:   "https://github.com/ahmedsharif09",
			LinkedIn: "https://linkedin.com/in/ahmed-sharif-3a36b2326",
			Email:    "ahmed.sharif7878987@email.com",
		},
		Services: []Service{
			{Title: "UI/UX Design", Description: serviceBlurb},
			{Title: "React Development", Description: serviceBlurb},
			{Title: "Responsive Layouts", Description: serviceBlurb},
		},
		About: aboutMe,
		Skills: []SkillCategory{
			{Title: "Essentials", Skills: []string{"HTML5", "CSS3", "JavaScript", "Git"}},
			{Title: "Frameworks & Libs", Skills: []string{"React.js", "Redux", "Framer Motion", "Vite"}},
			{Title: "Design & Styling", Skills: []string{"Tailwind CSS", "Bootstrap", "Figma to HTML", "Responsive UI"}},
		},
		Projects: []Project{
			{
				Title:       "Green Heaven",
				Description: "A comprehensive indoor plant e-commerce store featuring a shopping cart system, category filtering, and a lush, responsive user interface.",
				Tags:        []string{"React", "Vite", "Redux", "Tailwind CSS"},
				Link:        "https://github.com/shahrzad-aslam/green-heaven",
				Image:       "https://images.unsplash.com/photo-1466692476868-aef1dfb1e735?auto=format&fit=crop&q=80&w=800",
			},
			{
				Title:       "Personal Portfolio",
				Description: "A modern, dark-themed portfolio website built to showcase my development skills and creative projects.",
				Tags:        []string{"React", "Framer Motion", "Tailwind"},
				Link:        "https://github.com/AhmedSharif09/ahmedsharif09.github.io",
				Image:       "https://images.unsplash.com/photo-1507238691740-187a5b1d37b8?auto=format&fit=crop&q=80&w=800",
			},
		},
		ContactIntro: "Let's discuss your next project.",
	}
}
