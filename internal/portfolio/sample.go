package portfolio

// Sample returns the document a fresh session starts with.
func Sample() Document {
	return Document{
		Profile: Profile{
			Name:              "Alex Rivera",
			Title:             "Senior Frontend Engineer",
			Bio:               "Building user-centric digital experiences with modern technologies.",
			Email:             "alex@example.com",
			GitHub:            "https://github.com",
			LinkedIn:          "https://linkedin.com",
			Twitter:           "https://twitter.com",
			ProfilePictureURL: "https://picsum.photos/600/600?grayscale&random=99",
		},
		Skills: []string{"React", "TypeScript", "Tailwind CSS", "Node.js"},
		Projects: []Project{
			{
				ID:           "1",
				Title:        "E-commerce Platform",
				Description:  "A full-featured shopping experience built with React and Stripe integration.",
				Technologies: []string{"React", "Node.js", "Stripe"},
				Link:         "#",
				GitHubRepo:   "https://github.com/example/shop",
				ImageURL:     "https://picsum.photos/800/600?random=1",
			},
		},
		Experiences: []Experience{
			{
				ID:          "1",
				Company:     "TechFlow Inc.",
				Role:        "Frontend Developer",
				Period:      "2021 - Present",
				Description: "Led the redesign of the core product dashboard using modern UI patterns.",
			},
		},
	}
}
