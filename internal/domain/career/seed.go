package career

func Seed() []Position {
	return []Position{
		{
			ID: "1", Title: "Senior Frontend Developer", Department: "Engineering", Location: "Lagos, Nigeria",
			Type: "Full-time", Salary: "₦8M - ₦12M",
			Description: "Join our engineering team to build beautiful, responsive user interfaces for our financial planning platform.",
			Requirements: []string{
				"5+ years of React/TypeScript experience",
				"Strong understanding of modern frontend architecture",
				"Experience with financial applications preferred",
				"Excellent problem-solving skills",
			},
			Status: StatusActive, PostedDate: "2025-01-10",
		},
		{
			ID: "2", Title: "Product Manager", Department: "Product", Location: "Lagos, Nigeria",
			Type: "Full-time", Salary: "₦10M - ₦15M",
			Description: "Lead product strategy and development for our core financial planning features.",
			Requirements: []string{
				"3+ years of product management experience",
				"Background in fintech or financial services",
				"Strong analytical and communication skills",
				"Experience with user research and data analysis",
			},
			Status: StatusActive, PostedDate: "2025-01-08",
		},
		{
			ID: "3", Title: "DevOps Engineer", Department: "Engineering", Location: "Remote",
			Type: "Full-time", Salary: "₦6M - ₦10M",
			Description: "Build and maintain our cloud infrastructure to ensure 99.9% uptime for our users.",
			Requirements: []string{
				"3+ years of DevOps/Infrastructure experience",
				"Experience with AWS, Docker, Kubernetes",
				"Strong security and compliance background",
				"Experience with CI/CD pipelines",
			},
			Status: StatusActive, PostedDate: "2025-01-05",
		},
		{
			ID: "4", Title: "Customer Success Manager", Department: "Customer Success", Location: "Lagos, Nigeria",
			Type: "Full-time", Salary: "₦4M - ₦6M",
			Description: "Help our users achieve their financial goals by providing exceptional support and guidance.",
			Requirements: []string{
				"2+ years of customer success experience",
				"Excellent communication skills",
				"Passion for helping people with their finances",
				"Experience with support tools and CRM systems",
			},
			Status: StatusActive, PostedDate: "2025-01-03",
		},
		{
			ID: "5", Title: "Marketing Manager", Department: "Marketing", Location: "Lagos, Nigeria",
			Type: "Full-time", Salary: "₦5M - ₦8M",
			Description: "Drive user acquisition and brand awareness through creative marketing campaigns.",
			Requirements: []string{
				"3+ years of digital marketing experience",
				"Experience with fintech or financial services",
				"Strong understanding of growth marketing",
				"Data-driven approach to marketing",
			},
			Status: StatusPaused, PostedDate: "2024-12-28",
		},
		{
			ID: "6", Title: "Backend Developer", Department: "Engineering", Location: "Remote",
			Type: "Full-time", Salary: "₦6M - ₦10M",
			Description: "Build scalable and secure backend systems for our financial platform.",
			Requirements: []string{
				"3+ years of backend development experience",
				"Experience with Node.js, Python, or similar",
				"Strong database and API design skills",
				"Understanding of financial systems and security",
			},
			Status: StatusActive, PostedDate: "2024-12-25",
		},
	}
}
