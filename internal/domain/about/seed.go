package about

func Seed() Content {
	return Content{
		MissionText: "At Planmoni, we believe that financial discipline shouldn't be a struggle. Traditional banking gives you access to all your money all the time, making it easy to spend impulsively and difficult to stick to financial goals.\n\n" +
			"Our solution is simple yet powerful: we help you lock away your money and receive it back on a schedule that matches your needs. This creates natural barriers to impulsive spending while ensuring you have access to funds when you truly need them.\n\n" +
			"By combining behavioral psychology with modern technology, we're helping thousands of people across Africa build better financial habits and achieve their goals.",
		StoryText: "Our founders noticed a common pattern among friends, family, and colleagues: people would receive money (salary, business income, gifts) and struggle to make it last. The issue wasn't lack of income, it was the difficulty of managing access to that income over time.\n\n" +
			"We realized that the solution wasn't more tracking or more willpower. It was better access control. By creating a system that locks your money away and releases it on a predetermined schedule, we could help people naturally develop better spending habits.\n\n" +
			"The result is Planmoni: a financial planning tool that combines the security of a vault with the flexibility of personalized payout schedules.",
		TeamMembers: []TeamMember{
			{ID: "1", Name: "Adebayo Ogundimu", Role: "CEO & Co-Founder", Bio: "Former fintech executive with 10+ years experience in digital banking and financial inclusion across Africa.", Image: "/assets/team-placeholder.jpg"},
			{ID: "2", Name: "Kemi Adebisi", Role: "CTO & Co-Founder", Bio: "Software architect and security expert who previously built payment systems for major Nigerian banks.", Image: "/assets/team-placeholder.jpg"},
			{ID: "3", Name: "Chinedu Okoro", Role: "Head of Product", Bio: "Product strategist with deep expertise in behavioral economics and user experience design.", Image: "/assets/team-placeholder.jpg"},
			{ID: "4", Name: "Folake Adeyemi", Role: "Head of Operations", Bio: "Operations leader with extensive experience in financial services compliance and risk management.", Image: "/assets/team-placeholder.jpg"},
		},
		Milestones: []Milestone{
			{ID: "1", Year: "2023", Title: "Company Founded", Description: "Planmoni was founded with a mission to help people develop better financial habits through technology."},
			{ID: "2", Year: "2024", Title: "Beta Launch", Description: "Launched our beta version with 1,000 early users, gathering valuable feedback and insights."},
			{ID: "3", Year: "2024", Title: "Seed Funding", Description: "Raised seed funding to accelerate product development and expand our team."},
			{ID: "4", Year: "2025", Title: "Public Launch", Description: "Officially launched Planmoni to the public, helping thousands achieve financial discipline."},
		},
		Values: []Value{
			{ID: "1", Title: "Security First", Description: "Your financial security is our top priority. We implement bank-level security measures to protect your funds and data.", Icon: "Shield"},
			{ID: "2", Title: "User-Centric", Description: "Every feature we build is designed with our users' financial wellbeing and success in mind.", Icon: "Heart"},
			{ID: "3", Title: "Innovation", Description: "We continuously innovate to create better solutions for financial discipline and planning.", Icon: "Lightbulb"},
			{ID: "4", Title: "Accessibility", Description: "Financial planning tools should be accessible to everyone, regardless of income level or background.", Icon: "Globe"},
		},
	}
}
