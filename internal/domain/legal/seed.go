package legal

const seedLastUpdated = "January 15, 2025"

func SeedPrivacy() Page {
	return Page{
		LastUpdated: seedLastUpdated,
		Sections: []Section{
			{ID: "1", Order: 1, Title: "Introduction", Content: "At Planmoni, we are committed to protecting your privacy and ensuring the security of your personal information. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you use our financial planning application and services.\n\nBy using Planmoni, you consent to the data practices described in this policy."},
			{ID: "2", Order: 2, Title: "Information We Collect", Content: "Personal Information:\n• Full name and contact information (email, phone number)\n• Government-issued identification for verification purposes\n• Bank account details and payment information\n\nFinancial Information:\n• Transaction history and payout schedules\n• Account balances and vault information\n\nUsage Information:\n• Device information\n• App usage patterns and feature interactions"},
			{ID: "3", Order: 3, Title: "How We Use Your Information", Content: "Service Provision:\n• Process and manage your payout plans\n• Execute financial transactions securely\n• Provide customer support and assistance\n\nSecurity & Compliance:\n• Verify your identity and prevent fraud\n• Comply with legal and regulatory requirements"},
			{ID: "4", Order: 4, Title: "Data Security", Content: "We implement bank-level security measures including 256-bit encryption, multi-factor authentication and regular security audits to protect your information."},
			{ID: "5", Order: 5, Title: "Information Sharing", Content: "We do not sell your personal information. We share data only with service providers that help us operate the Service, and when required by law."},
			{ID: "6", Order: 6, Title: "Your Rights", Content: "You may access, correct, export or request deletion of your personal information at any time by contacting our support team."},
			{ID: "7", Order: 7, Title: "Data Retention", Content: "We retain your information for as long as your account is active and as required by applicable financial regulations."},
			{ID: "8", Order: 8, Title: "Contact Information", Content: "For privacy questions, contact privacy@planmoni.com."},
		},
	}
}

func SeedTerms() Page {
	return Page{
		LastUpdated: seedLastUpdated,
		Sections: []Section{
			{ID: "1", Order: 1, Title: "Agreement to Terms", Content: "These Terms of Service govern your use of the Planmoni application and services operated by Planmoni. By accessing or using our Service, you agree to be bound by these Terms."},
			{ID: "2", Order: 2, Title: "Service Description", Content: "Planmoni provides:\n• Secure vault system for storing and managing your funds\n• Automated payout scheduling based on your preferences\n• Financial planning tools and analytics\n• Emergency withdrawal options with built-in safeguards\n• Customer support and account management"},
			{ID: "3", Order: 3, Title: "User Responsibilities", Content: "You Must:\n• Provide accurate and complete information\n• Maintain the security of your account credentials\n• Use the Service only for lawful purposes\n\nYou Must Not:\n• Use the Service for illegal activities\n• Share your account with unauthorized persons"},
			{ID: "4", Order: 4, Title: "Financial Terms", Content: "Vault Security: Funds deposited into your Planmoni vault cannot be accessed outside of your predetermined payout schedule, except through the emergency withdrawal process.\n\nEmergency Withdrawals: Emergency withdrawals are subject to a 72-hour cooldown period and may incur fees."},
			{ID: "5", Order: 5, Title: "Limitation of Liability", Content: "Planmoni is a tool to help you manage your finances. You are responsible for your financial decisions and their consequences."},
			{ID: "6", Order: 6, Title: "Account Termination", Content: "You may close your account at any time after withdrawing all funds. We may suspend accounts for Terms violations."},
			{ID: "7", Order: 7, Title: "Dispute Resolution", Content: "Step 1: Direct Resolution\nStep 2: Mediation\nStep 3: Arbitration in accordance with Nigerian law."},
			{ID: "8", Order: 8, Title: "Changes to Terms", Content: "We may update these Terms from time to time. Material changes will be communicated in advance."},
			{ID: "9", Order: 9, Title: "Contact Information", Content: "For questions about these Terms, contact legal@planmoni.com."},
			{ID: "10", Order: 10, Title: "Governing Law", Content: "These Terms are governed by the laws of the Federal Republic of Nigeria."},
		},
	}
}

func Seed(k Kind) Page {
	if k == KindPrivacy {
		return SeedPrivacy()
	}
	return SeedTerms()
}
