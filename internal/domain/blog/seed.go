package blog

func strPtr(s string) *string { return &s }

// Seed returns the posts a fresh site starts with.
func Seed() []Post {
	return []Post{
		{
			ID:       "1",
			Title:    "The Psychology of Financial Discipline: Why Willpower Isn't Enough",
			Excerpt:  "Discover why traditional budgeting fails and how behavioral design can help you build lasting financial habits that actually stick.",
			Author:   "Dr. Kemi Adebisi",
			Date:     "2025-01-10",
			Category: "Psychology",
			Status:   StatusPublished,
			ReadTime: "8 min read",
			Image:    strPtr("/assets/blog-featured.jpg"),
			Slug:     "psychology-financial-discipline",
			Content: strPtr(`Financial discipline is one of the most challenging aspects of personal finance management. Despite our best intentions, many of us struggle to stick to budgets, save consistently, or avoid impulsive purchases.

## The Willpower Myth

Willpower is a finite resource. Just like a muscle, it gets tired with use. When we rely solely on willpower to manage our finances, we're setting ourselves up for failure.

## The Role of Environmental Design

Instead of relying on willpower, we need to design our environment to make good financial decisions easier and bad ones harder. By creating structural barriers to accessing your money, we remove the need for constant willpower.

## Building Sustainable Habits

True financial discipline comes from building systems and habits, not from relying on motivation. The key is to work with your psychology, not against it.`),
		},
		{
			ID:       "2",
			Title:    "5 Signs You Need Better Cash Flow Management",
			Excerpt:  "Learn to recognize the warning signs that indicate your cash flow needs attention and how to address them.",
			Author:   "Adebayo Ogundimu",
			Date:     "2025-01-08",
			Category: "Financial Planning",
			Status:   StatusPublished,
			ReadTime: "5 min read",
			Image:    strPtr("/assets/blog-1.jpg"),
			Slug:     "cash-flow-management-signs",
			Content: strPtr(`Cash flow management is the lifeblood of financial stability.

## Sign 1: You're Always Broke Before Payday

If you consistently find yourself with little to no money in the days leading up to your next paycheck, your spending is not aligned with your income timing.

## Sign 2: You Can't Handle Unexpected Expenses

When a small unexpected expense throws your entire financial plan off track, your cash flow lacks flexibility and buffer.

## Sign 3: You're Using Credit for Regular Expenses

## Sign 4: You Have Irregular Income but Regular Expenses

## Sign 5: You Can't Save Consistently

## The Solution: Structured Cash Flow Management

1. **Income Smoothing**: Converting irregular income into regular, predictable payments
2. **Expense Timing**: Aligning your expenses with your income schedule
3. **Buffer Creation**: Building cushions for unexpected expenses
4. **Automated Systems**: Removing the decision-making from day-to-day money management`),
		},
		{
			ID:       "3",
			Title:    "How to Create a Sustainable Emergency Fund",
			Excerpt:  "Building an emergency fund that you won't be tempted to raid for non-emergencies.",
			Author:   "Folake Adeyemi",
			Date:     "2025-01-05",
			Category: "Savings",
			Status:   StatusPublished,
			ReadTime: "6 min read",
			Image:    strPtr("/assets/blog-2.jpg"),
			Slug:     "sustainable-emergency-fund",
			Content: strPtr(`An emergency fund is one of the most important components of financial security. The key challenge isn't just saving the money, it's keeping it untouched for actual emergencies.

## What Constitutes an Emergency?

- Job loss or significant income reduction
- Major medical expenses not covered by insurance
- Essential home repairs
- Car repairs necessary for work

## Building a Sustainable Emergency Fund

### Step 1: Start Small
Start with a goal of ₦100,000 or one month of expenses, whichever is smaller.

### Step 2: Automate the Process
Set up automatic transfers to your emergency fund. Treat it like a non-negotiable bill.

### Step 3: Create Barriers to Access
Your emergency fund should be accessible enough for real emergencies but difficult enough to access that you won't use it impulsively.`),
		},
	}
}
