package faq

import (
	"context"
	"errors"
	"sort"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
)

const StorageKey = "planmoni-faqs"

var Categories = []string{
	"Getting Started",
	"Payouts & Scheduling",
	"Security & Safety",
	"Fees & Pricing",
	"Account Management",
	"Technical Support",
}

type FAQ struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
}

var ErrFAQNotFound = errors.New("faq not found")

func (f FAQ) GetID() string { return f.ID }

func (f FAQ) WithID(id string) FAQ {
	f.ID = id
	return f
}

func (f FAQ) Clone() FAQ { return f }

func (f *FAQ) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "category", Value: f.Category},
		content.Field{Name: "question", Value: f.Question},
		content.Field{Name: "answer", Value: f.Answer},
	)
}

type Patch struct {
	Category *string `json:"category"`
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order"`
}

func (pt Patch) Apply(f *FAQ) {
	if pt.Category != nil {
		f.Category = *pt.Category
	}
	if pt.Question != nil {
		f.Question = *pt.Question
	}
	if pt.Answer != nil {
		f.Answer = *pt.Answer
	}
	if pt.Order != nil {
		f.Order = *pt.Order
	}
}

type Filter struct {
	Category string
	Query    string
}

func (fl Filter) Match(f FAQ) bool {
	if fl.Category != "" && f.Category != fl.Category {
		return false
	}
	return content.MatchesQuery(fl.Query, f.Question, f.Answer)
}

type Group struct {
	Category string `json:"category"`
	FAQs     []FAQ  `json:"faqs"`
}

// GroupByCategory keeps categories in order of first appearance and sorts
// each group by Order.
func GroupByCategory(faqs []FAQ) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, f := range faqs {
		i, ok := index[f.Category]
		if !ok {
			i = len(groups)
			index[f.Category] = i
			groups = append(groups, Group{Category: f.Category})
		}
		groups[i].FAQs = append(groups[i].FAQs, f)
	}
	for _, g := range groups {
		sort.SliceStable(g.FAQs, func(a, b int) bool { return g.FAQs[a].Order < g.FAQs[b].Order })
	}
	return groups
}

type Repository interface {
	All() []FAQ
	GetByID(id string) (FAQ, bool)
	Filter(keep func(FAQ) bool) []FAQ
	Add(ctx context.Context, f FAQ) (FAQ, error)
	Update(ctx context.Context, id string, mutate func(*FAQ)) (FAQ, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

func Seed() []FAQ {
	return []FAQ{
		{ID: "1", Category: "Getting Started", Question: "How do I create my first payout plan?", Answer: "Creating your first payout plan is simple! Download the Planmoni app, complete the quick verification process, add funds to your vault, and set up your preferred payout schedule.", Order: 1},
		{ID: "2", Category: "Getting Started", Question: "What payment methods do you accept?", Answer: "We accept bank transfers, debit cards, credit cards, and USSD payments. All transactions are secured with bank-level encryption.", Order: 2},
		{ID: "3", Category: "Security & Safety", Question: "How secure is my money with Planmoni?", Answer: "Your funds are protected with bank-level security including 256-bit encryption, multi-factor authentication, and secure vault storage.", Order: 1},
		{ID: "4", Category: "Payouts & Scheduling", Question: "Can I modify my payout schedule after creating it?", Answer: "Yes! You can adjust future payout dates, change frequencies, and update amounts. Some changes may require a waiting period for security purposes.", Order: 1},
	}
}
