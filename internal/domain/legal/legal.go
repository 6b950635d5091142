package legal

import (
	"context"
	"errors"
	"sort"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
)

type Kind string

const (
	KindPrivacy Kind = "privacy"
	KindTerms   Kind = "terms"
)

func (k Kind) StorageKey() string {
	switch k {
	case KindPrivacy:
		return "planmoni-privacy-policy"
	case KindTerms:
		return "planmoni-terms-of-service"
	}
	return ""
}

func (k Kind) Title() string {
	if k == KindPrivacy {
		return "Privacy Policy"
	}
	return "Terms of Service"
}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPrivacy, KindTerms:
		return Kind(s), nil
	}
	return "", ErrUnknownPage
}

type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

func (s Section) GetID() string { return s.ID }

func (s *Section) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "title", Value: s.Title},
		content.Field{Name: "content", Value: s.Content},
	)
}

// Page is a legal document. LastUpdated is free text ("January 15, 2025").
type Page struct {
	LastUpdated string    `json:"last_updated"`
	Sections    []Section `json:"sections"`
}

var (
	ErrUnknownPage     = errors.New("unknown legal page")
	ErrSectionNotFound = errors.New("section not found")
)

func (p Page) Clone() Page {
	p.Sections = content.CloneSlice(p.Sections)
	return p
}

// Sorted returns a copy with sections ordered by Order.
func (p Page) Sorted() Page {
	out := p.Clone()
	sort.SliceStable(out.Sections, func(i, j int) bool { return out.Sections[i].Order < out.Sections[j].Order })
	return out
}

type SectionPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Order   *int    `json:"order"`
}

func (pt SectionPatch) Apply(s *Section) {
	if pt.Title != nil {
		s.Title = *pt.Title
	}
	if pt.Content != nil {
		s.Content = *pt.Content
	}
	if pt.Order != nil {
		s.Order = *pt.Order
	}
}

func (p *Page) AddSection(s Section) {
	p.Sections = append(p.Sections, s)
}

func (p *Page) UpdateSection(id string, pt SectionPatch) (Section, bool) {
	i := content.IndexByID(p.Sections, id)
	if i < 0 {
		return Section{}, false
	}
	pt.Apply(&p.Sections[i])
	return p.Sections[i], true
}

func (p *Page) DeleteSection(id string) bool {
	var ok bool
	p.Sections, ok = content.RemoveByID(p.Sections, id)
	return ok
}

type Repository interface {
	Get() Page
	NewID() string
	Update(ctx context.Context, mutate func(*Page) error) (Page, error)
	Replace(ctx context.Context, p Page) error
}
