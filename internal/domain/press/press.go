package press

import (
	"context"
	"errors"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
)

const StorageKey = "planmoni-press-kit"

type AssetCategory string

const (
	CategoryLogos       AssetCategory = "logos"
	CategoryScreenshots AssetCategory = "screenshots"
	CategoryMarketing   AssetCategory = "marketing"
)

type Asset struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    AssetCategory `json:"category"`
	Format      string        `json:"format"`
	Size        string        `json:"size"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
}

type NewsItem struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Title  string `json:"title"`
	Outlet string `json:"outlet"`
	Link   string `json:"link"`
}

type Fact struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (a Asset) GetID() string    { return a.ID }
func (n NewsItem) GetID() string { return n.ID }

// Kit is the press page. Assets are appended, news items are prepended.
type Kit struct {
	Assets []Asset    `json:"assets"`
	News   []NewsItem `json:"news"`
	Facts  []Fact     `json:"facts"`
}

var (
	ErrAssetNotFound   = errors.New("press asset not found")
	ErrNewsNotFound    = errors.New("news item not found")
	ErrFactNotFound    = errors.New("company fact not found")
	ErrInvalidCategory = errors.New("invalid asset category")
)

func (k Kit) Clone() Kit {
	k.Assets = content.CloneSlice(k.Assets)
	k.News = content.CloneSlice(k.News)
	k.Facts = content.CloneSlice(k.Facts)
	return k
}

func (a *Asset) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "name", Value: a.Name},
		content.Field{Name: "url", Value: a.URL},
	)
}

func (a *Asset) Validate() error {
	switch a.Category {
	case CategoryLogos, CategoryScreenshots, CategoryMarketing:
		return nil
	}
	return ErrInvalidCategory
}

func (n *NewsItem) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "title", Value: n.Title},
		content.Field{Name: "outlet", Value: n.Outlet},
	)
}

type AssetPatch struct {
	Name        *string        `json:"name"`
	Category    *AssetCategory `json:"category"`
	Format      *string        `json:"format"`
	Size        *string        `json:"size"`
	Description *string        `json:"description"`
	URL         *string        `json:"url"`
}

func (pt AssetPatch) Apply(a *Asset) {
	if pt.Name != nil {
		a.Name = *pt.Name
	}
	if pt.Category != nil {
		a.Category = *pt.Category
	}
	if pt.Format != nil {
		a.Format = *pt.Format
	}
	if pt.Size != nil {
		a.Size = *pt.Size
	}
	if pt.Description != nil {
		a.Description = *pt.Description
	}
	if pt.URL != nil {
		a.URL = *pt.URL
	}
}

type NewsPatch struct {
	Date   *string `json:"date"`
	Title  *string `json:"title"`
	Outlet *string `json:"outlet"`
	Link   *string `json:"link"`
}

func (pt NewsPatch) Apply(n *NewsItem) {
	if pt.Date != nil {
		n.Date = *pt.Date
	}
	if pt.Title != nil {
		n.Title = *pt.Title
	}
	if pt.Outlet != nil {
		n.Outlet = *pt.Outlet
	}
	if pt.Link != nil {
		n.Link = *pt.Link
	}
}

func (k *Kit) AddAsset(a Asset) {
	k.Assets = append(k.Assets, a)
}

func (k *Kit) UpdateAsset(id string, pt AssetPatch) (Asset, bool) {
	i := content.IndexByID(k.Assets, id)
	if i < 0 {
		return Asset{}, false
	}
	pt.Apply(&k.Assets[i])
	return k.Assets[i], true
}

func (k *Kit) DeleteAsset(id string) bool {
	var ok bool
	k.Assets, ok = content.RemoveByID(k.Assets, id)
	return ok
}

func (k *Kit) AddNews(n NewsItem) {
	k.News = append([]NewsItem{n}, k.News...)
}

func (k *Kit) UpdateNews(id string, pt NewsPatch) (NewsItem, bool) {
	i := content.IndexByID(k.News, id)
	if i < 0 {
		return NewsItem{}, false
	}
	pt.Apply(&k.News[i])
	return k.News[i], true
}

func (k *Kit) DeleteNews(id string) bool {
	var ok bool
	k.News, ok = content.RemoveByID(k.News, id)
	return ok
}

// UpdateFact edits the fact at index; facts have no ids.
func (k *Kit) UpdateFact(index int, f Fact) bool {
	if index < 0 || index >= len(k.Facts) {
		return false
	}
	k.Facts[index] = f
	return true
}

func (k Kit) AssetsByCategory(c AssetCategory) []Asset {
	out := make([]Asset, 0)
	for _, a := range k.Assets {
		if c == "" || a.Category == c {
			out = append(out, a)
		}
	}
	return out
}

type Repository interface {
	Get() Kit
	NewID() string
	Update(ctx context.Context, mutate func(*Kit) error) (Kit, error)
	Replace(ctx context.Context, k Kit) error
}

func Seed() Kit {
	return Kit{
		Assets: []Asset{
			{ID: "1", Name: "Primary Logo (PNG)", Category: CategoryLogos, Format: "PNG", Size: "2.1 MB", Description: "High-resolution primary logo with transparent background", URL: "/assets/AppLogo.png"},
			{ID: "2", Name: "App Interface - iOS", Category: CategoryScreenshots, Format: "PNG", Size: "3.2 MB", Description: "Main app interface on iOS devices", URL: "/assets/IOSImage.png"},
		},
		News: []NewsItem{
			{ID: "1", Date: "2025-01-15", Title: "Planmoni Reaches 15,000 Active Users Milestone", Outlet: "TechCabal", Link: "#"},
			{ID: "2", Date: "2024-12-20", Title: "How Nigerian Fintech Planmoni is Changing Financial Habits", Outlet: "Nairametrics", Link: "#"},
		},
		Facts: []Fact{
			{Label: "Founded", Value: "2023"},
			{Label: "Headquarters", Value: "Lagos, Nigeria"},
			{Label: "Team Size", Value: "25+ employees"},
			{Label: "Active Users", Value: "15,000+"},
			{Label: "Monthly Payouts", Value: "₦2.8M+"},
			{Label: "Funding", Value: "Seed Stage"},
			{Label: "App Rating", Value: "4.9/5 stars"},
			{Label: "Uptime", Value: "99.9%"},
		},
	}
}
