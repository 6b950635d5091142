package about

import (
	"context"
	"errors"

	"github.com/khoahotran/planmoni-site/internal/domain/content"
)

const StorageKey = "planmoni-about-data"

type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

type Milestone struct {
	ID          string `json:"id"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Value struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (m TeamMember) GetID() string { return m.ID }
func (m Milestone) GetID() string  { return m.ID }
func (v Value) GetID() string      { return v.ID }

// Content is the about page. New nested items go to the end of their list.
type Content struct {
	MissionText string       `json:"mission_text"`
	StoryText   string       `json:"story_text"`
	TeamMembers []TeamMember `json:"team_members"`
	Milestones  []Milestone  `json:"milestones"`
	Values      []Value      `json:"values"`
}

var (
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrMilestoneNotFound  = errors.New("milestone not found")
	ErrValueNotFound      = errors.New("value not found")
)

func (c Content) Clone() Content {
	c.TeamMembers = content.CloneSlice(c.TeamMembers)
	c.Milestones = content.CloneSlice(c.Milestones)
	c.Values = content.CloneSlice(c.Values)
	return c
}

func (m *TeamMember) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "name", Value: m.Name},
		content.Field{Name: "role", Value: m.Role},
	)
}

func (m *Milestone) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "year", Value: m.Year},
		content.Field{Name: "title", Value: m.Title},
	)
}

func (v *Value) MissingFields() []string {
	return content.Missing(
		content.Field{Name: "title", Value: v.Title},
		content.Field{Name: "description", Value: v.Description},
	)
}

type TeamMemberPatch struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Bio   *string `json:"bio"`
	Image *string `json:"image"`
}

func (pt TeamMemberPatch) Apply(m *TeamMember) {
	if pt.Name != nil {
		m.Name = *pt.Name
	}
	if pt.Role != nil {
		m.Role = *pt.Role
	}
	if pt.Bio != nil {
		m.Bio = *pt.Bio
	}
	if pt.Image != nil {
		m.Image = *pt.Image
	}
}

type MilestonePatch struct {
	Year        *string `json:"year"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (pt MilestonePatch) Apply(m *Milestone) {
	if pt.Year != nil {
		m.Year = *pt.Year
	}
	if pt.Title != nil {
		m.Title = *pt.Title
	}
	if pt.Description != nil {
		m.Description = *pt.Description
	}
}

type ValuePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (pt ValuePatch) Apply(v *Value) {
	if pt.Title != nil {
		v.Title = *pt.Title
	}
	if pt.Description != nil {
		v.Description = *pt.Description
	}
	if pt.Icon != nil {
		v.Icon = *pt.Icon
	}
}

func (c *Content) AddTeamMember(m TeamMember) {
	c.TeamMembers = append(c.TeamMembers, m)
}

func (c *Content) UpdateTeamMember(id string, pt TeamMemberPatch) (TeamMember, bool) {
	i := content.IndexByID(c.TeamMembers, id)
	if i < 0 {
		return TeamMember{}, false
	}
	pt.Apply(&c.TeamMembers[i])
	return c.TeamMembers[i], true
}

func (c *Content) DeleteTeamMember(id string) bool {
	var ok bool
	c.TeamMembers, ok = content.RemoveByID(c.TeamMembers, id)
	return ok
}

func (c *Content) AddMilestone(m Milestone) {
	c.Milestones = append(c.Milestones, m)
}

func (c *Content) UpdateMilestone(id string, pt MilestonePatch) (Milestone, bool) {
	i := content.IndexByID(c.Milestones, id)
	if i < 0 {
		return Milestone{}, false
	}
	pt.Apply(&c.Milestones[i])
	return c.Milestones[i], true
}

func (c *Content) DeleteMilestone(id string) bool {
	var ok bool
	c.Milestones, ok = content.RemoveByID(c.Milestones, id)
	return ok
}

func (c *Content) AddValue(v Value) {
	c.Values = append(c.Values, v)
}

func (c *Content) UpdateValue(id string, pt ValuePatch) (Value, bool) {
	i := content.IndexByID(c.Values, id)
	if i < 0 {
		return Value{}, false
	}
	pt.Apply(&c.Values[i])
	return c.Values[i], true
}

func (c *Content) DeleteValue(id string) bool {
	var ok bool
	c.Values, ok = content.RemoveByID(c.Values, id)
	return ok
}

// Repository is the about page data manager.
type Repository interface {
	Get() Content
	NewID() string
	Update(ctx context.Context, mutate func(*Content) error) (Content, error)
	Replace(ctx context.Context, c Content) error
}
