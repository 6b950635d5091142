package about

import (
	"context"
	"strings"
	"time"

	"github.com/khoahotran/planmoni-site/internal/application/service"
	"github.com/khoahotran/planmoni-site/internal/domain/about"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type AboutUseCase struct {
	repo      about.Repository
	publisher activity.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewAboutUseCase(r about.Repository, pub activity.Publisher, log logger.Logger) *AboutUseCase {
	return &AboutUseCase{repo: r, publisher: pub, logger: log, now: time.Now}
}

func (uc *AboutUseCase) Get(_ context.Context) about.Content {
	return uc.repo.Get()
}

func (uc *AboutUseCase) SetMission(ctx context.Context, text string) (*about.Content, error) {
	return uc.update(ctx, "Mission", func(c *about.Content) error {
		if strings.TrimSpace(text) == "" {
			return apperror.NewMissingFields("mission_text")
		}
		c.MissionText = text
		return nil
	})
}

func (uc *AboutUseCase) SetStory(ctx context.Context, text string) (*about.Content, error) {
	return uc.update(ctx, "Story", func(c *about.Content) error {
		if strings.TrimSpace(text) == "" {
			return apperror.NewMissingFields("story_text")
		}
		c.StoryText = text
		return nil
	})
}

// ReplaceAll swaps the whole page. Nested items without an id get one.
func (uc *AboutUseCase) ReplaceAll(ctx context.Context, next about.Content) (*about.Content, error) {
	return uc.update(ctx, "About page", func(c *about.Content) error {
		*c = next.Clone()
		for i := range c.TeamMembers {
			if c.TeamMembers[i].ID == "" {
				c.TeamMembers[i].ID = uc.repo.NewID()
			}
		}
		for i := range c.Milestones {
			if c.Milestones[i].ID == "" {
				c.Milestones[i].ID = uc.repo.NewID()
			}
		}
		for i := range c.Values {
			if c.Values[i].ID == "" {
				c.Values[i].ID = uc.repo.NewID()
			}
		}
		return nil
	})
}

func (uc *AboutUseCase) SetTeamMembers(ctx context.Context, members []about.TeamMember) (*about.Content, error) {
	current := uc.repo.Get()
	current.TeamMembers = members
	return uc.ReplaceAll(ctx, current)
}

func (uc *AboutUseCase) SetMilestones(ctx context.Context, milestones []about.Milestone) (*about.Content, error) {
	current := uc.repo.Get()
	current.Milestones = milestones
	return uc.ReplaceAll(ctx, current)
}

func (uc *AboutUseCase) SetValues(ctx context.Context, values []about.Value) (*about.Content, error) {
	current := uc.repo.Get()
	current.Values = values
	return uc.ReplaceAll(ctx, current)
}

func (uc *AboutUseCase) AddTeamMember(ctx context.Context, m about.TeamMember) (*about.TeamMember, error) {
	if missing := m.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	m.ID = uc.repo.NewID()
	if _, err := uc.update(ctx, m.Name, func(c *about.Content) error {
		c.AddTeamMember(m)
		return nil
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

func (uc *AboutUseCase) UpdateTeamMember(ctx context.Context, id string, patch about.TeamMemberPatch) (*about.TeamMember, error) {
	var out about.TeamMember
	_, err := uc.update(ctx, "Team member", func(c *about.Content) error {
		updated, ok := c.UpdateTeamMember(id, patch)
		if !ok {
			return apperror.NewNotFound("team member", id)
		}
		if missing := updated.MissingFields(); len(missing) > 0 {
			return apperror.NewMissingFields(missing...)
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *AboutUseCase) DeleteTeamMember(ctx context.Context, id string) error {
	_, err := uc.update(ctx, "Team member", func(c *about.Content) error {
		if !c.DeleteTeamMember(id) {
			return apperror.NewNotFound("team member", id)
		}
		return nil
	})
	return err
}

func (uc *AboutUseCase) AddMilestone(ctx context.Context, m about.Milestone) (*about.Milestone, error) {
	if missing := m.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	m.ID = uc.repo.NewID()
	if _, err := uc.update(ctx, m.Title, func(c *about.Content) error {
		c.AddMilestone(m)
		return nil
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

func (uc *AboutUseCase) UpdateMilestone(ctx context.Context, id string, patch about.MilestonePatch) (*about.Milestone, error) {
	var out about.Milestone
	_, err := uc.update(ctx, "Milestone", func(c *about.Content) error {
		updated, ok := c.UpdateMilestone(id, patch)
		if !ok {
			return apperror.NewNotFound("milestone", id)
		}
		if missing := updated.MissingFields(); len(missing) > 0 {
			return apperror.NewMissingFields(missing...)
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *AboutUseCase) DeleteMilestone(ctx context.Context, id string) error {
	_, err := uc.update(ctx, "Milestone", func(c *about.Content) error {
		if !c.DeleteMilestone(id) {
			return apperror.NewNotFound("milestone", id)
		}
		return nil
	})
	return err
}

func (uc *AboutUseCase) AddValue(ctx context.Context, v about.Value) (*about.Value, error) {
	if missing := v.MissingFields(); len(missing) > 0 {
		return nil, apperror.NewMissingFields(missing...)
	}
	v.ID = uc.repo.NewID()
	if _, err := uc.update(ctx, v.Title, func(c *about.Content) error {
		c.AddValue(v)
		return nil
	}); err != nil {
		return nil, err
	}
	return &v, nil
}

func (uc *AboutUseCase) UpdateValue(ctx context.Context, id string, patch about.ValuePatch) (*about.Value, error) {
	var out about.Value
	_, err := uc.update(ctx, "Value", func(c *about.Content) error {
		updated, ok := c.UpdateValue(id, patch)
		if !ok {
			return apperror.NewNotFound("value", id)
		}
		if missing := updated.MissingFields(); len(missing) > 0 {
			return apperror.NewMissingFields(missing...)
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *AboutUseCase) DeleteValue(ctx context.Context, id string) error {
	_, err := uc.update(ctx, "Value", func(c *about.Content) error {
		if !c.DeleteValue(id) {
			return apperror.NewNotFound("value", id)
		}
		return nil
	})
	return err
}

// update is the single write path; every change to the page is logged as
// one activity entry against the page itself.
func (uc *AboutUseCase) update(ctx context.Context, title string, mutate func(*about.Content) error) (*about.Content, error) {
	c, err := uc.repo.Update(ctx, mutate)
	if err != nil {
		return nil, err
	}

	service.PublishAsync(uc.publisher, uc.logger, activity.Event{
		Entity:   activity.EntityAbout,
		Action:   activity.ActionUpdated,
		EntityID: about.StorageKey,
		Title:    title,
		At:       uc.now().UTC(),
	})
	return &c, nil
}
