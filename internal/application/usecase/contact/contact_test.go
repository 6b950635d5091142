package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	"github.com/khoahotran/planmoni-site/internal/domain/contact"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type ContactUseCaseTestSuite struct {
	suite.Suite
	ctx context.Context
	m   *datamanager.Managers
	uc  *ContactUseCase
}

func (s *ContactUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	m, err := datamanager.Open(s.ctx, persistence.NewMemoryKVStore(), logger.NewNopLogger(), nil)
	s.Require().NoError(err)
	s.m = m
	s.uc = NewContactUseCase(m.ContactInfo, m.Messages, nil, logger.NewNopLogger())
	s.uc.now = func() time.Time { return time.Date(2025, 1, 16, 15, 0, 0, 0, time.UTC) }
}

func (s *ContactUseCaseTestSuite) TestSubmitMessage() {
	m, err := s.uc.SubmitMessage(s.ctx, SubmitMessageInput{
		Name: "Amaka", Email: "amaka@example.com", Subject: "Fees", Message: "What are the fees?",
	})
	s.Require().NoError(err)

	s.Equal(contact.StatusNew, m.Status)
	s.Equal("2025-01-16", m.Date)
	s.Equal("general", m.Category)
	s.Equal(m.ID, s.m.Messages.All()[0].ID)

	_, err = s.uc.SubmitMessage(s.ctx, SubmitMessageInput{Name: "Amaka"})
	s.True(errors.Is(err, apperror.ErrInvalidInput))
	s.Equal(4, s.m.Messages.Len())
}

func (s *ContactUseCaseTestSuite) TestReply() {
	m, err := s.uc.Reply(s.ctx, "1", "Payouts can be daily, weekly or monthly.")
	s.Require().NoError(err)
	s.Equal(contact.StatusReplied, m.Status)
	s.Equal("Payouts can be daily, weekly or monthly.", m.Reply)

	_, err = s.uc.Reply(s.ctx, "1", "  ")
	s.True(errors.Is(err, contact.ErrEmptyReply) || errors.Is(err, apperror.ErrInvalidInput))

	_, err = s.uc.Reply(s.ctx, "404", "hello")
	s.True(errors.Is(err, apperror.ErrNotFound))
}

func (s *ContactUseCaseTestSuite) TestSetStatusAndFilter() {
	_, err := s.uc.SetStatus(s.ctx, "1", contact.StatusResolved)
	s.Require().NoError(err)

	_, err = s.uc.SetStatus(s.ctx, "1", "spam")
	s.True(errors.Is(err, apperror.ErrInvalidInput))

	resolved := s.uc.ListMessages(s.ctx, contact.Filter{Status: contact.StatusResolved})
	s.Len(resolved, 2)
	s.Len(s.uc.ListMessages(s.ctx, contact.Filter{Query: "PARTNERSHIP"}), 1)
}

func (s *ContactUseCaseTestSuite) TestDeleteMessage() {
	s.Require().NoError(s.uc.DeleteMessage(s.ctx, "2"))
	s.True(errors.Is(s.uc.DeleteMessage(s.ctx, "2"), apperror.ErrNotFound))
	s.Equal(2, s.m.Messages.Len())
}

func (s *ContactUseCaseTestSuite) TestUpdateInfo() {
	phone := "+234 1 700 0000"
	info, err := s.uc.UpdateInfo(s.ctx, contact.InfoPatch{Phone: &phone})
	s.Require().NoError(err)
	s.Equal(phone, info.Phone)
	s.Equal("support@planmoni.com", info.Email)

	empty := ""
	_, err = s.uc.UpdateInfo(s.ctx, contact.InfoPatch{Email: &empty})
	s.True(errors.Is(err, apperror.ErrInvalidInput))
	s.Equal("support@planmoni.com", s.uc.GetInfo(s.ctx).Email)
}

func TestContactUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(ContactUseCaseTestSuite))
}
