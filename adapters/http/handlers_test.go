package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/planmoni-site/adapters/event"
	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	aboutUC "github.com/khoahotran/planmoni-site/internal/application/usecase/about"
	activityUC "github.com/khoahotran/planmoni-site/internal/application/usecase/activity"
	appUC "github.com/khoahotran/planmoni-site/internal/application/usecase/jobapplication"
	authUC "github.com/khoahotran/planmoni-site/internal/application/usecase/auth"
	backupUC "github.com/khoahotran/planmoni-site/internal/application/usecase/backup"
	blogUC "github.com/khoahotran/planmoni-site/internal/application/usecase/blog"
	careerUC "github.com/khoahotran/planmoni-site/internal/application/usecase/career"
	contactUC "github.com/khoahotran/planmoni-site/internal/application/usecase/contact"
	faqUC "github.com/khoahotran/planmoni-site/internal/application/usecase/faq"
	legalUC "github.com/khoahotran/planmoni-site/internal/application/usecase/legal"
	pressUC "github.com/khoahotran/planmoni-site/internal/application/usecase/press"
	searchUC "github.com/khoahotran/planmoni-site/internal/application/usecase/search"
	"github.com/khoahotran/planmoni-site/internal/domain/legal"
	"github.com/khoahotran/planmoni-site/pkg/auth"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type HandlersTestSuite struct {
	suite.Suite
	router   *gin.Engine
	managers *datamanager.Managers
	activity *activityUC.ActivityUseCase
	token    string
}

func (s *HandlersTestSuite) SetupTest() {
	ctx := context.Background()
	log := logger.NewNopLogger()
	store := persistence.NewMemoryKVStore()

	m, err := datamanager.Open(ctx, store, log, nil)
	s.Require().NoError(err)
	s.managers = m

	s.activity = activityUC.NewActivityUseCase(m.Activity, activityUC.Sources{
		Posts: m.Blog, Positions: m.Careers, Applications: m.Applications,
		FAQs: m.FAQs, Press: m.Press, Messages: m.Messages,
	}, log)
	pub := event.NewLocalPublisher(s.activity)

	creds, err := authUC.ResolveCredentials(authUC.Credentials{Username: "admin"}, log)
	s.Require().NoError(err)
	authUseCase := authUC.NewAuthUseCase(creds, auth.NewJWTService("handler-test", time.Hour), m.Sessions, log)

	blogUseCase := blogUC.NewBlogUseCase(m.Blog, pub, log)
	h := Handlers{
		Auth:         NewAuthHandler(authUseCase),
		Blog:         NewBlogHandler(blogUseCase),
		RSS:          NewRSSHandler(blogUC.NewRSSUseCase(m.Blog, blogUC.FeedInfo{Title: "Planmoni Blog", BaseURL: "https://planmoni.com"}, log), log),
		Careers:      NewCareerHandler(careerUC.NewCareersUseCase(m.Careers, pub, log)),
		Applications: NewApplicationHandler(appUC.NewApplicationsUseCase(m.Applications, m.Careers, pub, log)),
		About:        NewAboutHandler(aboutUC.NewAboutUseCase(m.About, pub, log)),
		FAQ:          NewFAQHandler(faqUC.NewFAQUseCase(m.FAQs, pub, log)),
		Legal: NewLegalHandler(legalUC.NewLegalUseCase(map[legal.Kind]legal.Repository{
			legal.KindPrivacy: m.Privacy, legal.KindTerms: m.Terms,
		}, pub, log)),
		Press:     NewPressHandler(pressUC.NewPressUseCase(m.Press, nil, pub, log)),
		Contact:   NewContactHandler(contactUC.NewContactUseCase(m.ContactInfo, m.Messages, pub, log)),
		Dashboard: NewDashboardHandler(s.activity, backupUC.NewBackupUseCase(store, nil, backupUC.Options{Dir: s.T().TempDir()}, log)),
		Search:    NewSearchHandler(searchUC.NewSearchUseCase(m.Blog, m.Careers, m.FAQs, log)),
	}

	gin.SetMode(gin.TestMode)
	s.router = NewRouter(h, AuthMiddleware(authUseCase, log), log)

	rr := s.do(http.MethodPost, "/api/admin/auth/login", gin.H{"username": "admin", "password": authUC.DemoPassword}, false)
	s.Require().Equal(http.StatusOK, rr.Code)
	var login map[string]any
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &login))
	s.token = login["access_token"].(string)
}

func (s *HandlersTestSuite) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *HandlersTestSuite) decode(rr *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) TestLoginFlow() {
	rr := s.do(http.MethodPost, "/api/admin/auth/login", gin.H{"username": "admin", "password": "wrong"}, false)
	s.Equal(http.StatusUnauthorized, rr.Code)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/admin/dashboard", nil, false).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/admin/auth/session", nil, true).Code)

	s.Equal(http.StatusNoContent, s.do(http.MethodPost, "/api/admin/auth/logout", nil, true).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/admin/dashboard", nil, true).Code)
}

func (s *HandlersTestSuite) TestCreatePost_Validation() {
	rr := s.do(http.MethodPost, "/api/admin/posts", gin.H{"title": "Only a title"}, true)

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("Please fill in all required fields", s.decode(rr)["message"])
	s.Equal(3, s.managers.Blog.Len())
}

func (s *HandlersTestSuite) TestPostLifecycle() {
	rr := s.do(http.MethodPost, "/api/admin/posts", gin.H{
		"title": "Saving on a Salary", "excerpt": "Small steps.", "author": "Planmoni Team",
		"category": "Savings", "status": "published", "content": "## Start small\n\nAutomate it.",
	}, true)
	s.Require().Equal(http.StatusCreated, rr.Code)
	created := s.decode(rr)
	id := created["id"].(string)
	s.Equal("saving-on-a-salary", created["slug"])

	rr = s.do(http.MethodGet, "/api/posts/saving-on-a-salary", nil, false)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(s.decode(rr)["content_html"], "<h2")

	rr = s.do(http.MethodDelete, "/api/admin/posts/"+id, nil, true)
	s.Equal(http.StatusPreconditionRequired, rr.Code)
	s.Equal(4, s.managers.Blog.Len())

	rr = s.do(http.MethodDelete, "/api/admin/posts/"+id+"?confirm=true", nil, true)
	s.Equal(http.StatusNoContent, rr.Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/posts/saving-on-a-salary", nil, false).Code)

	s.Eventually(func() bool { return len(s.activity.Recent(context.Background(), 0)) == 2 }, time.Second, 10*time.Millisecond)
}

func (s *HandlersTestSuite) TestUpdateUnknownPost() {
	rr := s.do(http.MethodPut, "/api/admin/posts/nope", gin.H{"title": "x"}, true)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *HandlersTestSuite) TestPublicApplication_UnknownPosition() {
	rr := s.do(http.MethodPost, "/api/careers/999/applications", gin.H{
		"applicant_name": "Bola", "email": "bola@example.com", "phone": "0800", "location": "Ibadan",
		"experience": "2 years", "cover_letter": "Hello",
	}, false)
	s.Equal(http.StatusCreated, rr.Code)
	s.Equal(1, s.managers.Applications.Len())

	rr = s.do(http.MethodPost, "/api/careers/1/applications", gin.H{"applicant_name": "Bola", "email": "not-an-email"}, false)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlersTestSuite) TestPublicReads() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/health", nil, false).Code)

	rr := s.do(http.MethodGet, "/api/careers", nil, false)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Len(s.decode(rr)["positions"], 5)

	rr = s.do(http.MethodGet, "/api/faqs", nil, false)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Len(s.decode(rr)["groups"], 3)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/legal/terms", nil, false).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/legal/cookies", nil, false).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/press-kit", nil, false).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/search", nil, false).Code)

	rr = s.do(http.MethodGet, "/api/rss.xml", nil, false)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "<rss")
}

func (s *HandlersTestSuite) TestContactFlow() {
	rr := s.do(http.MethodPost, "/api/contact/messages", gin.H{
		"name": "Ife", "email": "ife@example.com", "subject": "Hi", "message": "Question",
	}, false)
	s.Require().Equal(http.StatusCreated, rr.Code)
	id := s.decode(rr)["id"].(string)

	rr = s.do(http.MethodPost, "/api/admin/contact/messages/"+id+"/reply", gin.H{"reply": "Answer"}, true)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Equal("replied", s.decode(rr)["status"])

	rr = s.do(http.MethodPost, "/api/admin/contact/messages/"+id+"/reply", gin.H{"reply": ""}, true)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlersTestSuite) TestDashboardAndBackup() {
	rr := s.do(http.MethodGet, "/api/admin/dashboard", nil, true)
	s.Require().Equal(http.StatusOK, rr.Code)
	counts := s.decode(rr)["counts"].(map[string]any)
	s.EqualValues(3, counts["blog_posts"])
	s.EqualValues(5, counts["open_positions"])

	rr = s.do(http.MethodPost, "/api/admin/backup", nil, true)
	s.Equal(http.StatusCreated, rr.Code)
}

func (s *HandlersTestSuite) TestUploadWithoutUploader() {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/press/assets/upload", nil)
	req.Header.Set("Authorization", "Bearer "+s.token)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusBadRequest, rr.Code)
}
