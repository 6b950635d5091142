package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Blog         *BlogHandler
	RSS          *RSSHandler
	Careers      *CareerHandler
	Applications *ApplicationHandler
	About        *AboutHandler
	FAQ          *FAQHandler
	Legal        *LegalHandler
	Press        *PressHandler
	Contact      *ContactHandler
	Dashboard    *DashboardHandler
	Search       *SearchHandler
}

func NewRouter(h Handlers, authMiddleware gin.HandlerFunc, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), LoggerMiddleware(log), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", h.Auth.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.POST("/auth/logout", h.Auth.Logout)
				adminPrivate.GET("/auth/session", h.Auth.Session)

				adminPrivate.GET("/dashboard", h.Dashboard.Dashboard)
				adminPrivate.GET("/activity", h.Dashboard.Activity)
				adminPrivate.POST("/backup", h.Dashboard.Backup)

				posts := adminPrivate.Group("/posts")
				{
					posts.POST("", h.Blog.CreatePost)
					posts.GET("", h.Blog.ListPosts)
					posts.GET("/:id", h.Blog.GetPost)
					posts.PUT("/:id", h.Blog.UpdatePost)
					posts.DELETE("/:id", h.Blog.DeletePost)
				}

				positions := adminPrivate.Group("/positions")
				{
					positions.POST("", h.Careers.CreatePosition)
					positions.GET("", h.Careers.ListPositions)
					positions.GET("/:id", h.Careers.GetPosition)
					positions.PUT("/:id", h.Careers.UpdatePosition)
					positions.DELETE("/:id", h.Careers.DeletePosition)
				}

				applications := adminPrivate.Group("/applications")
				{
					applications.GET("", h.Applications.ListApplications)
					applications.GET("/:id", h.Applications.GetApplication)
					applications.PUT("/:id", h.Applications.UpdateApplication)
					applications.DELETE("/:id", h.Applications.DeleteApplication)
				}

				aboutPage := adminPrivate.Group("/about")
				{
					aboutPage.GET("", h.About.GetAbout)
					aboutPage.PUT("", h.About.ReplaceAbout)
					aboutPage.PUT("/mission", h.About.SetMission)
					aboutPage.PUT("/story", h.About.SetStory)
					aboutPage.POST("/team", h.About.AddTeamMember)
					aboutPage.PUT("/team/:id", h.About.UpdateTeamMember)
					aboutPage.DELETE("/team/:id", h.About.DeleteTeamMember)
					aboutPage.POST("/milestones", h.About.AddMilestone)
					aboutPage.PUT("/milestones/:id", h.About.UpdateMilestone)
					aboutPage.DELETE("/milestones/:id", h.About.DeleteMilestone)
					aboutPage.POST("/values", h.About.AddValue)
					aboutPage.PUT("/values/:id", h.About.UpdateValue)
					aboutPage.DELETE("/values/:id", h.About.DeleteValue)
				}

				faqs := adminPrivate.Group("/faqs")
				{
					faqs.POST("", h.FAQ.CreateFAQ)
					faqs.GET("", h.FAQ.ListFAQs)
					faqs.GET("/:id", h.FAQ.GetFAQ)
					faqs.PUT("/:id", h.FAQ.UpdateFAQ)
					faqs.DELETE("/:id", h.FAQ.DeleteFAQ)
				}

				legalPages := adminPrivate.Group("/legal/:kind")
				{
					legalPages.GET("", h.Legal.GetPage)
					legalPages.PUT("/last-updated", h.Legal.SetLastUpdated)
					legalPages.POST("/sections", h.Legal.AddSection)
					legalPages.PUT("/sections/:id", h.Legal.UpdateSection)
					legalPages.DELETE("/sections/:id", h.Legal.DeleteSection)
				}

				pressKit := adminPrivate.Group("/press")
				{
					pressKit.GET("", h.Press.GetKit)
					pressKit.POST("/assets", h.Press.AddAsset)
					pressKit.POST("/assets/upload", h.Press.UploadAsset)
					pressKit.PUT("/assets/:id", h.Press.UpdateAsset)
					pressKit.DELETE("/assets/:id", h.Press.DeleteAsset)
					pressKit.POST("/news", h.Press.AddNews)
					pressKit.PUT("/news/:id", h.Press.UpdateNews)
					pressKit.DELETE("/news/:id", h.Press.DeleteNews)
					pressKit.PUT("/facts", h.Press.SetFacts)
					pressKit.PUT("/facts/:index", h.Press.UpdateFact)
				}

				contactAdmin := adminPrivate.Group("/contact")
				{
					contactAdmin.GET("/info", h.Contact.GetInfo)
					contactAdmin.PUT("/info", h.Contact.UpdateInfo)
					contactAdmin.GET("/messages", h.Contact.ListMessages)
					contactAdmin.GET("/messages/:id", h.Contact.GetMessage)
					contactAdmin.PUT("/messages/:id/status", h.Contact.SetStatus)
					contactAdmin.POST("/messages/:id/reply", h.Contact.Reply)
					contactAdmin.DELETE("/messages/:id", h.Contact.DeleteMessage)
				}
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/rss.xml", h.RSS.GenerateRSS)
			public.GET("/search", h.Search.Search)

			public.GET("/posts", h.Blog.ListPublicPosts)
			public.GET("/posts/:slug", h.Blog.GetPublicPost)

			public.GET("/careers", h.Careers.ListPublicPositions)
			public.GET("/careers/:id", h.Careers.GetPublicPosition)
			public.POST("/careers/:id/applications", h.Applications.Submit)

			public.GET("/about", h.About.GetAbout)
			public.GET("/faqs", h.FAQ.ListPublicFAQs)
			public.GET("/legal/:kind", h.Legal.GetPage)
			public.GET("/press-kit", h.Press.GetKit)

			public.GET("/contact", h.Contact.GetInfo)
			public.POST("/contact/messages", h.Contact.SubmitMessage)
		}
	}

	return router
}
