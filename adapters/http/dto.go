package http

import (
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/internal/domain/career"
	"github.com/khoahotran/planmoni-site/pkg/markdown"
)

// Blog DTOs
type CreatePostRequest struct {
	Title    string      `json:"title"`
	Excerpt  string      `json:"excerpt"`
	Content  string      `json:"content"`
	Author   string      `json:"author"`
	Category string      `json:"category"`
	Status   blog.Status `json:"status"`
	ReadTime string      `json:"read_time"`
	Image    string      `json:"image"`
	Slug     string      `json:"slug"`
}

// PostDTO is the public shape of a post; content is also served as HTML.
type PostDTO struct {
	blog.Post
	ContentHTML string `json:"content_html,omitempty"`
}

func ToPostDTO(p blog.Post) (PostDTO, error) {
	dto := PostDTO{Post: p}
	if body := p.Body(); body != "" {
		html, err := markdown.ToHTML(body)
		if err != nil {
			return dto, err
		}
		dto.ContentHTML = html
	}
	return dto, nil
}

// PostSummaryDTO drops the body for list views.
type PostSummaryDTO struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Excerpt  string  `json:"excerpt"`
	Author   string  `json:"author"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	ReadTime string  `json:"read_time"`
	Image    *string `json:"image,omitempty"`
	Slug     string  `json:"slug"`
}

func ToPostSummaryDTO(p blog.Post) PostSummaryDTO {
	return PostSummaryDTO{
		ID:       p.ID,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Author:   p.Author,
		Date:     p.Date,
		Category: p.Category,
		ReadTime: p.ReadTime,
		Image:    p.Image,
		Slug:     p.Slug,
	}
}

// Careers DTOs
type CreatePositionRequest struct {
	Title        string        `json:"title"`
	Department   string        `json:"department"`
	Location     string        `json:"location"`
	Type         string        `json:"type"`
	Salary       string        `json:"salary"`
	Description  string        `json:"description"`
	Requirements []string      `json:"requirements"`
	Status       career.Status `json:"status"`
}

type SubmitApplicationRequest struct {
	PositionID         string `json:"position_id"`
	PositionTitle      string `json:"position_title"`
	ApplicantName      string `json:"applicant_name"`
	Email              string `json:"email" binding:"omitempty,email"`
	Phone              string `json:"phone"`
	Location           string `json:"location"`
	Experience         string `json:"experience"`
	CoverLetter        string `json:"cover_letter"`
	ResumeFileName     string `json:"resume_file_name"`
	PortfolioURL       string `json:"portfolio_url" binding:"omitempty,url"`
	LinkedinURL        string `json:"linkedin_url" binding:"omitempty,url"`
	AvailableStartDate string `json:"available_start_date"`
	SalaryExpectation  string `json:"salary_expectation"`
}

// Contact DTOs
type SubmitMessageRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReplyRequest struct {
	Reply string `json:"reply"`
}

// Singleton text fields (mission, story, last updated)
type TextRequest struct {
	Text string `json:"text"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
