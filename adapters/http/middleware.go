package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	authUC "github.com/khoahotran/planmoni-site/internal/application/usecase/auth"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

const (
	GinContextKeyUsername  = "username"
	GinContextKeySessionID = "sessionID"
	GinContextKeyRequestID = "requestID"

	headerRequestID = "X-Request-ID"
)

func AuthMiddleware(uc *authUC.AuthUseCase, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := uc.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			log.Debug("Rejected admin request", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(GinContextKeyUsername, claims.Username)
		c.Set(GinContextKeySessionID, claims.SessionID)
		c.Next()
	}
}

func GetSessionIDFromGinContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(GinContextKeySessionID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetUsernameFromGinContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(GinContextKeyUsername)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// RequestIDMiddleware reuses an incoming X-Request-ID or generates one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(GinContextKeyRequestID)),
		)
	}
}

// ErrorMiddleware renders the last error a handler attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, zap.String("path", c.Request.URL.Path), zap.String("request_id", c.GetString(GinContextKeyRequestID)))
		}

		body := appErr.ToJSON()
		if appErr.Details != "" && status < http.StatusInternalServerError {
			body["details"] = appErr.Details
		}
		c.AbortWithStatusJSON(status, body)
	}
}

// requireConfirmation guards destructive admin requests; the client must
// repeat the call with ?confirm=true.
func requireConfirmation(c *gin.Context, resource, id string) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	c.Error(apperror.NewConfirmationRequired(resource, id))
	return false
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return false
	}
	return true
}

func respond(c *gin.Context, status int, body any, err error) {
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(status, body)
}

func respondDeleted(c *gin.Context, err error) {
	if err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
