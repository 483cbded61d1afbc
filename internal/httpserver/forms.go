package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"godivatech-site/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func createContactHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data", "errors": validationErrors(err)})
			return
		}

		msg, err := deps.Contacts.Create(c.Request.Context(), domain.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			logger.Printf("create contact message: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit contact form", "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

func subscribeHandler(deps Deps, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email", "errors": validationErrors(err)})
			return
		}

		sub, err := deps.Subscribers.Subscribe(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, domain.ErrEmailSubscribed) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Email already subscribed"})
				return
			}
			logger.Printf("subscribe %s: %v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to subscribe to newsletter", "error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

// validationErrors flattens a gin binding error into per-field entries the
// contact form renders inline.
func validationErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []gin.H{{"message": err.Error()}}
	}

	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " is required"
		case "email":
			msg = field + " must be a valid email address"
		default:
			msg = field + " is invalid"
		}
		out = append(out, gin.H{"field": field, "message": msg})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
