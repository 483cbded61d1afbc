package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Minimal admin auth: a single configured user and bearer tokens held in
// memory. Sessions do not survive a restart.

type sessionUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionUser
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]sessionUser)}
}

func (s *sessionStore) create(u sessionUser) string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = u
	s.mu.Unlock()
	return token
}

func (s *sessionStore) get(token string) (sessionUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.sessions[token]
	return u, ok
}

func (s *sessionStore) remove(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(deps Deps, sessions *sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if req.Username != deps.AdminUsername || req.Password != deps.AdminPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		user := sessionUser{ID: 1, Username: req.Username}
		token := sessions.create(user)
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

func logoutHandler(sessions *sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			sessions.remove(token)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

func currentUserHandler(sessions *sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, ok := sessions.get(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
