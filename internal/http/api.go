package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fitlog/internal/auth"
	"fitlog/internal/domain"
	"fitlog/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth      service.AuthService
	workouts  service.WorkoutService
	sessions  *auth.Sessions
	staticDir string
	indexFile string
}

func NewHandler(authSvc service.AuthService, workouts service.WorkoutService, sessions *auth.Sessions, staticDir, indexFile string) *Handler {
	return &Handler{
		auth:      authSvc,
		workouts:  workouts,
		sessions:  sessions,
		staticDir: staticDir,
		indexFile: indexFile,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, allowedOrigins []string) {
	router.Use(corsMiddleware(allowedOrigins))

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.POST("/logout", h.logout)
		api.GET("/current_user", h.currentUser)
		api.GET("/workouts", h.listWorkouts)
		api.POST("/workouts", h.createWorkout)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	router.NoRoute(h.serveStatic)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createWorkoutRequest struct {
	Type      string `json:"type"`
	Date      string `json:"date"`
	Exercises string `json:"exercises"`
}

type WorkoutResponse struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Exercises string `json:"exercises"`
	CreatedAt string `json:"created_at"`
}

// corsMiddleware echoes credentialed CORS headers for the configured frontend
// origins so the session cookie survives cross-origin local development.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
			c.Writer.Header().Add("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	username, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		if err := h.sessions.Issue(c.Writer, username); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		// returned so the frontend can persist UI state even without cookies
		c.JSON(http.StatusOK, gin.H{"ok": true, "username": username})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.Clear(c.Writer)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) currentUser(c *gin.Context) {
	if username, ok := h.sessions.Read(c.Request); ok {
		c.JSON(http.StatusOK, gin.H{"username": username})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": nil})
}

func (h *Handler) listWorkouts(c *gin.Context) {
	username, ok := h.sessions.Read(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	workouts, err := h.workouts.List(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		resp[i] = workoutToResponse(workouts[i])
	}
	c.JSON(http.StatusOK, gin.H{"workouts": resp})
}

func (h *Handler) createWorkout(c *gin.Context) {
	username, ok := h.sessions.Read(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req createWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if _, err := h.workouts.Create(c.Request.Context(), username, req.Type, req.Date, req.Exercises); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// serveStatic serves the frontend from the configured directory, falling back
// to the index document for unknown paths (SPA routing). API misses stay JSON.
func (h *Handler) serveStatic(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if h.staticDir == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	rel := strings.TrimPrefix(filepath.Clean("/"+c.Request.URL.Path), "/")
	if rel == "" {
		rel = h.indexFile
	}

	target := filepath.Join(h.staticDir, rel)
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		c.File(target)
		return
	}
	c.File(filepath.Join(h.staticDir, h.indexFile))
}

func workoutToResponse(w domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:        w.ID,
		Type:      w.Type,
		Date:      w.Date,
		Exercises: w.Exercises,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
}
