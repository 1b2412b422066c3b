package handlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sheetsync/internal/models"
	"sheetsync/internal/observability"
)

// SecretHeader carries the shared secret the spreadsheet trigger sends.
const SecretHeader = "X-Secret-Key"

// Runner dispatches sync runs and reports recent history.
type Runner interface {
	Trigger(cause string) bool
	RecentRuns() []models.SyncRun
}

// SyncHandler serves the webhook endpoint and the observability routes.
type SyncHandler struct {
	secret []byte
	runner Runner
	db     *gorm.DB
}

// NewSyncHandler builds the handler set. The secret and runner are passed at
// construction; handlers keep no global state.
func NewSyncHandler(secret string, runner Runner, db *gorm.DB) *SyncHandler {
	return &SyncHandler{secret: []byte(secret), runner: runner, db: db}
}

// NewRouter builds the gin engine with all service routes.
func NewRouter(h *SyncHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), observability.Middleware())

	router.POST("/sync-sheets", h.SyncSheets)
	router.GET("/healthz", h.Health)
	router.GET("/sync-runs", h.SyncRuns)
	router.GET("/metrics", observability.Handler())

	return router
}

// SyncSheets handles POST /sync-sheets. It authenticates the caller, hands
// the sync to the background runner, and returns immediately; the response
// never waits on pipeline completion, and pipeline failures after the
// response are logged server-side only.
func (h *SyncHandler) SyncSheets(c *gin.Context) {
	if !h.secretMatches(c.GetHeader(SecretHeader)) {
		log.Printf("unauthorized sync attempt from %s", c.ClientIP())
		RespondWithError(c, http.StatusUnauthorized, models.ErrorCodeUnauthorized, "Unauthorized", nil)
		return
	}

	cause := "webhook"
	if c.Request.ContentLength != 0 {
		var req models.SyncRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidJSON, "Invalid request payload", gin.H{"reason": err.Error()})
			return
		}
		if req.Message != "" {
			cause = req.Message
		}
	}

	if !h.runner.Trigger(cause) {
		c.JSON(http.StatusOK, gin.H{"message": "Sync already in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sync triggered"})
}

// SyncRuns handles GET /sync-runs: the in-memory history of recent pipeline
// runs, newest first.
func (h *SyncHandler) SyncRuns(c *gin.Context) {
	RespondWithSuccess(c, http.StatusOK, h.runner.RecentRuns())
}

// Health handles GET /healthz.
func (h *SyncHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		RespondWithError(c, http.StatusServiceUnavailable, models.ErrorCodeServiceUnavailable, "Database unreachable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// secretMatches compares SHA-256 digests so the comparison is constant-time
// and does not leak the configured secret's length.
func (h *SyncHandler) secretMatches(provided string) bool {
	if provided == "" {
		return false
	}
	want := sha256.Sum256(h.secret)
	got := sha256.Sum256([]byte(provided))
	return subtle.ConstantTimeCompare(want[:], got[:]) == 1
}
