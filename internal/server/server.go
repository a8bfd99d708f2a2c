// Package server exposes the wellness core over a small JSON API for the
// browser frontend. It owns no domain state of its own.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mannmitra/mannmitra/internal/chat"
	"github.com/mannmitra/mannmitra/internal/checkin"
	"github.com/mannmitra/mannmitra/internal/content"
	"github.com/mannmitra/mannmitra/internal/session"
)

type App struct {
	Sessions *session.Manager
	Chat     *chat.Coordinator
	Checkins checkin.Store
	Library  *content.Library
}

func New(sessions *session.Manager, coordinator *chat.Coordinator, checkins checkin.Store, lib *content.Library) *App {
	return &App{Sessions: sessions, Chat: coordinator, Checkins: checkins, Library: lib}
}

func (a *App) Register(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/session", a.createSession)
	api.DELETE("/session/:token", a.endSession)
	api.PUT("/session/:token/lang", a.setLanguage)
	api.GET("/session/:token/history", a.history)
	api.POST("/session/:token/chat", a.chatTurn)
	api.GET("/session/:token/recap", a.recap)
	api.POST("/session/:token/suggestion/accept", a.acceptSuggestion)
	api.POST("/session/:token/suggestion/decline", a.declineSuggestion)

	api.POST("/session/:token/checkin", a.submitCheckin)
	api.GET("/checkin/history", a.checkinHistory)
	api.GET("/checkin/trend", a.checkinTrend)

	api.GET("/content/who5", a.who5)
	api.GET("/content/exercises", a.exercises)
	api.GET("/content/helplines", a.helplines)

	games := api.Group("/session/:token/games")
	games.POST("/stroop/start", a.stroopStart)
	games.POST("/stroop/answer", a.stroopAnswer)
	games.POST("/riddles/start", a.riddlesStart)
	games.GET("/riddles/current", a.riddlesCurrent)
	games.POST("/riddles/answer", a.riddlesAnswer)
	games.POST("/riddles/skip", a.riddlesSkip)
	games.POST("/riddles/hint", a.riddlesHint)
	games.GET("/:game/banner", a.gameBanner)
	games.POST("/gratitude/start", a.gratitudeStart)
	games.GET("/gratitude/remaining", a.gratitudeRemaining)
	games.POST("/gratitude/save", a.gratitudeSave)
}

func writeError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"error": detail})
}

// sessionFromParam resolves the :token path segment or writes a 404.
func (a *App) sessionFromParam(c *gin.Context) (*session.Session, bool) {
	sess, err := a.Sessions.Get(c.Param("token"))
	if err != nil {
		writeError(c, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

// mustJSON binds the request body or writes a 400.
func mustJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
