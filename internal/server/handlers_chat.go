package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mannmitra/mannmitra/internal/chat"
	"github.com/mannmitra/mannmitra/internal/session"
)

type sessionCreateRequest struct {
	Lang string `json:"lang"`
}

func (a *App) createSession(c *gin.Context) {
	var payload sessionCreateRequest
	// Body is optional; an empty one means English.
	_ = c.ShouldBindJSON(&payload)

	sess := a.Sessions.Create()
	sess.SetLang(session.ParseLanguage(payload.Lang))
	c.JSON(http.StatusOK, gin.H{
		"token": sess.Token,
		"lang":  sess.Lang(),
	})
}

func (a *App) endSession(c *gin.Context) {
	a.Sessions.End(c.Param("token"))
	c.Status(http.StatusNoContent)
}

type langRequest struct {
	Lang string `json:"lang"`
}

func (a *App) setLanguage(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	var payload langRequest
	if !mustJSON(c, &payload) {
		return
	}
	sess.SetLang(session.ParseLanguage(payload.Lang))
	c.JSON(http.StatusOK, gin.H{"lang": sess.Lang()})
}

func (a *App) history(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": sess.History()})
}

type chatRequest struct {
	Message string `json:"message"`
}

func (a *App) chatTurn(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	var payload chatRequest
	if !mustJSON(c, &payload) {
		return
	}
	msg := strings.TrimSpace(payload.Message)
	if msg == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}
	out := a.Chat.HandleTurn(c.Request.Context(), sess, msg)
	c.JSON(http.StatusOK, out)
}

func (a *App) recap(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"recap": a.Chat.BuildRecap(c.Request.Context(), sess)})
}

func (a *App) acceptSuggestion(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	action, err := a.Chat.AcceptSuggestion(sess)
	if err != nil {
		if errors.Is(err, chat.ErrNoSuggestion) {
			writeError(c, http.StatusNotFound, "no active suggestion")
			return
		}
		writeError(c, http.StatusInternalServerError, "failed to accept suggestion")
		return
	}
	c.JSON(http.StatusOK, action)
}

func (a *App) declineSuggestion(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	a.Chat.DeclineSuggestion(sess)
	c.Status(http.StatusNoContent)
}

func (a *App) who5(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": a.Library.WHO5Items})
}

func (a *App) exercises(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"exercises": a.Library.Exercises})
}

func (a *App) helplines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"helplines": a.Library.Helplines})
}
