package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mannmitra/mannmitra/internal/games"
	"github.com/mannmitra/mannmitra/internal/session"
)

func (a *App) stroopStart(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	item := sess.StartStroop(time.Now())
	c.JSON(http.StatusOK, gin.H{
		"item":   item,
		"trial":  0,
		"trials": games.Trials,
		"colors": games.Colors,
	})
}

type stroopAnswerRequest struct {
	Color string `json:"color"`
}

func (a *App) stroopAnswer(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	var payload stroopAnswerRequest
	if !mustJSON(c, &payload) {
		return
	}
	item, trial, result, err := sess.AnswerStroop(payload.Color, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNoActiveGame):
			writeError(c, http.StatusNotFound, "no attention game in progress")
		case errors.Is(err, games.ErrUnknownColor):
			writeError(c, http.StatusBadRequest, "unknown color")
		default:
			writeError(c, http.StatusInternalServerError, "failed to record answer")
		}
		return
	}
	if result != nil {
		c.JSON(http.StatusOK, gin.H{"done": true, "result": result})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"done":   false,
		"item":   item,
		"trial":  trial,
		"trials": games.Trials,
	})
}

func (a *App) riddlesStart(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	riddle := sess.StartRiddles(a.Library.Riddles)
	c.JSON(http.StatusOK, gin.H{
		"question": riddle.Question,
		"index":    0,
		"trials":   games.Trials,
	})
}

func (a *App) riddlesCurrent(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	riddle, index, err := sess.CurrentRiddle()
	if err != nil {
		writeError(c, http.StatusNotFound, "no riddle quiz in progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"question": riddle.Question,
		"index":    index,
		"trials":   games.Trials,
	})
}

type riddleAnswerRequest struct {
	Answer string `json:"answer"`
}

func (a *App) riddlesAnswer(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	var payload riddleAnswerRequest
	if !mustJSON(c, &payload) {
		return
	}
	feedback, correct, result, err := sess.SubmitRiddle(payload.Answer, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNoActiveGame):
			writeError(c, http.StatusNotFound, "no riddle quiz in progress")
		case errors.Is(err, games.ErrEmptyAnswer):
			writeError(c, http.StatusBadRequest, "answer is required")
		default:
			writeError(c, http.StatusInternalServerError, "failed to check answer")
		}
		return
	}
	resp := gin.H{"feedback": feedback, "correct": correct, "done": result != nil}
	if result != nil {
		resp["result"] = result
	}
	c.JSON(http.StatusOK, resp)
}

func (a *App) riddlesSkip(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	feedback, result, err := sess.SkipRiddle(time.Now())
	if err != nil {
		writeError(c, http.StatusNotFound, "no riddle quiz in progress")
		return
	}
	resp := gin.H{"feedback": feedback, "done": result != nil}
	if result != nil {
		resp["result"] = result
	}
	c.JSON(http.StatusOK, resp)
}

func (a *App) riddlesHint(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	hints, err := sess.RiddleHints()
	if err != nil {
		writeError(c, http.StatusNotFound, "no riddle quiz in progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hints": hints})
}

func (a *App) gameBanner(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	banner, ok := sess.Banner(c.Param("game"), time.Now())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": true, "banner": banner})
}

func (a *App) gratitudeStart(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	sess.StartGratitude(time.Now())
	c.JSON(http.StatusOK, gin.H{"seconds": int(games.GratitudeWindow.Seconds())})
}

func (a *App) gratitudeRemaining(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	remaining, running := sess.GratitudeRemaining(time.Now())
	c.JSON(http.StatusOK, gin.H{"running": running, "remaining": remaining})
}

type gratitudeSaveRequest struct {
	Notes []string `json:"notes"`
}

func (a *App) gratitudeSave(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	var payload gratitudeSaveRequest
	if !mustJSON(c, &payload) {
		return
	}
	notes := games.CleanNotes(payload.Notes)
	if len(notes) == 0 {
		writeError(c, http.StatusBadRequest, "write at least one note")
		return
	}
	message := sess.SaveGratitude()
	c.JSON(http.StatusOK, gin.H{"saved": len(notes), "message": message})
}
