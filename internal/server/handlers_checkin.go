package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mannmitra/mannmitra/internal/checkin"
)

type checkinRequest struct {
	Answers []int  `json:"answers"`
	Note    string `json:"note"`
}

func (a *App) submitCheckin(c *gin.Context) {
	sess, ok := a.sessionFromParam(c)
	if !ok {
		return
	}
	var payload checkinRequest
	if !mustJSON(c, &payload) {
		return
	}
	score, err := checkin.Score(payload.Answers)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	tier, message := checkin.Response(score, sess.PickNew)

	rec := checkin.Record{TS: time.Now().UTC(), Score: score, Note: payload.Note}
	if err := a.Checkins.Append(c.Request.Context(), rec); err != nil {
		log.Error().Err(err).Msg("failed to persist check-in")
		writeError(c, http.StatusInternalServerError, "failed to save check-in")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"score":   score,
		"tier":    tier,
		"message": message,
	})
}

func (a *App) checkinHistory(c *gin.Context) {
	n := intQuery(c, "limit", 20)
	records, err := a.Checkins.Recent(c.Request.Context(), n)
	if err != nil {
		log.Error().Err(err).Msg("failed to read check-in history")
		writeError(c, http.StatusInternalServerError, "failed to read history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkins": records})
}

func (a *App) checkinTrend(c *gin.Context) {
	days := intQuery(c, "days", 14)
	averages, err := a.Checkins.DailyAverages(c.Request.Context(), days)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute trend")
		writeError(c, http.StatusInternalServerError, "failed to compute trend")
		return
	}
	happy, err := a.Checkins.HappyDays(c.Request.Context(), time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Msg("failed to count happy days")
		writeError(c, http.StatusInternalServerError, "failed to compute trend")
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": averages, "happy_days": happy})
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
