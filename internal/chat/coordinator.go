package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mannmitra/mannmitra/internal/ai"
	"github.com/mannmitra/mannmitra/internal/content"
	"github.com/mannmitra/mannmitra/internal/session"
)

var ErrNoSuggestion = errors.New("no active suggestion")

// persona is the fixed system instruction for every generated reply.
const persona = "You are MannMitra, an empathetic, non-judgmental wellness companion for Indian youth. " +
	"Be supportive, reduce stigma. Offer gentle self-care (breathing, grounding, journaling). " +
	"Do not diagnose or prescribe. If crisis/self-harm hints appear, encourage immediate help and show helplines."

var langInstructions = map[session.Language]string{
	session.LangEnglish:  "Reply in natural, supportive English.",
	session.LangHindi:    "Reply in Hindi (Devanagari). Keep it warm and simple.",
	session.LangHinglish: "Reply in Hindi written in Latin script (Hinglish). Example: 'main theek hoon'. Keep tone warm.",
}

// Canned replies for the greeting fast path.
var greetingReplies = map[session.Language]string{
	session.LangEnglish:  "I'm doing well — thanks for asking! How are you?",
	session.LangHindi:    "मैं ठीक हूँ — आपका शुक्रिया! आप कैसे हैं?",
	session.LangHinglish: "Main theek hoon — shukriya! Aap kaise ho?",
}

// Presence fallbacks when no collaborator is configured.
var listenFallbacks = map[session.Language]string{
	session.LangEnglish:  "Thanks for sharing. I'm here to listen.",
	session.LangHindi:    "मैं आपकी बात सुन रहा/रही हूँ। आप अकेले नहीं हैं।",
	session.LangHinglish: "Main sun raha/rahi hoon. Aap akelay nahi ho.",
}

// Apology-plus-presence fallbacks when the collaborator fails mid-turn.
var apologyFallbacks = map[session.Language]string{
	session.LangEnglish:  "I'm having a little trouble right now, but I'm still here to support you.",
	session.LangHindi:    "अभी थोड़ी दिक्कत आ रही है, पर मैं आपके साथ हूँ।",
	session.LangHinglish: "Abhi thodi dikkat aa rahi hai, par main aapke saath hoon.",
}

var greetings = map[string]struct{}{
	"aap kaise ho": {},
	"kaise ho":     {},
	"tum kaise ho": {},
}

const empathyPrompt = "Thanks for sharing how heavy this feels. Would you like to tell me what made today hard?"

type NoticeKind string

const (
	NoticeNone   NoticeKind = ""
	NoticeCrisis NoticeKind = "crisis"
	NoticeMild   NoticeKind = "empathy"
)

// TurnOutcome is what one user turn produces for the presentation layer.
type TurnOutcome struct {
	Reply      string              `json:"reply"`
	Risk       RiskLevel           `json:"risk"`
	Greeting   bool                `json:"greeting"`
	NoticeKind NoticeKind          `json:"notice_kind,omitempty"`
	Notice     string              `json:"notice,omitempty"`
	Helplines  []content.Helpline  `json:"helplines,omitempty"`
	Suggestion *session.Suggestion `json:"suggestion,omitempty"`
}

// Coordinator orchestrates one conversational turn: greeting fast path,
// risk classification, suggestion selection, reply generation and
// transcript updates. Collaborator failures never escape it.
type Coordinator struct {
	provider   ai.Provider
	classifier *Classifier
	engine     *Engine
	lib        *content.Library
	model      string
	timeout    time.Duration
}

func NewCoordinator(provider ai.Provider, classifier *Classifier, engine *Engine, lib *content.Library, model string, timeout time.Duration) *Coordinator {
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &Coordinator{
		provider:   provider,
		classifier: classifier,
		engine:     engine,
		lib:        lib,
		model:      model,
		timeout:    timeout,
	}
}

// HandleTurn processes one user message against the session.
func (c *Coordinator) HandleTurn(ctx context.Context, sess *session.Session, text string) TurnOutcome {
	lang := sess.Lang()

	if _, ok := greetings[normalizeGreeting(text)]; ok {
		reply := greetingReplies[lang]
		sess.Append(session.RoleAssistant, reply)
		return TurnOutcome{Reply: reply, Risk: RiskNone, Greeting: true}
	}

	sess.Append(session.RoleUser, text)

	out := TurnOutcome{}
	out.Risk = c.classifier.Classify(ctx, text)
	switch {
	case out.Risk >= RiskElevated:
		// Crisis guidance pre-empts coping-exercise prompts.
		sess.ClearSuggestion()
		out.NoticeKind = NoticeCrisis
		out.Notice = c.crisisNotice()
		out.Helplines = c.lib.Helplines
	case out.Risk == RiskMild:
		sess.SetSuggestion(c.engine.Suggest(text))
		out.NoticeKind = NoticeMild
		out.Notice = empathyPrompt
	default:
		sess.SetSuggestion(c.engine.Suggest(text))
	}
	out.Suggestion = sess.Suggestion()

	reply := c.generate(ctx, text, lang)
	sess.Append(session.RoleAssistant, reply)
	out.Reply = reply
	return out
}

func (c *Coordinator) crisisNotice() string {
	parts := make([]string, 0, len(c.lib.Helplines))
	for _, h := range c.lib.Helplines {
		parts = append(parts, fmt.Sprintf("%s: %s", h.Name, h.Phone))
	}
	return "You deserve support. If you're in danger, please reach out now.\n\n" + strings.Join(parts, " • ")
}

func (c *Coordinator) generate(ctx context.Context, text string, lang session.Language) string {
	if c.provider == nil {
		return listenFallbacks[lang]
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	reply, err := c.provider.CompleteWithSystem(ctx, c.model, persona+"\n"+langInstructions[lang], text)
	if err != nil || reply == "" {
		if err != nil {
			log.Warn().Err(err).Msg("reply generation failed, using fallback")
		}
		return apologyFallbacks[lang]
	}
	return reply
}

// normalizeGreeting trims, lowercases and strips trailing punctuation so
// "Aap kaise ho?!" hits the fast path.
func normalizeGreeting(text string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(text)), "?.! ")
}

// SuggestionAction is the outcome of accepting the active suggestion.
type SuggestionAction struct {
	Kind    session.SuggestionKind `json:"kind"`
	Title   string                 `json:"title"`
	Steps   []string               `json:"steps,omitempty"`
	Message string                 `json:"message,omitempty"`
	GameID  string                 `json:"game_id,omitempty"`
}

var (
	acceptCheers = []string{
		"Nice choice — tiny steps change the vibe.",
		"Good call — gentle actions shift the day.",
	}
	acceptQuotes = []string{
		"Slow is smooth, and smooth is fast.",
		"One breath at a time.",
	}
)

// AcceptSuggestion resolves the active suggestion into either exercise
// steps plus a rotating encouragement, or a game to launch. It clears
// the suggestion either way.
func (c *Coordinator) AcceptSuggestion(sess *session.Session) (SuggestionAction, error) {
	sug := sess.Suggestion()
	if sug == nil {
		return SuggestionAction{}, ErrNoSuggestion
	}
	sess.ClearSuggestion()
	action := SuggestionAction{Kind: sug.Kind, Title: sug.Title}
	if sug.Kind == session.KindGame {
		action.GameID = sug.ID
		return action, nil
	}
	if ex, ok := c.lib.Exercise(sug.ID); ok {
		action.Steps = ex.Steps
	}
	action.Message = sess.PickNew("cheer_ex", acceptCheers) + "\n\n" + sess.PickNew("quote_ex", acceptQuotes)
	return action, nil
}

// DeclineSuggestion clears the active suggestion without further effect.
func (c *Coordinator) DeclineSuggestion(sess *session.Session) {
	sess.ClearSuggestion()
}
