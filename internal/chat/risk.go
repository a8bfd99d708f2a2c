package chat

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mannmitra/mannmitra/internal/ai"
)

// RiskLevel is the discrete severity bucket for crisis language.
// Ordering is monotonic; levels are computed fresh per message and never
// stored.
type RiskLevel int

const (
	RiskNone RiskLevel = iota
	RiskMild
	RiskElevated
	RiskUrgent
)

func (r RiskLevel) String() string {
	switch r {
	case RiskUrgent:
		return "urgent"
	case RiskElevated:
		return "elevated"
	case RiskMild:
		return "mild"
	default:
		return "none"
	}
}

// Keyword tiers, checked in strict severity order with short-circuit.
// The urgent/elevated tiers are a hard safety floor: they run before and
// are never overridden by the model-assisted check.
var (
	urgentTerms = []string{
		"suicide", "kill myself", "end my life", "jump off", "hang myself",
		"आत्महत्या", "hurt myself badly",
	}
	elevatedTerms = []string{
		"self harm", "cut myself", "can't go on", "no reason to live", "severe pain",
	}
	mildTerms = []string{
		"very sad", "depressed", "lonely", "crying", "hopeless", "numb", "empty",
	}
)

const riskPrompt = `Classify self-harm risk: return only JSON {"risk":0|1|2|3}. Message: `

// Classifier maps free text to a RiskLevel. The provider is optional;
// without one the classifier is fully deterministic.
type Classifier struct {
	provider ai.Provider
	model    string
	timeout  time.Duration
}

func NewClassifier(provider ai.Provider, model string, timeout time.Duration) *Classifier {
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &Classifier{provider: provider, model: model, timeout: timeout}
}

// Classify runs the keyword tiers first, then (if configured) the
// model-assisted tier. Any malformed or failed model response resolves
// to RiskNone: escalation requires positive evidence, errors never
// escalate. Without a provider, a sadness keyword tier yields RiskMild.
func (c *Classifier) Classify(ctx context.Context, text string) RiskLevel {
	tl := strings.ToLower(text)
	if containsAny(tl, urgentTerms) {
		return RiskUrgent
	}
	if containsAny(tl, elevatedTerms) {
		return RiskElevated
	}
	if c.provider != nil {
		return c.modelRisk(ctx, text)
	}
	if containsAny(tl, mildTerms) {
		return RiskMild
	}
	return RiskNone
}

func (c *Classifier) modelRisk(ctx context.Context, text string) RiskLevel {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	raw, err := c.provider.Complete(ctx, c.model, riskPrompt+text)
	if err != nil {
		log.Debug().Err(err).Msg("risk check failed, resolving to none")
		return RiskNone
	}
	level, ok := parseRiskJSON(raw)
	if !ok {
		log.Debug().Str("raw", raw).Msg("risk check returned malformed output, resolving to none")
		return RiskNone
	}
	return level
}

// parseRiskJSON accepts the strict {"risk":n} shape, tolerating code
// fences and surrounding prose around the JSON object. Anything else,
// including an out-of-range value, is treated as absence of evidence.
func parseRiskJSON(raw string) (RiskLevel, bool) {
	candidate := strings.TrimSpace(raw)
	if start, end := strings.Index(candidate, "{"), strings.LastIndex(candidate, "}"); start >= 0 && end > start {
		candidate = candidate[start : end+1]
	}
	var out struct {
		Risk *int `json:"risk"`
	}
	if err := json.Unmarshal([]byte(candidate), &out); err != nil || out.Risk == nil {
		return RiskNone, false
	}
	if *out.Risk < 0 || *out.Risk > 3 {
		return RiskNone, false
	}
	return RiskLevel(*out.Risk), true
}

func containsAny(lowered string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lowered, t) {
			return true
		}
	}
	return false
}
