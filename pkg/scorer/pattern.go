package scorer

import (
	"fmt"
	"strings"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

// DefaultFlaggedPatterns are substrings that mark a BIC as a test or
// placeholder institution.
var DefaultFlaggedPatterns = []string{"TEST", "FAKE", "DEMO", "999", "000000"}

// DefaultSuspiciousKeywords are remittance-text words associated with social
// engineering pressure.
var DefaultSuspiciousKeywords = []string{"urgent", "immediately", "secret", "confidential"}

// Pattern flags known-bad substrings in the BIC codes and pressure keywords
// in the remittance text. Sender and receiver BICs are scanned independently,
// so a pattern present in both contributes twice.
type Pattern struct {
	patterns []string
	keywords []string
}

// NewPattern creates the pattern risk scorer. Nil slices select the defaults.
// Configured lists are normalized so matching stays case-insensitive: BIC
// patterns are compared upper-cased, remittance keywords lower-cased.
func NewPattern(patterns, keywords []string) *Pattern {
	if patterns == nil {
		patterns = DefaultFlaggedPatterns
	}
	if keywords == nil {
		keywords = DefaultSuspiciousKeywords
	}
	p := &Pattern{
		patterns: make([]string, len(patterns)),
		keywords: make([]string, len(keywords)),
	}
	for i, pat := range patterns {
		p.patterns[i] = strings.ToUpper(pat)
	}
	for i, kw := range keywords {
		p.keywords[i] = strings.ToLower(kw)
	}
	return p
}

func (p *Pattern) Name() string {
	return "pattern"
}

func (p *Pattern) Analyze(msg *message.Message) message.ScoreResult {
	res := message.ScoreResult{Scorer: p.Name()}

	sender := strings.ToUpper(msg.SenderBIC)
	receiver := strings.ToUpper(msg.ReceiverBIC)

	for _, pat := range p.patterns {
		if strings.Contains(sender, pat) {
			res.Score += 0.4
			res.Reasons = append(res.Reasons, fmt.Sprintf("Test/fake pattern in sender BIC: %s", pat))
		}
		if strings.Contains(receiver, pat) {
			res.Score += 0.4
			res.Reasons = append(res.Reasons, fmt.Sprintf("Test/fake pattern in receiver BIC: %s", pat))
		}
	}

	if msg.SenderBIC != "" && msg.SenderBIC == msg.ReceiverBIC {
		res.Score += 0.5
		res.Reasons = append(res.Reasons, "Same sender and receiver BIC")
	}

	remittance := strings.ToLower(msg.RemittanceInfo)
	for _, kw := range p.keywords {
		if strings.Contains(remittance, kw) {
			res.Score += 0.2
			res.Reasons = append(res.Reasons, fmt.Sprintf("Suspicious keyword in remittance: %s", kw))
		}
	}

	res.Score = clamp(res.Score)
	return res
}
