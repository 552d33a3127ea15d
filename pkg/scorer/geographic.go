package scorer

import (
	"fmt"
	"strings"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

// DefaultHighRiskCountries are sanctioned or high-alert jurisdictions.
var DefaultHighRiskCountries = []string{
	"IR", "KP", "SY", "CU", "VE", "RU", "BY", "AF", "IQ", "LB",
	"SD", "ZW", "MM", "YE", "SO", "CD", "CG", "HT", "TG", "GN",
}

// DefaultMediumRiskCountries are enhanced-monitoring jurisdictions, disjoint
// from the high-risk set.
var DefaultMediumRiskCountries = []string{
	"CN", "HK", "SG", "AE", "SA", "QA", "KW", "BH", "OM", "JO",
	"TR", "EG", "MA", "TN", "DZ", "LY", "PK", "BD", "LK", "NP",
}

// Geographic flags transactions touching high- or medium-risk jurisdictions,
// reading the ISO country code embedded in each BIC.
type Geographic struct {
	high   map[string]bool
	medium map[string]bool
}

// NewGeographic creates the geographic risk scorer. Nil slices select the
// default country sets.
func NewGeographic(highRisk, mediumRisk []string) *Geographic {
	if highRisk == nil {
		highRisk = DefaultHighRiskCountries
	}
	if mediumRisk == nil {
		mediumRisk = DefaultMediumRiskCountries
	}
	return &Geographic{
		high:   toSet(highRisk),
		medium: toSet(mediumRisk),
	}
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[strings.ToUpper(c)] = true
	}
	return set
}

func (g *Geographic) Name() string {
	return "geographic"
}

// CountryFromBIC returns the 2-letter country code embedded at positions 4-5
// of a BIC, or "" when the code is too short to carry one.
func CountryFromBIC(bic string) string {
	if len(bic) < 6 {
		return ""
	}
	return strings.ToUpper(bic[4:6])
}

func (g *Geographic) Analyze(msg *message.Message) message.ScoreResult {
	res := message.ScoreResult{Scorer: g.Name()}

	sender := CountryFromBIC(msg.SenderBIC)
	receiver := CountryFromBIC(msg.ReceiverBIC)

	switch {
	case g.high[sender]:
		res.Score += 0.4
		res.Reasons = append(res.Reasons, fmt.Sprintf("High-risk sender country: %s", sender))
	case g.medium[sender]:
		res.Score += 0.2
		res.Reasons = append(res.Reasons, fmt.Sprintf("Medium-risk sender country: %s", sender))
	}

	switch {
	case g.high[receiver]:
		res.Score += 0.4
		res.Reasons = append(res.Reasons, fmt.Sprintf("High-risk receiver country: %s", receiver))
	case g.medium[receiver]:
		res.Score += 0.2
		res.Reasons = append(res.Reasons, fmt.Sprintf("Medium-risk receiver country: %s", receiver))
	}

	// Asymmetry bonus: fires only when exactly one side is high-risk and the
	// other side is in neither set. A high/medium pairing does not qualify.
	if sender != "" && receiver != "" {
		senderHigh, receiverHigh := g.high[sender], g.high[receiver]
		senderMed, receiverMed := g.medium[sender], g.medium[receiver]
		if (senderHigh && !receiverHigh && !receiverMed) ||
			(receiverHigh && !senderHigh && !senderMed) {
			res.Score += 0.3
			res.Reasons = append(res.Reasons, fmt.Sprintf("Unusual risk level combination: %s -> %s", sender, receiver))
		}
	}

	res.Score = clamp(res.Score)
	return res
}
