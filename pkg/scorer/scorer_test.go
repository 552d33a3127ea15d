package scorer

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

// Scores must stay in [0, 1] for arbitrary input, including garbage fields.
func TestScoreRangeProperty(t *testing.T) {
	scorers := []Scorer{
		NewAmount(),
		NewPattern(nil, nil),
		NewGeographic(nil, nil),
	}

	rnd := rand.New(rand.NewSource(1))
	bics := []string{
		"CHASUS33XXX", "NBIRIRTHXXX", "TESTUS33XXX", "HSBCHKHHXXX",
		"TEST", "", "999000000", "FAKEIRXXKP",
	}
	memos := []string{
		"", "urgent secret confidential immediately",
		"Invoice settlement", "URGENT",
	}

	for i := 0; i < 500; i++ {
		msg := &message.Message{
			Amount:         randomAmount(rnd),
			SenderBIC:      bics[rnd.Intn(len(bics))],
			ReceiverBIC:    bics[rnd.Intn(len(bics))],
			RemittanceInfo: memos[rnd.Intn(len(memos))],
		}
		for _, s := range scorers {
			res := s.Analyze(msg)
			assert.GreaterOrEqual(t, res.Score, 0.0, "%s on %+v", s.Name(), msg)
			assert.LessOrEqual(t, res.Score, 1.0, "%s on %+v", s.Name(), msg)
			assert.Equal(t, s.Name(), res.Scorer)
		}
	}
}

func randomAmount(rnd *rand.Rand) string {
	switch rnd.Intn(5) {
	case 0:
		return ""
	case 1:
		return "not-a-number"
	case 2:
		return fmt.Sprintf("%d.00 USD", rnd.Intn(1000)*1000)
	case 3:
		return fmt.Sprintf("%f EUR", rnd.Float64()*1e6)
	default:
		return fmt.Sprintf("%d.%02d USD", rnd.Intn(200000), rnd.Intn(100))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, clamp(1.7))
	assert.Equal(t, 0.0, clamp(-0.2))
	assert.Equal(t, 0.5, clamp(0.5))
}
