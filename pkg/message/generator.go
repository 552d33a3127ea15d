package message

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Bank is one entry in the generator's institution pool.
type Bank struct {
	BIC  string `yaml:"bic" json:"bic"`
	Name string `yaml:"name" json:"name"`
}

// DefaultBanks spans the risk tiers the geographic scorer knows about so that
// generated batches exercise every rule at least occasionally.
var DefaultBanks = []Bank{
	{BIC: "CHASUS33XXX", Name: "JPMorgan Chase"},
	{BIC: "DEUTDEFFXXX", Name: "Deutsche Bank"},
	{BIC: "BARCGB22XXX", Name: "Barclays"},
	{BIC: "BNPAFRPPXXX", Name: "BNP Paribas"},
	{BIC: "HSBCHKHHXXX", Name: "HSBC Hong Kong"},
	{BIC: "SBININBBXXX", Name: "State Bank of India"},
	{BIC: "NBIRIRTHXXX", Name: "National Bank of Iran"},
	{BIC: "VTBRRUMMXXX", Name: "VTB Bank"},
	{BIC: "EBILAEADXXX", Name: "Emirates NBD"},
	{BIC: "TESTUS33XXX", Name: "Test Bank"},
}

var memos = []string{
	"Invoice 2024-1187 settlement",
	"Quarterly supplier payment",
	"Payroll transfer",
	"Consulting services Q3",
	"Urgent payment needed immediately",
	"Confidential transfer per agreement",
	"Equipment purchase order 7731",
	"",
}

var customers = []string{
	"Acme Industrial Ltd",
	"Northwind Traders",
	"Globex Corporation",
	"Meridian Logistics",
	"Vandelay Imports",
}

// Generator produces synthetic messages for pipeline runs and demos. A fixed
// seed yields a reproducible batch.
type Generator struct {
	rnd   *rand.Rand
	banks []Bank
}

// NewGenerator creates a generator over the given bank pool. An empty pool
// falls back to DefaultBanks.
func NewGenerator(banks []Bank, seed int64) *Generator {
	if len(banks) == 0 {
		banks = DefaultBanks
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		banks: banks,
	}
}

// Generate returns n synthetic messages. Roughly a third of the amounts are
// round multiples of 1000 and a few are large enough to trip the amount
// rules, so a generated batch is never uniformly clean.
func (g *Generator) Generate(n int) []*Message {
	msgs := make([]*Message, 0, n)
	for i := 0; i < n; i++ {
		sender := g.banks[g.rnd.Intn(len(g.banks))]
		receiver := g.banks[g.rnd.Intn(len(g.banks))]

		msg := &Message{
			ID:               g.id(),
			Type:             Types[g.rnd.Intn(len(Types))],
			Reference:        fmt.Sprintf("REF%06d", g.rnd.Intn(1000000)),
			Amount:           fmt.Sprintf("%s %s", g.amount(), "USD"),
			Currency:         "USD",
			SenderBIC:        sender.BIC,
			ReceiverBIC:      receiver.BIC,
			ValueDate:        time.Now().Format("2006-01-02"),
			OrderingCustomer: customers[g.rnd.Intn(len(customers))],
			Beneficiary:      customers[g.rnd.Intn(len(customers))],
			RemittanceInfo:   memos[g.rnd.Intn(len(memos))],
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// id draws the UUID bytes from the generator's seeded source so message IDs
// are reproducible under a fixed seed too.
func (g *Generator) id() string {
	u, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		u = uuid.New()
	}
	return fmt.Sprintf("MSG-%s", u.String()[:8])
}

func (g *Generator) amount() string {
	switch g.rnd.Intn(4) {
	case 0: // round amount
		return fmt.Sprintf("%d.00", (g.rnd.Intn(50)+1)*1000)
	case 1: // large amount with odd precision
		return fmt.Sprintf("%d.%02d", g.rnd.Intn(400000)+100000, g.rnd.Intn(99)+1)
	default:
		return fmt.Sprintf("%d.%02d", g.rnd.Intn(20000)+10, g.rnd.Intn(100))
	}
}
