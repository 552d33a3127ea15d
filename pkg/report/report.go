// Package report renders batch summaries and writes the transaction reports
// downstream consumers read. It only consumes the annotated fields the
// engine attaches; it makes no assumption about which scorers ran.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

const (
	fileMode = 0600

	// HighValueThresholdDefault selects transactions for the high-value
	// report, in USD.
	HighValueThresholdDefault = 50000
)

// Stats summarises one processed batch.
type Stats struct {
	Total      int     `json:"total"`
	Valid      int     `json:"valid"`
	Fraudulent int     `json:"fraudulent"`
	Clean      int     `json:"clean"`
	MT103      int     `json:"mt103"`
	MT202      int     `json:"mt202"`
	TotalUSD   float64 `json:"total_usd"`
}

// Summarize computes batch statistics from annotated messages.
func Summarize(msgs []*message.Message) Stats {
	var s Stats
	s.Total = len(msgs)
	total := decimal.Zero
	for _, m := range msgs {
		if m.ValidationStatus == message.ValidationValid {
			s.Valid++
		}
		switch m.FraudStatus {
		case message.FraudFraudulent:
			s.Fraudulent++
		case message.FraudClean:
			s.Clean++
		}
		switch m.Type {
		case message.TypeMT103:
			s.MT103++
		case message.TypeMT202:
			s.MT202++
		}
		if amt, err := message.ParseAmount(m.Amount); err == nil {
			total = total.Add(amt)
		}
	}
	s.TotalUSD, _ = total.Float64()
	return s
}

// PrintSummary writes the batch statistics and a top-N-by-amount table.
func PrintSummary(w io.Writer, msgs []*message.Message, topN int) {
	s := Summarize(msgs)
	fmt.Fprintf(w, "Processed %d messages: %d fraudulent, %d clean, %d valid (%.2f USD total)\n",
		s.Total, s.Fraudulent, s.Clean, s.Valid, s.TotalUSD)

	if topN <= 0 {
		topN = 10
	}
	top := byAmountDesc(msgs)
	if topN < len(top) {
		top = top[:topN]
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Type", "Amount", "Sender", "Receiver", "Status", "Fraud", "Score"})
	for _, m := range top {
		table.Append([]string{
			m.ID,
			string(m.Type),
			m.Amount,
			m.SenderBIC,
			m.ReceiverBIC,
			string(m.ValidationStatus),
			string(m.FraudStatus),
			fmt.Sprintf("%.2f", m.FraudScore),
		})
	}
	table.Render()
}

// WriteAllTransactions writes the full batch report to path.
func WriteAllTransactions(path string, msgs []*message.Message) error {
	s := Summarize(msgs)

	var b strings.Builder
	header(&b, "ALL TRANSACTIONS REPORT")
	fmt.Fprintf(&b, "Total Transactions: %d\n\n", s.Total)

	b.WriteString("SUMMARY STATISTICS:\n")
	fmt.Fprintf(&b, "- Valid Messages: %d\n", s.Valid)
	fmt.Fprintf(&b, "- Fraudulent Messages: %d\n", s.Fraudulent)
	fmt.Fprintf(&b, "- Clean Messages: %d\n", s.Clean)
	fmt.Fprintf(&b, "- MT103 Messages: %d\n", s.MT103)
	fmt.Fprintf(&b, "- MT202 Messages: %d\n", s.MT202)
	fmt.Fprintf(&b, "- Total Value: %.2f USD\n\n", s.TotalUSD)

	b.WriteString("TOP 10 TRANSACTIONS BY AMOUNT:\n")
	b.WriteString(strings.Repeat("-", 80) + "\n")
	top := byAmountDesc(msgs)
	if len(top) > 10 {
		top = top[:10]
	}
	for i, m := range top {
		fmt.Fprintf(&b, "%2d. %s | Type: %s | Amount: %s | Status: %s | Fraud: %s\n",
			i+1, m.ID, m.Type, m.Amount, m.ValidationStatus, m.FraudStatus)
	}

	return write(path, b.String())
}

// WriteHighValue writes the report covering transactions above the given
// USD threshold, including per-message fraud detail.
func WriteHighValue(path string, msgs []*message.Message, threshold float64) error {
	if threshold <= 0 {
		threshold = HighValueThresholdDefault
	}
	limit := decimal.NewFromFloat(threshold)

	var high []*message.Message
	for _, m := range msgs {
		if amt, err := message.ParseAmount(m.Amount); err == nil && amt.GreaterThan(limit) {
			high = append(high, m)
		}
	}

	var b strings.Builder
	header(&b, "HIGH VALUE TRANSACTIONS REPORT")
	fmt.Fprintf(&b, "High-Value Transactions (> %.0f USD): %d\n\n", threshold, len(high))

	if len(high) == 0 {
		b.WriteString("No high-value transactions found.\n")
		return write(path, b.String())
	}

	s := Summarize(high)
	b.WriteString("HIGH-VALUE TRANSACTION STATISTICS:\n")
	fmt.Fprintf(&b, "- Valid Messages: %d\n", s.Valid)
	fmt.Fprintf(&b, "- Fraudulent Messages: %d\n", s.Fraudulent)
	fmt.Fprintf(&b, "- Clean Messages: %d\n", s.Clean)
	fmt.Fprintf(&b, "- Total Value: %.2f USD\n\n", s.TotalUSD)

	b.WriteString("HIGH-VALUE TRANSACTION DETAILS:\n")
	b.WriteString(strings.Repeat("-", 80) + "\n")
	for i, m := range high {
		fmt.Fprintf(&b, "%2d. %s | Type: %s | Amount: %s | Fraud: %s (%.2f%%)\n",
			i+1, m.ID, m.Type, m.Amount, m.FraudStatus, m.FraudScore)
		fmt.Fprintf(&b, "    Sender: %s\n", m.SenderBIC)
		fmt.Fprintf(&b, "    Receiver: %s\n", m.ReceiverBIC)
		for _, reason := range m.FraudReasons {
			fmt.Fprintf(&b, "    - %s\n", reason)
		}
		b.WriteString("\n")
	}

	return write(path, b.String())
}

func byAmountDesc(msgs []*message.Message) []*message.Message {
	sorted := make([]*message.Message, len(msgs))
	copy(sorted, msgs)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, errA := message.ParseAmount(sorted[i].Amount)
		bv, errB := message.ParseAmount(sorted[j].Amount)
		if errA != nil {
			return false
		}
		if errB != nil {
			return true
		}
		return a.GreaterThan(bv)
	})
	return sorted
}

func header(b *strings.Builder, title string) {
	b.WriteString(strings.Repeat("=", 80) + "\n")
	b.WriteString("SWIFTWATCH - " + title + "\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")
	fmt.Fprintf(b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
}

func write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	return nil
}
