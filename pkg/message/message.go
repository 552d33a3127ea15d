package message

// MessageType is the SWIFT message category.
type MessageType string

const (
	TypeMT103 MessageType = "MT103"
	TypeMT202 MessageType = "MT202"
)

// Types lists the supported message types.
var Types = []MessageType{TypeMT103, TypeMT202}

// ValidationStatus is the outcome of static field validation.
type ValidationStatus string

const (
	ValidationValid   ValidationStatus = "VALID"
	ValidationInvalid ValidationStatus = "INVALID"
)

// FraudStatus is the engine's verdict for a message. It is empty until the
// scoring engine has processed the message, which keeps "not yet computed"
// distinct from "computed as clean".
type FraudStatus string

const (
	FraudClean      FraudStatus = "CLEAN"
	FraudFraudulent FraudStatus = "FRAUDULENT"
)

// ScoreResult is one scorer's verdict for one message. A fresh value is
// produced per (message, scorer) invocation and never shared across calls.
type ScoreResult struct {
	Scorer  string   `json:"scorer"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// Message is a single SWIFT-style payment instruction. Identity fields are
// owned by the caller and never mutated by the engine; the engine only
// attaches the derived fraud fields after scoring.
type Message struct {
	ID               string      `json:"message_id"`
	Type             MessageType `json:"message_type"`
	Reference        string      `json:"reference,omitempty"`
	Amount           string      `json:"amount"`
	Currency         string      `json:"currency,omitempty"`
	SenderBIC        string      `json:"sender_bic"`
	ReceiverBIC      string      `json:"receiver_bic"`
	ValueDate        string      `json:"value_date,omitempty"`
	OrderingCustomer string      `json:"ordering_customer,omitempty"`
	Beneficiary      string      `json:"beneficiary,omitempty"`
	RemittanceInfo   string      `json:"remittance_info,omitempty"`

	// Set by pkg/validate.
	ValidationStatus ValidationStatus `json:"validation_status,omitempty"`
	ValidationErrors []string         `json:"validation_errors,omitempty"`

	// Set by the scoring engine.
	FraudStatus   FraudStatus   `json:"fraud_status,omitempty"`
	FraudScore    float64       `json:"fraud_score"`
	FraudReasons  []string      `json:"fraud_reasons,omitempty"`
	FraudAnalysis []ScoreResult `json:"fraud_analysis,omitempty"`
}
