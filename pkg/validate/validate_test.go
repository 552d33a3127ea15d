package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

func validMessage() *message.Message {
	return &message.Message{
		ID:          "MSG-001",
		Type:        message.TypeMT103,
		Amount:      "1500.00 USD",
		SenderBIC:   "CHASUS33XXX",
		ReceiverBIC: "BARCGB22",
	}
}

func TestValidate_Valid(t *testing.T) {
	m := validMessage()

	assert.True(t, Validate(m))
	assert.Equal(t, message.ValidationValid, m.ValidationStatus)
	assert.Empty(t, m.ValidationErrors)
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*message.Message)
		errPart string
	}{
		{"missing id", func(m *message.Message) { m.ID = "" }, "message_id"},
		{"unknown type", func(m *message.Message) { m.Type = "MT999" }, "message_type"},
		{"bad amount", func(m *message.Message) { m.Amount = "N/A" }, "amount"},
		{"short sender bic", func(m *message.Message) { m.SenderBIC = "CHAS" }, "sender_bic"},
		{"nine char bic", func(m *message.Message) { m.ReceiverBIC = "BARCGB22X" }, "receiver_bic"},
		{"non alnum bic", func(m *message.Message) { m.SenderBIC = "CHAS-S33" }, "sender_bic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.mutate(m)

			assert.False(t, Validate(m))
			assert.Equal(t, message.ValidationInvalid, m.ValidationStatus)
			assert.NotEmpty(t, m.ValidationErrors)
			assert.Contains(t, m.ValidationErrors[0], tt.errPart)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	m := &message.Message{}

	assert.False(t, Validate(m))
	assert.Len(t, m.ValidationErrors, 5)
}

func TestValidate_RevalidationClearsErrors(t *testing.T) {
	m := validMessage()
	m.Amount = "bogus"
	assert.False(t, Validate(m))

	m.Amount = "100.00 USD"
	assert.True(t, Validate(m))
	assert.Empty(t, m.ValidationErrors)
}

func TestBatch(t *testing.T) {
	msgs := []*message.Message{
		validMessage(),
		{ID: "MSG-002"}, // missing nearly everything
		validMessage(),
	}

	assert.Equal(t, 2, Batch(msgs))
	assert.Equal(t, message.ValidationInvalid, msgs[1].ValidationStatus)
}
