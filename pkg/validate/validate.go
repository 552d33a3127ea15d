// Package validate performs static field validation of SWIFT-style messages.
// Validation annotates messages in place; it never rejects or drops them.
package validate

import (
	"fmt"

	"github.com/swiftwatch/swiftwatch/pkg/message"
)

// Validate checks a single message's fields and sets its validation status
// and error list. It returns true when the message is valid.
func Validate(msg *message.Message) bool {
	var errs []string

	if msg.ID == "" {
		errs = append(errs, "missing message_id")
	}
	if !knownType(msg.Type) {
		errs = append(errs, fmt.Sprintf("unknown message_type: %q", msg.Type))
	}
	if _, err := message.ParseAmount(msg.Amount); err != nil {
		errs = append(errs, fmt.Sprintf("unparseable amount: %q", msg.Amount))
	}
	if !validBIC(msg.SenderBIC) {
		errs = append(errs, fmt.Sprintf("malformed sender_bic: %q", msg.SenderBIC))
	}
	if !validBIC(msg.ReceiverBIC) {
		errs = append(errs, fmt.Sprintf("malformed receiver_bic: %q", msg.ReceiverBIC))
	}

	if len(errs) > 0 {
		msg.ValidationStatus = message.ValidationInvalid
		msg.ValidationErrors = errs
		return false
	}
	msg.ValidationStatus = message.ValidationValid
	msg.ValidationErrors = nil
	return true
}

// Batch validates every message and returns the number that passed.
func Batch(msgs []*message.Message) int {
	valid := 0
	for _, m := range msgs {
		if Validate(m) {
			valid++
		}
	}
	return valid
}

func knownType(t message.MessageType) bool {
	for _, known := range message.Types {
		if t == known {
			return true
		}
	}
	return false
}

// validBIC accepts the 8- or 11-character alphanumeric BIC shape.
func validBIC(bic string) bool {
	if len(bic) != 8 && len(bic) != 11 {
		return false
	}
	for _, r := range bic {
		alnum := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			return false
		}
	}
	return true
}
