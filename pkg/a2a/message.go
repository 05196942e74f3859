package a2a

import (
	"encoding/json"
	"strings"

	"github.com/cohesivestack/valgo"

	"github.com/agentmesh/a2a-core/internal/projection"
	"github.com/agentmesh/a2a-core/pkg/errors"
)

// Message roles.  The set is closed.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

var messageRoles = []string{RoleUser, RoleAgent}

/*
Message represents all non-artifact communication between client and agent.
Parts keep their insertion order; rendering order matters.
*/
type Message struct {
	Role     string         `json:"role"`
	Parts    []Part         `json:"parts"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewMessage builds a message, validating the role and that at least one
// part is present.
func NewMessage(role string, parts ...Part) (Message, error) {
	val := valgo.Is(valgo.String(role, "role").InSlice(messageRoles)).
		Is(valgo.Bool(len(parts) > 0, "parts").EqualTo(true))
	if !val.Valid() {
		if len(parts) == 0 {
			return Message{}, errors.NewValidationError("parts", "must contain at least one part")
		}
		return Message{}, errors.NewValidationError("role",
			"must be one of "+strings.Join(messageRoles, ", "))
	}

	return Message{Role: role, Parts: parts}, nil
}

// NewTextMessage builds a message holding a single text part.
func NewTextMessage(role, text string) (Message, error) {
	return NewMessage(role, NewTextPart(text))
}

// Text concatenates the content of every text part, in order.
func (msg Message) Text() string {
	var builder strings.Builder

	for _, part := range msg.Parts {
		if text, ok := part.(TextPart); ok {
			builder.WriteString(text.Text)
		}
	}

	return builder.String()
}

func (msg *Message) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	var decoded struct {
		Role     string            `json:"role"`
		Parts    []json.RawMessage `json:"parts"`
		Metadata map[string]any    `json:"metadata"`
	}
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	parts, err := unmarshalParts(decoded.Parts)
	if err != nil {
		return err
	}

	built, err := NewMessage(decoded.Role, parts...)
	if err != nil {
		return err
	}
	built.Metadata = decoded.Metadata

	*msg = built
	return nil
}
