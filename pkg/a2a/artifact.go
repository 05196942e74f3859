package a2a

import (
	"encoding/json"

	"github.com/agentmesh/a2a-core/internal/projection"
)

/*
Artifact is an agent-produced output composed of ordered parts.  Index,
Append and LastChunk together describe one chunk of a streamed output:
successive artifacts sharing an index extend the same logical output,
Append extends the prior chunk's content and LastChunk marks stream
completion.  The flags are purely declarative; chunk coherence across a
stream is the transport's responsibility.
*/
type Artifact struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Parts       []Part         `json:"parts"`
	Index       int            `json:"index,omitempty"`
	Append      *bool          `json:"append,omitempty"`
	LastChunk   *bool          `json:"lastChunk,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// NewArtifact builds an artifact from ordered parts, at index 0.
func NewArtifact(parts ...Part) Artifact {
	return Artifact{Parts: parts}
}

// NewTextArtifact builds a named artifact holding a single text part.
func NewTextArtifact(name, text string) Artifact {
	return Artifact{Name: &name, Parts: []Part{NewTextPart(text)}}
}

// NewFileArtifact builds a named artifact holding a single file part with
// inline content.
func NewFileArtifact(name, mimeType string, data []byte) Artifact {
	return Artifact{Name: &name, Parts: []Part{NewFilePart(name, mimeType, data)}}
}

func (artifact *Artifact) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	var decoded struct {
		Name        *string           `json:"name"`
		Description *string           `json:"description"`
		Parts       []json.RawMessage `json:"parts"`
		Index       int               `json:"index"`
		Append      *bool             `json:"append"`
		LastChunk   *bool             `json:"lastChunk"`
		Metadata    map[string]any    `json:"metadata"`
	}
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	parts, err := unmarshalParts(decoded.Parts)
	if err != nil {
		return err
	}

	*artifact = Artifact{
		Name:        decoded.Name,
		Description: decoded.Description,
		Parts:       parts,
		Index:       decoded.Index,
		Append:      decoded.Append,
		LastChunk:   decoded.LastChunk,
		Metadata:    decoded.Metadata,
	}
	return nil
}
