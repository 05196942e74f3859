/*
Package a2a defines the shared data model for the agent-to-agent task
exchange protocol: content parts, messages, artifacts, tasks and agent
metadata, all with strict bidirectional wire serialization.  Wire keys are
canonical camelCase on output and tolerate snake_case on input; absent
fields are omitted, never emitted as null.
*/
package a2a

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/agentmesh/a2a-core/internal/projection"
	"github.com/agentmesh/a2a-core/pkg/errors"
)

// PartType is the discriminator tag for the Part union.
type PartType string

const (
	PartTypeText PartType = "text"
	PartTypeFile PartType = "file"
	PartTypeData PartType = "data"
)

/*
Part is one typed content unit inside a Message or Artifact.  The union is
closed: text, file and data are the only variants, and UnmarshalPart is the
single place the discriminator is dispatched.  Parts are immutable once
constructed and owned by exactly one part list.
*/
type Part interface {
	Type() PartType
	isPart()
}

// TextPart carries plain text.
type TextPart struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (TextPart) Type() PartType { return PartTypeText }
func (TextPart) isPart()        {}

func (part TextPart) MarshalJSON() ([]byte, error) {
	type alias TextPart
	return json.Marshal(struct {
		Type PartType `json:"type"`
		alias
	}{PartTypeText, alias(part)})
}

// FilePart carries file content, inline or by reference.
type FilePart struct {
	File     FileContent    `json:"file"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (FilePart) Type() PartType { return PartTypeFile }
func (FilePart) isPart()        {}

func (part FilePart) MarshalJSON() ([]byte, error) {
	type alias FilePart
	return json.Marshal(struct {
		Type PartType `json:"type"`
		alias
	}{PartTypeFile, alias(part)})
}

// DataPart carries structured data, a JSON object or array.
type DataPart struct {
	Data     any            `json:"data"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (DataPart) Type() PartType { return PartTypeData }
func (DataPart) isPart()        {}

func (part DataPart) MarshalJSON() ([]byte, error) {
	type alias DataPart
	return json.Marshal(struct {
		Type PartType `json:"type"`
		alias
	}{PartTypeData, alias(part)})
}

/*
FileContent identifies a file either by embedded base64 bytes or by uri.
Exactly one of the two must be present.
*/
type FileContent struct {
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Bytes    string `json:"bytes,omitempty"`
	URI      string `json:"uri,omitempty"`
}

func (file FileContent) Validate() error {
	if (file.Bytes != "") == (file.URI != "") {
		return errors.NewValidationError("file", "must provide exactly one of bytes or uri")
	}
	return nil
}

func (file *FileContent) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias FileContent
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	if err := FileContent(decoded).Validate(); err != nil {
		return err
	}

	*file = FileContent(decoded)
	return nil
}

// NewTextPart builds a text part.
func NewTextPart(text string) TextPart {
	return TextPart{Text: text}
}

// NewFilePart builds a file part with inline content.
func NewFilePart(name, mimeType string, data []byte) FilePart {
	return FilePart{File: FileContent{
		Name:     name,
		MimeType: mimeType,
		Bytes:    base64.StdEncoding.EncodeToString(data),
	}}
}

// NewFileURIPart builds a file part referencing external content.
func NewFileURIPart(name, mimeType, uri string) FilePart {
	return FilePart{File: FileContent{
		Name:     name,
		MimeType: mimeType,
		URI:      uri,
	}}
}

// NewDataPart builds a structured data part.
func NewDataPart(data any) DataPart {
	return DataPart{Data: data}
}

/*
UnmarshalPart constructs the concrete Part variant matching the payload's
type discriminator.  A missing or unrecognized tag is a validation failure.
*/
func UnmarshalPart(data []byte) (Part, error) {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Type PartType `json:"type"`
	}
	if err := json.Unmarshal(normalized, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case PartTypeText:
		var part TextPart
		if err := json.Unmarshal(normalized, &part); err != nil {
			return nil, err
		}
		return part, nil
	case PartTypeFile:
		var part FilePart
		if err := json.Unmarshal(normalized, &part); err != nil {
			return nil, err
		}
		// A missing file key decodes to the zero FileContent without ever
		// hitting its unmarshaler, so the exclusivity check runs here too.
		if err := part.File.Validate(); err != nil {
			return nil, err
		}
		return part, nil
	case PartTypeData:
		var part DataPart
		if err := json.Unmarshal(normalized, &part); err != nil {
			return nil, err
		}
		switch part.Data.(type) {
		case map[string]any, []any:
		default:
			return nil, errors.NewValidationError("data", "must be a JSON object or array")
		}
		return part, nil
	case "":
		return nil, errors.NewValidationError("type", "part type is required")
	default:
		return nil, errors.NewValidationError("type",
			fmt.Sprintf("unknown part type %q, must be one of text, file, data", probe.Type))
	}
}

// unmarshalParts maps a list of raw part projections through UnmarshalPart,
// preserving order.
func unmarshalParts(raw []json.RawMessage) ([]Part, error) {
	parts := make([]Part, 0, len(raw))

	for i, data := range raw {
		part, err := UnmarshalPart(data)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		parts = append(parts, part)
	}

	return parts, nil
}
