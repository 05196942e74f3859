package a2a

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

const renderBullet = "│ "

func renderLine(builder *strings.Builder, label, value string) {
	builder.WriteString(renderBullet + labelStyle.Render(label+": ") + valueStyle.Render(value) + "\n")
}

// String renders the task for terminal display.
func (task Task) String() string {
	var builder strings.Builder

	builder.WriteString(headerStyle.Render("Task") + "\n")
	renderLine(&builder, "ID", task.ID)
	if task.SessionID != "" {
		renderLine(&builder, "Session ID", task.SessionID)
	}

	builder.WriteString("\n" + sectionStyle.Render("Status") + "\n")
	renderLine(&builder, "State", string(task.Status.State))
	if task.Status.Message != nil {
		renderLine(&builder, "Message", task.Status.Message.Text())
	}
	renderLine(&builder, "Timestamp", task.Status.Timestamp.Format(time.RFC3339))

	if len(task.Artifacts) > 0 {
		builder.WriteString("\n" + sectionStyle.Render("Artifacts") + "\n")
		for i, artifact := range task.Artifacts {
			name := fmt.Sprintf("Artifact %d", i+1)
			if artifact.Name != nil {
				name = *artifact.Name
			}
			renderLine(&builder, name, renderParts(artifact.Parts))
		}
	}

	if len(task.Metadata) > 0 {
		builder.WriteString("\n" + sectionStyle.Render("Metadata") + "\n")
		keys := make([]string, 0, len(task.Metadata))
		for key := range task.Metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			renderLine(&builder, key, fmt.Sprintf("%v", task.Metadata[key]))
		}
	}

	return builder.String()
}

// String renders the agent card for terminal display.
func (card AgentCard) String() string {
	var builder strings.Builder

	builder.WriteString(headerStyle.Render("Agent Card") + "\n")
	renderLine(&builder, "Name", card.Name)
	if card.Description != nil {
		renderLine(&builder, "Description", *card.Description)
	}
	renderLine(&builder, "URL", card.URL)
	renderLine(&builder, "Version", card.Version)

	if card.Provider != nil {
		builder.WriteString("\n" + sectionStyle.Render("Provider") + "\n")
		renderLine(&builder, "Organization", card.Provider.Organization)
		if card.Provider.URL != nil {
			renderLine(&builder, "URL", *card.Provider.URL)
		}
	}

	builder.WriteString("\n" + sectionStyle.Render("Capabilities") + "\n")
	renderLine(&builder, "Streaming", fmt.Sprintf("%v", card.Capabilities.Streaming))
	renderLine(&builder, "Push Notifications", fmt.Sprintf("%v", card.Capabilities.PushNotifications))
	renderLine(&builder, "State Transition History", fmt.Sprintf("%v", card.Capabilities.StateTransitionHistory))

	if card.Authentication != nil {
		builder.WriteString("\n" + sectionStyle.Render("Authentication") + "\n")
		renderLine(&builder, "Schemes", strings.Join(card.Authentication.Schemes, ", "))
		if card.Authentication.Credentials != nil {
			renderLine(&builder, "Credentials", "*****")
		}
	}

	if len(card.Skills) > 0 {
		builder.WriteString("\n" + sectionStyle.Render("Skills") + "\n")
		for _, skill := range card.Skills {
			renderLine(&builder, skill.ID, skill.Name)
		}
	}

	return builder.String()
}

func renderParts(parts []Part) string {
	rendered := make([]string, 0, len(parts))

	for _, part := range parts {
		switch p := part.(type) {
		case TextPart:
			rendered = append(rendered, p.Text)
		case FilePart:
			label := p.File.Name
			if label == "" {
				label = p.File.URI
			}
			rendered = append(rendered, fmt.Sprintf("[file %s]", label))
		case DataPart:
			rendered = append(rendered, "[data]")
		}
	}

	return strings.Join(rendered, " ")
}
