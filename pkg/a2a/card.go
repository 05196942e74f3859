package a2a

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/viper"

	"github.com/agentmesh/a2a-core/internal/projection"
)

// AgentAuthentication lists the authentication schemes an agent accepts.
// Enforcement belongs to the transport layer.
type AgentAuthentication struct {
	Schemes     []string `json:"schemes"`
	Credentials *string  `json:"credentials,omitempty"`
}

// AgentCapabilities describes the optional protocol features an agent
// supports.  Omitted flags default to false.
type AgentCapabilities struct {
	Streaming              bool `json:"streaming,omitempty"`
	PushNotifications      bool `json:"pushNotifications,omitempty"`
	StateTransitionHistory bool `json:"stateTransitionHistory,omitempty"`
}

// AgentProvider identifies the organization behind an agent.
type AgentProvider struct {
	Organization string  `json:"organization"`
	URL          *string `json:"url,omitempty"`
}

// AgentSkill describes one capability an agent offers.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	InputModes  []string `json:"inputModes,omitempty"`
	OutputModes []string `json:"outputModes,omitempty"`
}

/*
AgentCard is the published metadata describing an agent: its endpoint,
capabilities and skills.  It is built once per agent process lifetime and
served read-only as the discovery document.
*/
type AgentCard struct {
	Name               string               `json:"name"`
	Description        *string              `json:"description,omitempty"`
	URL                string               `json:"url"`
	Provider           *AgentProvider       `json:"provider,omitempty"`
	Version            string               `json:"version"`
	DocumentationURL   *string              `json:"documentationUrl,omitempty"`
	Capabilities       AgentCapabilities    `json:"capabilities"`
	Authentication     *AgentAuthentication `json:"authentication,omitempty"`
	DefaultInputModes  []string             `json:"defaultInputModes"`
	DefaultOutputModes []string             `json:"defaultOutputModes"`
	Skills             []AgentSkill         `json:"skills"`
}

// NewAgentCard builds a card with the default text input/output modes.
func NewAgentCard(name, url, version string, capabilities AgentCapabilities, skills []AgentSkill) AgentCard {
	card := AgentCard{
		Name:         name,
		URL:          url,
		Version:      version,
		Capabilities: capabilities,
		Skills:       skills,
	}
	card.applyDefaults()
	return card
}

func (card *AgentCard) applyDefaults() {
	if card.DefaultInputModes == nil {
		card.DefaultInputModes = []string{"text"}
	}
	if card.DefaultOutputModes == nil {
		card.DefaultOutputModes = []string{"text"}
	}
}

func (card *AgentCard) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias AgentCard
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*card = AgentCard(decoded)
	card.applyDefaults()
	return nil
}

func (auth *AgentAuthentication) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias AgentAuthentication
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*auth = AgentAuthentication(decoded)
	return nil
}

func (capabilities *AgentCapabilities) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias AgentCapabilities
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*capabilities = AgentCapabilities(decoded)
	return nil
}

func (provider *AgentProvider) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias AgentProvider
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*provider = AgentProvider(decoded)
	return nil
}

func (skill *AgentSkill) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias AgentSkill
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*skill = AgentSkill(decoded)
	return nil
}

// CardFromConfig assembles an agent card from viper configuration under
// agent.<key>, resolving each listed skill via SkillFromConfig.
func CardFromConfig(v *viper.Viper, key string) AgentCard {
	skillKeys := v.GetStringSlice(fmt.Sprintf("agent.%s.skills", key))
	skills := make([]AgentSkill, len(skillKeys))

	for i, skillKey := range skillKeys {
		skills[i] = SkillFromConfig(v, skillKey)
	}

	card := AgentCard{
		Name:    v.GetString(fmt.Sprintf("agent.%s.name", key)),
		URL:     v.GetString(fmt.Sprintf("agent.%s.url", key)),
		Version: v.GetString(fmt.Sprintf("agent.%s.version", key)),
		Capabilities: AgentCapabilities{
			Streaming:              v.GetBool(fmt.Sprintf("agent.%s.capabilities.streaming", key)),
			PushNotifications:      v.GetBool(fmt.Sprintf("agent.%s.capabilities.pushNotifications", key)),
			StateTransitionHistory: v.GetBool(fmt.Sprintf("agent.%s.capabilities.stateTransitionHistory", key)),
		},
		Skills: skills,
	}

	if description := v.GetString(fmt.Sprintf("agent.%s.description", key)); description != "" {
		card.Description = &description
	}
	if organization := v.GetString(fmt.Sprintf("agent.%s.provider.organization", key)); organization != "" {
		provider := AgentProvider{Organization: organization}
		if url := v.GetString(fmt.Sprintf("agent.%s.provider.url", key)); url != "" {
			provider.URL = &url
		}
		card.Provider = &provider
	}
	if schemes := v.GetStringSlice(fmt.Sprintf("agent.%s.authentication.schemes", key)); len(schemes) > 0 {
		card.Authentication = &AgentAuthentication{Schemes: schemes}
	}
	if modes := v.GetStringSlice(fmt.Sprintf("agent.%s.defaultInputModes", key)); len(modes) > 0 {
		card.DefaultInputModes = modes
	}
	if modes := v.GetStringSlice(fmt.Sprintf("agent.%s.defaultOutputModes", key)); len(modes) > 0 {
		card.DefaultOutputModes = modes
	}

	card.applyDefaults()
	return card
}

// SkillFromConfig assembles a skill from viper configuration under
// skills.<key>.
func SkillFromConfig(v *viper.Viper, key string) AgentSkill {
	skill := AgentSkill{
		ID:          v.GetString(fmt.Sprintf("skills.%s.id", key)),
		Name:        v.GetString(fmt.Sprintf("skills.%s.name", key)),
		Tags:        v.GetStringSlice(fmt.Sprintf("skills.%s.tags", key)),
		Examples:    v.GetStringSlice(fmt.Sprintf("skills.%s.examples", key)),
		InputModes:  v.GetStringSlice(fmt.Sprintf("skills.%s.inputModes", key)),
		OutputModes: v.GetStringSlice(fmt.Sprintf("skills.%s.outputModes", key)),
	}

	if description := v.GetString(fmt.Sprintf("skills.%s.description", key)); description != "" {
		skill.Description = &description
	}

	return skill
}
