/*
Package catalog keeps an in-process registry of agent cards.  Serving the
discovery document over a well-known path is the transport's concern; the
registry only owns the read-mostly card set.
*/
package catalog

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/agentmesh/a2a-core/pkg/a2a"
)

type Registry struct {
	agents sync.Map
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers or replaces an agent card under its name.
func (registry *Registry) Add(card a2a.AgentCard) {
	log.Info("agent registered", "name", card.Name, "url", card.URL)
	registry.agents.Store(card.Name, card)
}

// Get looks up an agent card by name.
func (registry *Registry) Get(name string) (a2a.AgentCard, bool) {
	value, ok := registry.agents.Load(name)
	if !ok {
		return a2a.AgentCard{}, false
	}

	return value.(a2a.AgentCard), true
}

// Remove drops an agent card from the registry.
func (registry *Registry) Remove(name string) {
	log.Info("agent removed", "name", name)
	registry.agents.Delete(name)
}

// All returns every registered agent card.
func (registry *Registry) All() []a2a.AgentCard {
	cards := make([]a2a.AgentCard, 0)

	registry.agents.Range(func(_, value any) bool {
		cards = append(cards, value.(a2a.AgentCard))
		return true
	})

	return cards
}
