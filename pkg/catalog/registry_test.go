package catalog

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/agentmesh/a2a-core/pkg/a2a"
)

func testCard(name string) a2a.AgentCard {
	return a2a.NewAgentCard(name, "https://"+name+".example.com", "1.0.0",
		a2a.AgentCapabilities{Streaming: true}, nil)
}

func TestRegistry(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		registry := NewRegistry()

		Convey("Get on an unknown name misses", func() {
			_, ok := registry.Get("ghost")
			So(ok, ShouldBeFalse)
		})

		Convey("When a card is added", func() {
			registry.Add(testCard("alpha"))

			Convey("It can be looked up by name", func() {
				card, ok := registry.Get("alpha")
				So(ok, ShouldBeTrue)
				So(card.URL, ShouldEqual, "https://alpha.example.com")
				So(card.Capabilities.Streaming, ShouldBeTrue)
			})

			Convey("Adding the same name replaces the card", func() {
				replacement := testCard("alpha")
				replacement.Version = "2.0.0"
				registry.Add(replacement)

				card, _ := registry.Get("alpha")
				So(card.Version, ShouldEqual, "2.0.0")
				So(len(registry.All()), ShouldEqual, 1)
			})

			Convey("Remove drops it", func() {
				registry.Remove("alpha")
				_, ok := registry.Get("alpha")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("All returns every registered card", func() {
			registry.Add(testCard("alpha"))
			registry.Add(testCard("beta"))

			So(len(registry.All()), ShouldEqual, 2)
		})

		Convey("Concurrent registration is safe", func() {
			var wg sync.WaitGroup
			names := []string{"a", "b", "c", "d", "e"}

			for _, name := range names {
				wg.Add(1)
				go func(name string) {
					defer wg.Done()
					registry.Add(testCard(name))
				}(name)
			}
			wg.Wait()

			So(len(registry.All()), ShouldEqual, len(names))
		})
	})
}
