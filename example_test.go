package lightcycle_test

import (
	"fmt"

	"github.com/rfratto/lightcycle"
)

// Shard is a minimal Node implementation for the example.
type Shard struct{ name string }

// ID implements lightcycle.Node.
func (s *Shard) ID() string { return s.name }

func Example() {
	// Create a ring fronting three cache shards. Each shard is placed on
	// the ring at 4 positions by default; use NewWithReplicaCount for
	// smoother key distribution.
	ring := lightcycle.New()
	for _, name := range []string{"cache-a", "cache-b", "cache-c"} {
		ring.Add(&Shard{name: name})
	}
	fmt.Printf("%d shards, %d tokens\n", ring.NodeCount(), ring.Len())

	// Every key maps to exactly one shard, and the mapping is stable for a
	// fixed set of shards.
	owner, err := ring.Lookup("user:42")
	if err != nil {
		panic(err)
	}
	again, _ := ring.Lookup("user:42")
	fmt.Printf("stable owner: %v\n", owner == again)

	// Removing a shard returns it to the caller and hands its keys to the
	// shards that remain; keys owned by other shards do not move.
	removed, err := ring.Remove(owner.ID())
	if err != nil {
		panic(err)
	}
	newOwner, _ := ring.Lookup("user:42")
	fmt.Printf("removed previous owner: %v\n", removed == owner)
	fmt.Printf("key reassigned: %v\n", newOwner != owner)

	// Output:
	// 3 shards, 12 tokens
	// stable owner: true
	// removed previous owner: true
	// key reassigned: true
}
