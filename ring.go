package lightcycle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrEmptyRing is returned by Lookup when the ring holds no tokens to
	// search, either because no Nodes were added or because the ring was
	// created with a replica count of zero.
	ErrEmptyRing = errors.New("ring is empty")

	// ErrNotFound is returned by Remove when no Node with the given id is
	// registered.
	ErrNotFound = errors.New("node not found")
)

// A Node is a resource that can be registered on a Ring, such as a cache
// shard. Implementations must return an id that is unique across the ring
// and stable for as long as the Node remains registered.
type Node interface {
	// ID returns the identity of the Node.
	ID() string
}

// token is a single virtual position on the ring.
type token struct {
	hash uint64
	id   string
}

// Ring implements a consistent hash ring. Registered Nodes are given one
// token per replica, mapped to the unit circle; ownership of a key is
// determined by finding the next token on the unit circle. The Ring owns
// the Nodes added to it until they are Removed.
//
// A Ring is not goroutine safe. Sharing a Ring across goroutines requires
// external synchronization, including between Lookup and mutations.
type Ring struct {
	replicas int

	// Tokens for all nodes. Must be sorted at all times.
	tokens []token
	nodes  map[string]Node

	observers []Observer
}

// New returns a Ring which places 4 tokens per Node.
func New() *Ring { return NewWithReplicaCount(4) }

// NewWithReplicaCount returns a Ring which places replicas tokens per Node.
// Higher values smooth out key distribution at the cost of memory and
// insertion time.
//
// replicas is not validated. Low values cause poor distribution, and a
// replica count of zero places no tokens at all, leaving every added Node
// unreachable by Lookup.
func NewWithReplicaCount(replicas int) *Ring {
	return &Ring{
		replicas: replicas,
		nodes:    make(map[string]Node),
	}
}

// Add registers n on the ring, placing one token per replica. Token
// positions are derived from hashing the Node id with the replica index,
// so they are deterministic: re-adding a Node with an id that is already
// registered replaces the stored Node and leaves the token set unchanged.
//
// In the rare case two tokens hash to the same position, the later insert
// owns the position (last write wins).
func (r *Ring) Add(n Node) {
	id := n.ID()

	for _, h := range r.tokenHashes(id) {
		idx := sort.Search(len(r.tokens), func(i int) bool {
			return r.tokens[i].hash >= h
		})
		if idx < len(r.tokens) && r.tokens[idx].hash == h {
			r.tokens[idx].id = id
			continue
		}
		r.tokens = append(r.tokens, token{})
		copy(r.tokens[idx+1:], r.tokens[idx:])
		r.tokens[idx] = token{hash: h, id: id}
	}

	r.nodes[id] = n
	r.notifyObservers()
}

// Remove deletes the Node registered under id, returning it so the caller
// regains ownership. Tokens whose position was overwritten by a colliding
// Node are left in place for their current owner.
//
// Remove returns ErrNotFound when no Node with the given id is registered;
// the ring is left unchanged.
func (r *Ring) Remove(id string) (Node, error) {
	n, ok := r.nodes[id]
	if !ok {
		return nil, fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}

	for _, h := range r.tokenHashes(id) {
		idx := sort.Search(len(r.tokens), func(i int) bool {
			return r.tokens[i].hash >= h
		})
		if idx < len(r.tokens) && r.tokens[idx].hash == h && r.tokens[idx].id == id {
			r.tokens = append(r.tokens[:idx], r.tokens[idx+1:]...)
		}
	}

	delete(r.nodes, id)
	r.notifyObservers()
	return n, nil
}

// Lookup returns the Node owning key: the Node holding the first token at
// or after the key's hash, wrapping around past the highest token. Lookup
// is deterministic for a given set of registered Nodes.
//
// Lookup returns ErrEmptyRing when the ring holds no tokens. The returned
// Node is only valid while it remains registered; callers must not retain
// it across a Remove of the same Node.
func (r *Ring) Lookup(key string) (Node, error) {
	if len(r.tokens) == 0 {
		return nil, fmt.Errorf("lookup %q: %w", key, ErrEmptyRing)
	}

	keyHash := xxhash.Sum64String(key)
	idx := sort.Search(len(r.tokens), func(i int) bool {
		return r.tokens[i].hash >= keyHash
	})
	if idx == len(r.tokens) {
		// Wrap around if we hit the end of the list.
		idx = 0
	}

	return r.nodes[r.tokens[idx].id], nil
}

// Len returns the total number of tokens on the ring.
func (r *Ring) Len() int { return len(r.tokens) }

// NodeCount returns the number of registered Nodes.
func (r *Ring) NodeCount() int { return len(r.nodes) }

// Nodes returns a snapshot of the registered Nodes, sorted by id.
func (r *Ring) Nodes() []Node {
	res := make([]Node, 0, len(r.nodes))
	for _, n := range r.nodes {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID() < res[j].ID() })
	return res
}

// tokenHashes returns the token positions for id, one per replica.
func (r *Ring) tokenHashes(id string) []uint64 {
	hashes := make([]uint64, r.replicas)
	for i := range hashes {
		hashes[i] = xxhash.Sum64String(id + strconv.Itoa(i))
	}
	return hashes
}
