// Package lightcycle implements a consistent hash ring: a stable mapping
// from string keys to a dynamic set of registered Nodes. Each Node is
// placed on the ring at several hashed positions (replicas), and a key is
// owned by the Node holding the next position at or after the key's hash.
// Adding or removing a Node only reassigns the keys that hash into the
// positions it claimed or vacated; every other key keeps its owner.
package lightcycle
