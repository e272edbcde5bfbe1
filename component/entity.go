package component

// Entity identifies a live game object or presentation element
// Zero is never allocated
type Entity uint64
