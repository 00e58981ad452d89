package db

// Opener opens a storage engine at a filesystem path. Each engine adapter
// package provides a compatible constructor.
type Opener = func(path string) (KVStore, error)
