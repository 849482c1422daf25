// Package entry implements the lazy file-entity cache behind the
// explorer: 128-bit tagged identities, the store that owns every
// discovered entry and its resolved path, on-demand path reconstruction,
// idempotent directory expansion, and memoized recursive sizes.
//
// Key Components:
//
// Identity:
//   - ID: opaque 128-bit value with a 4-bit subspace tag
//   - Normal/Error/Message ids are random; truncation-marker ids are a
//     pure function of the elided row count so the store can deduplicate
//   - Base and Root sentinels for the start directory and filesystem root
//
// Store:
//   - single owner of the id->Entry and id->path maps; strictly additive,
//     no eviction for the life of the process
//   - registration from a path, from a directory read, or synthetically
//     for errors, messages, and truncation markers
//   - path memoization on read: resolving an entry's path walks the
//     parent chain once and caches every result
//   - lazy parent discovery: a parentless non-root entry gets its OS
//     parent registered and the link back-patched exactly once
//
// Expansion and Sizes:
//   - InitChildren turns one os.ReadDir into registered child entries;
//     per-child failures degrade to synthetic error rows and a failed
//     directory read becomes a single error child
//   - RecursiveSize computes each directory's subtree size at most once
//
// The store has no internal locking. All operations, including the
// mutations hidden behind reads (path memoization, expansion), must be
// issued from the single goroutine that owns the store.
package entry
