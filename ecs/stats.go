package ecs

import "sort"

// StorageStats is a snapshot of what a Storage holds.
type StorageStats struct {
	RegisteredTypes int
	SingletonCount  int
	SingletonTypes  []string
}

// CollectStats builds a StorageStats snapshot. Singleton type names are
// sorted.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		RegisteredTypes: s.registry.Len(),
		SingletonCount:  s.singletons.Len(),
		SingletonTypes:  make([]string, 0, s.singletons.Len()),
	}

	s.singletons.ForEach(func(_ uint32, entry *singletonEntry) bool {
		stats.SingletonTypes = append(stats.SingletonTypes, entry.typ.String())
		return true
	})
	sort.Strings(stats.SingletonTypes)

	return stats
}
