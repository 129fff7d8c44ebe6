package ecs

import "reflect"

// StorageStats is a point-in-time summary of a world, used by debug
// overlays and the soak harness report.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes one archetype's shape and population.
type ArchetypeStats struct {
	Id            uint32
	ComponentList []string
	EntityCount   int
}

// CollectStats walks every archetype and singleton and returns a summary.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		ArchetypeBreakdown: make([]ArchetypeStats, 0, len(s.archetypes)),
		SingletonTypes:     make([]string, 0, len(s.singletons)),
	}

	for id, archetype := range s.archetypes {
		count := archetype.Len()
		stats.ArchetypeCount++
		stats.TotalEntityCount += count
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			Id:            id,
			ComponentList: typeNames(archetype.types),
			EntityCount:   count,
		})
	}

	for t := range s.singletons {
		stats.SingletonCount++
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}

	return stats
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
