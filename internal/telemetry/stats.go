package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period             string            `json:"period"`
	EventCounts        map[EventType]int `json:"event_counts"`
	MissionCompletions int               `json:"mission_completions"`
	AnimalsBySpecies   map[string]int    `json:"animals_by_species"`
	PurchasesByItem    map[string]int    `json:"purchases_by_item"`
	Prestiges          int               `json:"prestiges"`
	ManualRescues      int               `json:"manual_rescues"`
	WorldEvents        int               `json:"world_events"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:           since.Format("2006-01-02"),
		EventCounts:      make(map[EventType]int),
		AnimalsBySpecies: make(map[string]int),
		PurchasesByItem:  make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventMissionCompleted:
			stats.MissionCompletions++
			species, _ := metadata["species"].(string)
			saved, _ := metadata["saved"].(float64)
			if species != "" {
				stats.AnimalsBySpecies[species] += int(saved)
			}
		case EventUnitPurchased, EventUpgradePurchased:
			if name, ok := metadata["name"].(string); ok {
				stats.PurchasesByItem[name]++
			}
		case EventPrestige:
			stats.Prestiges++
		case EventManualRescue:
			stats.ManualRescues++
		case EventWorldEventStarted:
			stats.WorldEvents++
		}
	}

	return stats, nil
}
