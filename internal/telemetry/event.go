package telemetry

import "time"

type EventType string

const (
	EventUnitPurchased      EventType = "unit_purchased"
	EventUpgradePurchased   EventType = "upgrade_purchased"
	EventPermitUpgrade      EventType = "permit_upgrade_purchased"
	EventMissionCompleted   EventType = "mission_completed"
	EventManualRescue       EventType = "manual_rescue"
	EventPrestige           EventType = "prestige"
	EventBiomeUnlocked      EventType = "biome_unlocked"
	EventWorldEventStarted  EventType = "world_event_started"
	EventAchievementClaimed EventType = "achievement_claimed"
	EventQuestClaimed       EventType = "quest_step_claimed"
	EventDailyBonus         EventType = "daily_bonus"
	EventOfflineCredit      EventType = "offline_credit"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
