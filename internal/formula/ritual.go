package formula

import (
	"fmt"
	"time"
)

// Ritual record builders. Like the rest of the package these are pure except
// for the timestamp; nothing is stored.

// IntentionRecord captures a stated trading goal and its affirmation.
type IntentionRecord struct {
	Practice    string    `json:"practice"`
	Goal        string    `json:"goal"`
	Affirmation string    `json:"affirmation"`
	Timestamp   time.Time `json:"timestamp"`
	Energy      string    `json:"energy"`
}

// GratitudeRecord captures a gratitude practice.
type GratitudeRecord struct {
	Practice     string    `json:"practice"`
	GratitudeFor string    `json:"gratitude_for"`
	Vibration    string    `json:"vibration_level"`
	Effect       string    `json:"effect"`
	Timestamp    time.Time `json:"timestamp"`
}

// EthicalAlignmentRecord captures a harm check for a proposed action.
type EthicalAlignmentRecord struct {
	Practice   string    `json:"practice"`
	Action     string    `json:"action"`
	HarmsNoOne bool      `json:"harms_no_one"`
	ServesGood bool      `json:"serves_good"`
	Alignment  string    `json:"alignment"`
	Timestamp  time.Time `json:"timestamp"`
}

// ManifestationRecord captures a three-step manifestation ritual.
type ManifestationRecord struct {
	Practice      string    `json:"practice"`
	Intention     string    `json:"step_1_intention"`
	Visualization string    `json:"step_2_visualization"`
	Action        string    `json:"step_3_action"`
	Principle     string    `json:"principle"`
	Timestamp     time.Time `json:"timestamp"`
	Status        string    `json:"status"`
}

// ProtectionRecord captures a protection ritual for a named entity.
type ProtectionRecord struct {
	Practice       string    `json:"practice"`
	Protected      string    `json:"protected_entity"`
	ProtectionType string    `json:"protection_type"`
	Affirmation    string    `json:"affirmation"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
}

// Intention builds an intention-setting record.
func Intention(goal, affirmation string) IntentionRecord {
	return IntentionRecord{
		Practice:    "intention_setting",
		Goal:        goal,
		Affirmation: affirmation,
		Timestamp:   time.Now().UTC(),
		Energy:      "Focused, positive intention",
	}
}

// Gratitude builds a gratitude-practice record.
func Gratitude(gratitudeFor string) GratitudeRecord {
	return GratitudeRecord{
		Practice:     "gratitude",
		GratitudeFor: gratitudeFor,
		Vibration:    "High",
		Effect:       "Attracts positive outcomes",
		Timestamp:    time.Now().UTC(),
	}
}

// EthicalAlignment checks that an action harms no one.
func EthicalAlignment(action string, harmCheck bool) EthicalAlignmentRecord {
	alignment := "NOT ALIGNED"
	if harmCheck {
		alignment = "ALIGNED"
	}
	return EthicalAlignmentRecord{
		Practice:   "ethical_alignment",
		Action:     action,
		HarmsNoOne: harmCheck,
		ServesGood: true,
		Alignment:  alignment,
		Timestamp:  time.Now().UTC(),
	}
}

// Manifestation builds a manifestation ritual record.
func Manifestation(desire, visualization, action string) ManifestationRecord {
	return ManifestationRecord{
		Practice:      "manifestation_ritual",
		Intention:     desire,
		Visualization: visualization,
		Action:        action,
		Principle:     "Thought -> Feeling -> Action -> Reality",
		Timestamp:     time.Now().UTC(),
		Status:        "ACTIVATED",
	}
}

// Protection builds a protection ritual record.
func Protection(entity, protectionType string) ProtectionRecord {
	return ProtectionRecord{
		Practice:       "protection_ritual",
		Protected:      entity,
		ProtectionType: protectionType,
		Affirmation:    fmt.Sprintf("%s is protected and guided by divine wisdom", entity),
		Timestamp:      time.Now().UTC(),
		Status:         "ACTIVE",
	}
}
