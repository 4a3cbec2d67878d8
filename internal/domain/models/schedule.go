package models

// ScheduleSlot is the canonical per-lawyer slot template. Availability for a
// concrete date is derived from it, never stored.
type ScheduleSlot struct {
	ID        int64  `json:"id"`
	LawyerID  int64  `json:"lawyer_id"`
	SlotTime  string `json:"slot_time"` // HH:MM
	Available bool   `json:"available"`
}
