package repositories

import (
	"database/sql"

	"legalease/internal/config"
	"legalease/internal/domain/models"
	"legalease/internal/utils"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// ListByLawyer returns the lawyer's canonical slot template sorted by time.
func (r ScheduleRepository) ListByLawyer(lawyerID int64) ([]models.ScheduleSlot, error) {
	rows, err := r.db().Query(`
		SELECT id, lawyer_id, COALESCE(TIME_FORMAT(slot_time, '%H:%i'), ''), COALESCE(available, 1)
		FROM schedule_slots
		WHERE lawyer_id = ?
		ORDER BY slot_time ASC
	`, lawyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []models.ScheduleSlot{}
	for rows.Next() {
		var s models.ScheduleSlot
		if err := rows.Scan(&s.ID, &s.LawyerID, &s.SlotTime, &s.Available); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// Replace swaps the lawyer's whole template in one transaction so readers
// never observe a half-written schedule.
func (r ScheduleRepository) Replace(lawyerID int64, slots []models.ScheduleSlot) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM schedule_slots WHERE lawyer_id = ?`, lawyerID); err != nil {
		return err
	}

	for _, s := range slots {
		t := utils.NormalizeTimeOfDay(s.SlotTime)
		if t == "" {
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO schedule_slots (lawyer_id, slot_time, available)
			VALUES (?, ?, ?)
		`, lawyerID, t, s.Available); err != nil {
			return err
		}
	}

	return tx.Commit()
}
