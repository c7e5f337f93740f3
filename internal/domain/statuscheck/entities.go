package statuscheck

import "time"

// StatusCheck is connectivity-check scaffolding: clients post their
// name and read back what everyone else posted.
type StatusCheck struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	CheckID    string    `gorm:"size:36;uniqueIndex:ux_status_checks_check_id;column:check_id" json:"id"`
	ClientName string    `gorm:"size:255" json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (StatusCheck) TableName() string { return "status_checks" }
