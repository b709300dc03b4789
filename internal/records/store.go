package records

import "context"

// Storage keys. One blob per collection, scoped per owner.
const (
	KeyProfile    = "edu_boost_profile"
	KeyTasks      = "edu_boost_tasks"
	KeyEvents     = "edu_boost_events"
	KeyBirthdays  = "edu_boost_birthdays"
	KeyAttendance = "edu_boost_attendance"
)

// Store persists whole-collection JSON snapshots keyed by (owner, key).
// LoadBlob returns nil without error when nothing was saved yet.
type Store interface {
	LoadBlob(ctx context.Context, owner, key string) ([]byte, error)
	SaveBlob(ctx context.Context, owner, key string, value []byte) error
}
