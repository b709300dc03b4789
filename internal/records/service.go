// Package records owns the four record collections and the user profile.
// Collections are mutated only by whole-collection replacement: compute a new
// collection, persist it, and the stored snapshot is the new truth.
package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eduboost/eduboost-back/internal/models"
)

type Service struct {
	store    Store
	onCommit func(owner, key string)
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// SetCommitHook registers an observer invoked after every persisted mutation,
// e.g. to invalidate cached dashboard digests.
func (s *Service) SetCommitHook(fn func(owner, key string)) {
	s.onCommit = fn
}

// load decodes the snapshot for key into out. A missing snapshot or one that
// no longer parses both report ok=false; the caller supplies the default.
func (s *Service) load(ctx context.Context, owner, key string, out any) (bool, error) {
	raw, err := s.store.LoadBlob(ctx, owner, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Malformed snapshots fall back to the default silently.
		return false, nil
	}
	return true, nil
}

func (s *Service) save(ctx context.Context, owner, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.store.SaveBlob(ctx, owner, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if s.onCommit != nil {
		s.onCommit(owner, key)
	}
	return nil
}

// Profile returns nil when the owner has not completed onboarding yet.
func (s *Service) Profile(ctx context.Context, owner string) (*models.UserProfile, error) {
	var p models.UserProfile
	ok, err := s.load(ctx, owner, KeyProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *Service) SaveProfile(ctx context.Context, owner string, p models.UserProfile) error {
	return s.save(ctx, owner, KeyProfile, p)
}

func (s *Service) Tasks(ctx context.Context, owner string) ([]models.Task, error) {
	var tasks []models.Task
	ok, err := s.load(ctx, owner, KeyTasks, &tasks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.SeedTasks(), nil
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (s *Service) ReplaceTasks(ctx context.Context, owner string, tasks []models.Task) error {
	return s.save(ctx, owner, KeyTasks, tasks)
}

func (s *Service) Events(ctx context.Context, owner string) ([]models.SchoolEvent, error) {
	events := []models.SchoolEvent{}
	if _, err := s.load(ctx, owner, KeyEvents, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.SchoolEvent{}
	}
	return events, nil
}

func (s *Service) ReplaceEvents(ctx context.Context, owner string, events []models.SchoolEvent) error {
	return s.save(ctx, owner, KeyEvents, events)
}

func (s *Service) Birthdays(ctx context.Context, owner string) ([]models.StudentBirthday, error) {
	birthdays := []models.StudentBirthday{}
	if _, err := s.load(ctx, owner, KeyBirthdays, &birthdays); err != nil {
		return nil, err
	}
	if birthdays == nil {
		birthdays = []models.StudentBirthday{}
	}
	return birthdays, nil
}

func (s *Service) ReplaceBirthdays(ctx context.Context, owner string, birthdays []models.StudentBirthday) error {
	return s.save(ctx, owner, KeyBirthdays, birthdays)
}

func (s *Service) Attendance(ctx context.Context, owner string) ([]models.AttendanceRecord, error) {
	attendance := []models.AttendanceRecord{}
	if _, err := s.load(ctx, owner, KeyAttendance, &attendance); err != nil {
		return nil, err
	}
	if attendance == nil {
		attendance = []models.AttendanceRecord{}
	}
	return attendance, nil
}

// ReplaceAttendance persists the submitted collection and runs the
// experiential follow-up rule on its last element. When the rule fires, the
// re-flagged attendance collection and the extended task collection are both
// persisted, and the created task is returned.
func (s *Service) ReplaceAttendance(ctx context.Context, owner string, attendance []models.AttendanceRecord) ([]models.AttendanceRecord, *models.Task, error) {
	tasks, err := s.Tasks(ctx, owner)
	if err != nil {
		return nil, nil, err
	}

	updated, newTasks, created := ApplyExperientialRule(attendance, tasks)

	if err := s.save(ctx, owner, KeyAttendance, updated); err != nil {
		return nil, nil, err
	}
	if created != nil {
		if err := s.save(ctx, owner, KeyTasks, newTasks); err != nil {
			return nil, nil, err
		}
	}
	return updated, created, nil
}

// AppendEvents adds extracted events to the stored collection. Duplicate dates
// are allowed, matching the permissive storage policy of the calendar.
func (s *Service) AppendEvents(ctx context.Context, owner string, extracted []models.SchoolEvent) ([]models.SchoolEvent, error) {
	events, err := s.Events(ctx, owner)
	if err != nil {
		return nil, err
	}
	events = append(events, extracted...)
	if err := s.save(ctx, owner, KeyEvents, events); err != nil {
		return nil, err
	}
	return events, nil
}
