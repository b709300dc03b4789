package records

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/eduboost/eduboost-back/internal/models"
)

// ApplyExperientialRule inspects the last element of a freshly submitted
// attendance collection. If it is an EXPERIENTIAL record whose follow-up task
// has not been created yet, the record is marked and one High priority task is
// appended. The flag is sticky, so a record never fires twice, and only the
// last element of a batch is considered.
//
// The function is pure aside from the generated task id; callers persist the
// returned collections.
func ApplyExperientialRule(attendance []models.AttendanceRecord, tasks []models.Task) ([]models.AttendanceRecord, []models.Task, *models.Task) {
	if len(attendance) == 0 {
		return attendance, tasks, nil
	}

	last := attendance[len(attendance)-1]
	if last.Type != models.AttendanceExperiential || last.IsTaskCreated {
		return attendance, tasks, nil
	}

	updated := make([]models.AttendanceRecord, len(attendance))
	copy(updated, attendance)
	for i := range updated {
		if updated[i].ID == last.ID {
			updated[i].IsTaskCreated = true
		}
	}

	task := models.Task{
		ID:       uuid.NewString(),
		Text:     fmt.Sprintf("[출결] %s 학생 체험학습 결과 보고서 수합", last.StudentName),
		Done:     false,
		Priority: models.PriorityHigh,
	}

	newTasks := make([]models.Task, 0, len(tasks)+1)
	newTasks = append(newTasks, tasks...)
	newTasks = append(newTasks, task)

	return updated, newTasks, &task
}
