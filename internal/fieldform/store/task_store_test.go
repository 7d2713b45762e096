package store

import (
	"testing"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

func TestTaskStoreCreateAndGet(t *testing.T) {
	s := NewTaskStore(NewSequence("task"))

	task := s.Create(&entity.Task{
		FormID:     "form-1",
		FormName:   "Safety Inspection",
		AssignedTo: "user-1",
		DueDate:    "2026-04-01",
		Status:     entity.TaskPending,
		Priority:   entity.TaskPriorityMedium,
	})
	if task.ID != "task-1" {
		t.Errorf("expected task-1, got %s", task.ID)
	}
	if task.CreatedAt.IsZero() {
		t.Error("expected CreatedAt set")
	}

	if s.Get("task-1") == nil {
		t.Error("expected to read back created task")
	}
	if s.Get("task-999") != nil {
		t.Error("expected nil for missing task")
	}
}

func TestTaskStoreUpdatePartial(t *testing.T) {
	s := NewTaskStore(NewSequence("task"))
	task := s.Create(&entity.Task{
		FormID: "form-1", FormName: "F", AssignedTo: "user-1",
		DueDate: "2026-04-01", Status: entity.TaskPending, Priority: entity.TaskPriorityLow,
	})

	status := entity.TaskCompleted
	updated := s.Update(task.ID, TaskPatch{Status: &status})
	if updated == nil {
		t.Fatal("expected updated task")
	}
	if updated.Status != entity.TaskCompleted {
		t.Errorf("expected completed, got %s", updated.Status)
	}
	if updated.Priority != entity.TaskPriorityLow {
		t.Errorf("expected priority unchanged, got %s", updated.Priority)
	}

	if s.Update("task-999", TaskPatch{Status: &status}) != nil {
		t.Error("expected nil updating missing task")
	}
}

func TestTaskStoreDelete(t *testing.T) {
	s := NewTaskStore(NewSequence("task"))
	task := s.Create(&entity.Task{FormID: "form-1", FormName: "F", AssignedTo: "u", DueDate: "2026-04-01"})

	if !s.Delete(task.ID) {
		t.Error("expected delete true")
	}
	if s.Delete(task.ID) {
		t.Error("expected delete false after removal")
	}
	if len(s.GetAll()) != 0 {
		t.Error("expected empty listing after delete")
	}
}
