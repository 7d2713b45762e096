package store

import (
	"strings"
	"testing"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

func newTestWorkOrderStore() *WorkOrderStore {
	return NewWorkOrderStore(NewSequence("wo"))
}

func TestWorkOrderStoreCreate(t *testing.T) {
	s := newTestWorkOrderStore()
	o := s.Create(&entity.WorkOrder{
		Title:  "Fix pump",
		Status: entity.WorkOrderDraft,
	})
	if o.ID != "wo-1" {
		t.Errorf("expected wo-1, got %s", o.ID)
	}
	if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
		t.Error("expected timestamps set on create")
	}
	if o.CompletedAt != nil {
		t.Error("expected CompletedAt unset on create")
	}
}

func TestWorkOrderStoreCompletedAtStampedOnce(t *testing.T) {
	s := newTestWorkOrderStore()
	o := s.Create(&entity.WorkOrder{Title: "T", Status: entity.WorkOrderAssigned})

	completed := entity.WorkOrderCompleted
	first := s.Update(o.ID, WorkOrderPatch{Status: &completed})
	if first.CompletedAt == nil {
		t.Fatal("expected CompletedAt stamped when status becomes completed")
	}
	stamp := *first.CompletedAt

	// 状态回退再完成，打点不变
	inProgress := entity.WorkOrderInProgress
	s.Update(o.ID, WorkOrderPatch{Status: &inProgress})
	second := s.Update(o.ID, WorkOrderPatch{Status: &completed})
	if second.CompletedAt == nil {
		t.Fatal("expected CompletedAt preserved")
	}
	if !second.CompletedAt.Equal(stamp) {
		t.Errorf("expected CompletedAt unchanged, got %v then %v", stamp, *second.CompletedAt)
	}
}

func TestWorkOrderStoreAddNote(t *testing.T) {
	s := newTestWorkOrderStore()
	o := s.Create(&entity.WorkOrder{Title: "T", Status: entity.WorkOrderDraft})

	updated := s.AddNote(o.ID, "checked valves")
	if updated == nil {
		t.Fatal("expected work order after AddNote")
	}
	if len(updated.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(updated.Notes))
	}
	if !strings.HasSuffix(updated.Notes[0], ": checked valves") {
		t.Errorf("expected note with timestamp prefix, got %q", updated.Notes[0])
	}

	updated = s.AddNote(o.ID, "replaced seal")
	if len(updated.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(updated.Notes))
	}

	if s.AddNote("wo-999", "nope") != nil {
		t.Error("expected nil adding note to missing work order")
	}
}

func TestWorkOrderStoreGetAllFilters(t *testing.T) {
	s := newTestWorkOrderStore()
	s.Create(&entity.WorkOrder{Title: "A", Status: entity.WorkOrderDraft, AssignedTo: "user-1"})
	s.Create(&entity.WorkOrder{Title: "B", Status: entity.WorkOrderAssigned, AssignedTo: "user-2"})
	s.Create(&entity.WorkOrder{Title: "C", Status: entity.WorkOrderAssigned, AssignedTo: "user-1"})

	if got := s.GetAll(entity.WorkOrderAssigned, ""); len(got) != 2 {
		t.Errorf("expected 2 assigned orders, got %d", len(got))
	}
	if got := s.GetAll("", "user-1"); len(got) != 2 {
		t.Errorf("expected 2 orders for user-1, got %d", len(got))
	}
	if got := s.GetAll(entity.WorkOrderAssigned, "user-1"); len(got) != 1 {
		t.Errorf("expected 1 assigned order for user-1, got %d", len(got))
	}
}

func TestWorkOrderStoreDelete(t *testing.T) {
	s := newTestWorkOrderStore()
	o := s.Create(&entity.WorkOrder{Title: "T", Status: entity.WorkOrderDraft})

	if !s.Delete(o.ID) {
		t.Error("expected delete true for existing order")
	}
	if s.Delete(o.ID) {
		t.Error("expected delete false for missing order")
	}
}
