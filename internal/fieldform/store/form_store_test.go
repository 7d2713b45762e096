package store

import (
	"testing"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

func newTestFormStore() *FormStore {
	return NewFormStore(NewSequence("form"))
}

func TestFormStoreCreateAssignsSequentialIDs(t *testing.T) {
	s := newTestFormStore()

	f1 := s.Create(&entity.Form{Name: "Inspection"})
	f2 := s.Create(&entity.Form{Name: "Checklist"})

	if f1.ID != "form-1" {
		t.Errorf("expected first id form-1, got %s", f1.ID)
	}
	if f2.ID != "form-2" {
		t.Errorf("expected second id form-2, got %s", f2.ID)
	}
	if f1.CreatedAt.IsZero() || f1.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on create")
	}

	got := s.Get(f1.ID)
	if got == nil || got.Name != "Inspection" {
		t.Fatalf("expected to read back created form, got %+v", got)
	}
}

func TestFormStoreGetMissing(t *testing.T) {
	s := newTestFormStore()
	if got := s.Get("form-999"); got != nil {
		t.Errorf("expected nil for missing form, got %+v", got)
	}
}

func TestFormStoreGetAllInsertionOrderAndOwnerFilter(t *testing.T) {
	s := newTestFormStore()
	s.Create(&entity.Form{Name: "A", UserID: "user-1"})
	s.Create(&entity.Form{Name: "B", UserID: "user-2"})
	s.Create(&entity.Form{Name: "C", UserID: "user-1"})

	all := s.GetAll("")
	if len(all) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(all))
	}
	if all[0].Name != "A" || all[1].Name != "B" || all[2].Name != "C" {
		t.Errorf("expected insertion order A,B,C, got %s,%s,%s", all[0].Name, all[1].Name, all[2].Name)
	}

	mine := s.GetAll("user-1")
	if len(mine) != 2 {
		t.Fatalf("expected 2 forms for user-1, got %d", len(mine))
	}
	if mine[0].Name != "A" || mine[1].Name != "C" {
		t.Errorf("expected A,C for user-1, got %s,%s", mine[0].Name, mine[1].Name)
	}
}

func TestFormStoreTemplates(t *testing.T) {
	s := newTestFormStore()
	s.Create(&entity.Form{Name: "Regular"})
	s.Create(&entity.Form{Name: "Template", IsTemplate: true})

	templates := s.Templates()
	if len(templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates))
	}
	if templates[0].Name != "Template" {
		t.Errorf("expected Template, got %s", templates[0].Name)
	}
}

func TestFormStoreUpdatePartial(t *testing.T) {
	s := newTestFormStore()
	f := s.Create(&entity.Form{Name: "Before", Description: "keep me"})

	name := "After"
	updated := s.Update(f.ID, FormPatch{Name: &name})
	if updated == nil {
		t.Fatal("expected updated form, got nil")
	}
	if updated.Name != "After" {
		t.Errorf("expected name After, got %s", updated.Name)
	}
	if updated.Description != "keep me" {
		t.Errorf("expected description unchanged, got %s", updated.Description)
	}
	if !updated.UpdatedAt.After(f.UpdatedAt) && !updated.UpdatedAt.Equal(f.UpdatedAt) {
		t.Error("expected UpdatedAt to be refreshed")
	}
}

func TestFormStoreUpdateReplacesFields(t *testing.T) {
	s := newTestFormStore()
	f := s.Create(&entity.Form{Name: "F", Fields: []entity.FormField{
		{ID: "a", Type: entity.FieldText, Label: "A", Order: 0},
		{ID: "b", Type: entity.FieldText, Label: "B", Order: 1},
	}})

	updated := s.Update(f.ID, FormPatch{Fields: []entity.FormField{
		{ID: "c", Type: entity.FieldDate, Label: "C", Order: 0},
	}})
	if len(updated.Fields) != 1 || updated.Fields[0].ID != "c" {
		t.Errorf("expected fields replaced wholesale, got %+v", updated.Fields)
	}
}

func TestFormStoreUpdateMissing(t *testing.T) {
	s := newTestFormStore()
	name := "x"
	if got := s.Update("form-999", FormPatch{Name: &name}); got != nil {
		t.Errorf("expected nil updating missing form, got %+v", got)
	}
}

func TestFormStoreDelete(t *testing.T) {
	s := newTestFormStore()
	f := s.Create(&entity.Form{Name: "Doomed"})

	if !s.Delete(f.ID) {
		t.Error("expected delete to report true for existing form")
	}
	if s.Get(f.ID) != nil {
		t.Error("expected form gone after delete")
	}
	if s.Delete(f.ID) {
		t.Error("expected delete to report false for missing form")
	}
	if len(s.GetAll("")) != 0 {
		t.Error("expected deleted form removed from listing")
	}
}
