// Package seed 内置表单模板
package seed

import (
	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
)

// Templates 写入内置模板，服务启动时调用一次
func Templates(forms *store.FormStore) {
	for _, t := range builtinTemplates() {
		forms.Create(t)
	}
}

func builtinTemplates() []*entity.Form {
	return []*entity.Form{
		{
			Name:        "Safety Inspection",
			Description: "Comprehensive safety inspection form for workplace and site assessments",
			Category:    "Safety",
			IsTemplate:  true,
			Fields: []entity.FormField{
				{ID: "inspector", Type: entity.FieldText, Label: "Inspector Name", Required: true, Placeholder: "Enter your name", Order: 0},
				{ID: "email", Type: entity.FieldEmail, Label: "Email Address", Required: true, Placeholder: "your.email@company.com", Order: 1},
				{ID: "date", Type: entity.FieldDate, Label: "Inspection Date", Required: true, Order: 2},
				{ID: "location", Type: entity.FieldText, Label: "Site Location", Required: true, Placeholder: "e.g., Building A - Floor 3", Order: 3},
				{ID: "safety-equipment", Type: entity.FieldRadio, Label: "Safety Equipment Present?", Required: true, Options: []string{"Yes", "No", "Partially"}, Order: 4},
				{ID: "hazards", Type: entity.FieldTextarea, Label: "Hazards Identified", Placeholder: "Describe any hazards or concerns...", Order: 5},
				{ID: "checklist", Type: entity.FieldCheckbox, Label: "Safety Checklist", Options: []string{"Fire Extinguishers", "Emergency Exits", "First Aid Kit", "Safety Signage"}, Order: 6},
				{ID: "rating", Type: entity.FieldSelect, Label: "Overall Safety Rating", Required: true, Options: []string{"Excellent", "Good", "Fair", "Poor"}, Order: 7},
				{ID: "photo", Type: entity.FieldImage, Label: "Upload Photo (Optional)", Order: 8},
				{ID: "signature", Type: entity.FieldSignature, Label: "Inspector Signature", Required: true, Order: 9},
			},
		},
		{
			Name:        "Work Order",
			Description: "Track maintenance and repair tasks with detailed work order forms",
			Category:    "Maintenance",
			IsTemplate:  true,
			Fields: []entity.FormField{
				{ID: "technician", Type: entity.FieldText, Label: "Technician Name", Required: true, Order: 0},
				{ID: "work-date", Type: entity.FieldDate, Label: "Work Date", Required: true, Order: 1},
				{ID: "work-type", Type: entity.FieldSelect, Label: "Work Type", Required: true, Options: []string{"Repair", "Maintenance", "Installation", "Inspection"}, Order: 2},
				{ID: "description", Type: entity.FieldTextarea, Label: "Work Description", Required: true, Order: 3},
				{ID: "parts", Type: entity.FieldTextarea, Label: "Parts Used", Order: 4},
				{ID: "hours", Type: entity.FieldText, Label: "Hours Worked", Required: true, Placeholder: "e.g., 2.5", Order: 5},
				{ID: "photo", Type: entity.FieldImage, Label: "Before/After Photos", Order: 6},
				{ID: "signature", Type: entity.FieldSignature, Label: "Customer Signature", Required: true, Order: 7},
			},
		},
		{
			Name:        "Daily Report",
			Description: "Document daily activities, progress, and site conditions",
			Category:    "Reports",
			IsTemplate:  true,
			Fields: []entity.FormField{
				{ID: "reporter", Type: entity.FieldText, Label: "Reporter Name", Required: true, Order: 0},
				{ID: "date", Type: entity.FieldDate, Label: "Report Date", Required: true, Order: 1},
				{ID: "location", Type: entity.FieldText, Label: "Site Location", Required: true, Order: 2},
				{ID: "activities", Type: entity.FieldTextarea, Label: "Activities Completed", Required: true, Order: 3},
				{ID: "progress", Type: entity.FieldTextarea, Label: "Progress Notes", Order: 4},
				{ID: "issues", Type: entity.FieldTextarea, Label: "Issues Encountered", Order: 5},
				{ID: "next-steps", Type: entity.FieldTextarea, Label: "Next Steps", Order: 6},
				{ID: "photo", Type: entity.FieldImage, Label: "Progress Photos", Order: 7},
			},
		},
	}
}
