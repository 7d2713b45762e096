package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
)

// FormHandler 表单处理器
type FormHandler struct {
	forms *store.FormStore
}

// NewFormHandler 创建表单处理器
func NewFormHandler(forms *store.FormStore) *FormHandler {
	return &FormHandler{forms: forms}
}

// fieldPayload 请求中的字段定义
// Order 用指针区分"未提供"和显式0，未提供时按数组下标重排
type fieldPayload struct {
	ID               string                   `json:"id"`
	Type             entity.FieldType         `json:"type"`
	Label            string                   `json:"label"`
	Placeholder      string                   `json:"placeholder"`
	Required         bool                     `json:"required"`
	Options          []string                 `json:"options"`
	Order            *int                     `json:"order"`
	ConditionalRules []entity.ConditionalRule `json:"conditionalRules"`
	Calculation      string                   `json:"calculation"`
}

func (p fieldPayload) toField(index int) entity.FormField {
	order := index
	if p.Order != nil {
		order = *p.Order
	}
	return entity.FormField{
		ID:               p.ID,
		Type:             p.Type,
		Label:            p.Label,
		Placeholder:      p.Placeholder,
		Required:         p.Required,
		Options:          p.Options,
		Order:            order,
		ConditionalRules: p.ConditionalRules,
		Calculation:      p.Calculation,
	}
}

// buildFields 校验并转换字段定义，字段ID重复或类型非法时报错
func buildFields(payloads []fieldPayload) ([]entity.FormField, string) {
	fields := make([]entity.FormField, 0, len(payloads))
	seen := make(map[string]bool, len(payloads))
	for i, p := range payloads {
		if p.ID == "" {
			return nil, "Field id is required"
		}
		if seen[p.ID] {
			return nil, "Duplicate field id: " + p.ID
		}
		seen[p.ID] = true
		if !p.Type.Valid() {
			return nil, "Invalid field type: " + string(p.Type)
		}
		fields = append(fields, p.toField(i))
	}
	return fields, ""
}

// List 表单列表
// GET /api/forms?templates=true&userId=xxx
func (h *FormHandler) List(c *gin.Context) {
	if c.Query("templates") == "true" {
		Success(c, gin.H{"forms": h.forms.Templates()})
		return
	}
	Success(c, gin.H{"forms": h.forms.GetAll(c.Query("userId"))})
}

// Create 创建表单
// POST /api/forms
func (h *FormHandler) Create(c *gin.Context) {
	var req struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Fields      []fieldPayload `json:"fields"`
		TemplateID  string         `json:"templateId"`
		IsTemplate  bool           `json:"isTemplate"`
		Category    string         `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		BadRequest(c, "Form name is required")
		return
	}
	if req.Fields == nil {
		BadRequest(c, "Fields are required")
		return
	}

	fields, msg := buildFields(req.Fields)
	if msg != "" {
		BadRequest(c, msg)
		return
	}

	form := h.forms.Create(&entity.Form{
		Name:        req.Name,
		Description: req.Description,
		Fields:      fields,
		UserID:      GetUserID(c),
		TemplateID:  req.TemplateID,
		IsTemplate:  req.IsTemplate,
		Category:    req.Category,
	})

	Created(c, gin.H{"form": form})
}

// Get 表单详情
// GET /api/forms/:id
func (h *FormHandler) Get(c *gin.Context) {
	form := h.forms.Get(c.Param("id"))
	if form == nil {
		NotFound(c, "Form not found")
		return
	}
	Success(c, gin.H{"form": form})
}

// Update 局部更新表单
// PUT /api/forms/:id
func (h *FormHandler) Update(c *gin.Context) {
	var req struct {
		Name        *string        `json:"name"`
		Description *string        `json:"description"`
		Fields      []fieldPayload `json:"fields"`
		TemplateID  *string        `json:"templateId"`
		IsTemplate  *bool          `json:"isTemplate"`
		Category    *string        `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	patch := store.FormPatch{
		Name:        req.Name,
		Description: req.Description,
		TemplateID:  req.TemplateID,
		IsTemplate:  req.IsTemplate,
		Category:    req.Category,
	}
	if req.Fields != nil {
		fields, msg := buildFields(req.Fields)
		if msg != "" {
			BadRequest(c, msg)
			return
		}
		patch.Fields = fields
	}

	form := h.forms.Update(c.Param("id"), patch)
	if form == nil {
		NotFound(c, "Form not found")
		return
	}
	Success(c, gin.H{"form": form})
}

// Delete 删除表单
// DELETE /api/forms/:id
func (h *FormHandler) Delete(c *gin.Context) {
	if !h.forms.Delete(c.Param("id")) {
		NotFound(c, "Form not found")
		return
	}
	Success(c, gin.H{"message": "Form deleted"})
}
