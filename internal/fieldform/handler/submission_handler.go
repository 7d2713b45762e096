package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/fieldform/internal/config"
	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/logic"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
	"github.com/bitfantasy/fieldform/internal/shared/mailer"
)

// SubmissionHandler 提交记录处理器
type SubmissionHandler struct {
	submissions *store.SubmissionStore
	forms       *store.FormStore
	users       *store.UserStore
	mail        *mailer.Mailer
	cfg         *config.Config
}

// NewSubmissionHandler 创建提交记录处理器
func NewSubmissionHandler(submissions *store.SubmissionStore, forms *store.FormStore, users *store.UserStore, mail *mailer.Mailer, cfg *config.Config) *SubmissionHandler {
	return &SubmissionHandler{
		submissions: submissions,
		forms:       forms,
		users:       users,
		mail:        mail,
		cfg:         cfg,
	}
}

// List 提交记录列表
// GET /api/submissions?search=xxx&status=xxx&formId=xxx
// search 优先，非空时忽略 status / formId
func (h *SubmissionHandler) List(c *gin.Context) {
	if q := c.Query("search"); q != "" {
		Success(c, gin.H{"submissions": h.submissions.Search(q)})
		return
	}
	status := entity.SubmissionStatus(c.Query("status"))
	Success(c, gin.H{"submissions": h.submissions.Filter(status, c.Query("formId"))})
}

// Create 创建提交记录
// POST /api/submissions
// 表单存在时按字段定义校验数据，隐藏字段不做必填校验；
// 表单已删除时跳过校验直接入库
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req struct {
		FormID      string       `json:"formId"`
		FormName    string       `json:"formName"`
		SubmittedBy string       `json:"submittedBy"`
		Location    string       `json:"location"`
		Data        entity.JSONB `json:"data"`
		Images      []string     `json:"images"`
		Signature   string       `json:"signature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.FormID == "" || req.FormName == "" || req.SubmittedBy == "" {
		BadRequest(c, "formId, formName and submittedBy are required")
		return
	}
	if req.Data == nil {
		BadRequest(c, "data is required")
		return
	}

	form := h.forms.Get(req.FormID)
	if form != nil {
		if err := logic.ValidateSubmission(form.Fields, req.Data); err != nil {
			BadRequest(c, err.Error())
			return
		}
	}

	sub := h.submissions.Create(&entity.Submission{
		FormID:      req.FormID,
		FormName:    req.FormName,
		SubmittedBy: req.SubmittedBy,
		SubmittedAt: time.Now().UTC(),
		Status:      entity.SubmissionCompleted,
		Location:    req.Location,
		Data:        req.Data,
		Images:      req.Images,
		Signature:   req.Signature,
	})

	h.notifyOwner(form, sub)

	Created(c, gin.H{"submission": sub})
}

// Get 提交记录详情
// GET /api/submissions/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	sub := h.submissions.Get(c.Param("id"))
	if sub == nil {
		NotFound(c, "Submission not found")
		return
	}
	Success(c, gin.H{"submission": sub})
}

// notifyOwner 给表单归属人发提交通知，没有归属人时发到管理员邮箱
func (h *SubmissionHandler) notifyOwner(form *entity.Form, sub *entity.Submission) {
	to := h.cfg.SMTP.AdminEmail
	if form != nil && form.UserID != "" {
		if owner := h.users.Get(form.UserID); owner != nil {
			to = owner.Email
		}
	}
	h.mail.Send(mailer.NewSubmissionMail(to, sub.FormName, sub.SubmittedBy, sub.ID))
}
