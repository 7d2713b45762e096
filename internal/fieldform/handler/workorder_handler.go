package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
	"github.com/bitfantasy/fieldform/internal/shared/mailer"
)

// WorkOrderHandler 工单处理器
type WorkOrderHandler struct {
	orders *store.WorkOrderStore
	users  *store.UserStore
	mail   *mailer.Mailer
}

// NewWorkOrderHandler 创建工单处理器
func NewWorkOrderHandler(orders *store.WorkOrderStore, users *store.UserStore, mail *mailer.Mailer) *WorkOrderHandler {
	return &WorkOrderHandler{
		orders: orders,
		users:  users,
		mail:   mail,
	}
}

// List 工单列表
// GET /api/work-orders?status=xxx&assignedTo=xxx
func (h *WorkOrderHandler) List(c *gin.Context) {
	status := entity.WorkOrderStatus(c.Query("status"))
	Success(c, gin.H{"workOrders": h.orders.GetAll(status, c.Query("assignedTo"))})
}

// Create 创建工单
// POST /api/work-orders
// 新工单总是 draft 状态，指派通知在状态切到 assigned 时才发
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req struct {
		FormID       string                   `json:"formId"`
		FormName     string                   `json:"formName"`
		Title        string                   `json:"title"`
		Description  string                   `json:"description"`
		AssignedTo   string                   `json:"assignedTo"`
		CreatedBy    string                   `json:"createdBy"`
		Priority     entity.WorkOrderPriority `json:"priority"`
		DueDate      string                   `json:"dueDate"`
		Location     string                   `json:"location"`
		SubmissionID string                   `json:"submissionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.FormID == "" || req.FormName == "" || req.Title == "" ||
		req.AssignedTo == "" || req.CreatedBy == "" || req.DueDate == "" {
		BadRequest(c, "formId, formName, title, assignedTo, createdBy and dueDate are required")
		return
	}
	if req.Priority == "" {
		req.Priority = entity.WorkOrderPriorityMedium
	}

	order := h.orders.Create(&entity.WorkOrder{
		FormID:       req.FormID,
		FormName:     req.FormName,
		Title:        req.Title,
		Description:  req.Description,
		AssignedTo:   req.AssignedTo,
		CreatedBy:    req.CreatedBy,
		Status:       entity.WorkOrderDraft,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		Location:     req.Location,
		SubmissionID: req.SubmissionID,
	})

	Created(c, gin.H{"workOrder": order})
}

// Get 工单详情
// GET /api/work-orders/:id
func (h *WorkOrderHandler) Get(c *gin.Context) {
	order := h.orders.Get(c.Param("id"))
	if order == nil {
		NotFound(c, "Work order not found")
		return
	}
	Success(c, gin.H{"workOrder": order})
}

// Update 局部更新工单
// PUT /api/work-orders/:id
// 状态从非 assigned 变为 assigned 时给指派人发邮件通知
func (h *WorkOrderHandler) Update(c *gin.Context) {
	var patch store.WorkOrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	id := c.Param("id")
	existing := h.orders.Get(id)
	if existing == nil {
		NotFound(c, "Work order not found")
		return
	}

	order := h.orders.Update(id, patch)
	if order == nil {
		NotFound(c, "Work order not found")
		return
	}

	if existing.Status != entity.WorkOrderAssigned && order.Status == entity.WorkOrderAssigned {
		h.notifyAssignee(order)
	}

	Success(c, gin.H{"workOrder": order})
}

// AddNote 给工单追加备注
// POST /api/work-orders/:id/notes
func (h *WorkOrderHandler) AddNote(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Note == "" {
		BadRequest(c, "note is required")
		return
	}

	order := h.orders.AddNote(c.Param("id"), req.Note)
	if order == nil {
		NotFound(c, "Work order not found")
		return
	}
	Success(c, gin.H{"workOrder": order})
}

// Delete 删除工单
// DELETE /api/work-orders/:id
func (h *WorkOrderHandler) Delete(c *gin.Context) {
	if !h.orders.Delete(c.Param("id")) {
		NotFound(c, "Work order not found")
		return
	}
	Success(c, gin.H{"message": "Work order deleted"})
}

// notifyAssignee 指派人按用户ID或邮箱查找，找不到时不发信
func (h *WorkOrderHandler) notifyAssignee(order *entity.WorkOrder) {
	assignee := h.users.Get(order.AssignedTo)
	if assignee == nil {
		assignee = h.users.GetByEmail(order.AssignedTo)
	}
	if assignee == nil {
		return
	}
	h.mail.Send(mailer.NewWorkOrderAssignedMail(
		assignee.Email, order.Title, order.ID, string(order.Priority), order.DueDate))
}
