package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
)

// TaskHandler 调度任务处理器
type TaskHandler struct {
	tasks *store.TaskStore
}

// NewTaskHandler 创建调度任务处理器
func NewTaskHandler(tasks *store.TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List 任务列表
// GET /api/scheduling/tasks
func (h *TaskHandler) List(c *gin.Context) {
	Success(c, gin.H{"tasks": h.tasks.GetAll()})
}

// Create 创建任务
// POST /api/scheduling/tasks
// 状态默认 pending，优先级默认 medium
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		FormID     string              `json:"formId"`
		FormName   string              `json:"formName"`
		AssignedTo string              `json:"assignedTo"`
		DueDate    string              `json:"dueDate"`
		Status     entity.TaskStatus   `json:"status"`
		Location   string              `json:"location"`
		Priority   entity.TaskPriority `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.FormID == "" || req.FormName == "" || req.AssignedTo == "" || req.DueDate == "" {
		BadRequest(c, "formId, formName, assignedTo and dueDate are required")
		return
	}
	if req.Status == "" {
		req.Status = entity.TaskPending
	}
	if req.Priority == "" {
		req.Priority = entity.TaskPriorityMedium
	}

	task := h.tasks.Create(&entity.Task{
		FormID:     req.FormID,
		FormName:   req.FormName,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
		Status:     req.Status,
		Location:   req.Location,
		Priority:   req.Priority,
	})

	Created(c, gin.H{"task": task})
}

// Get 任务详情
// GET /api/scheduling/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task := h.tasks.Get(c.Param("id"))
	if task == nil {
		NotFound(c, "Task not found")
		return
	}
	Success(c, gin.H{"task": task})
}

// Update 局部更新任务
// PUT /api/scheduling/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var patch store.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task := h.tasks.Update(c.Param("id"), patch)
	if task == nil {
		NotFound(c, "Task not found")
		return
	}
	Success(c, gin.H{"task": task})
}

// Delete 删除任务
// DELETE /api/scheduling/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if !h.tasks.Delete(c.Param("id")) {
		NotFound(c, "Task not found")
		return
	}
	Success(c, gin.H{"message": "Task deleted"})
}
