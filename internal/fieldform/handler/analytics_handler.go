package handler

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
)

// AnalyticsHandler 统计处理器
type AnalyticsHandler struct {
	forms       *store.FormStore
	submissions *store.SubmissionStore
}

// NewAnalyticsHandler 创建统计处理器
func NewAnalyticsHandler(forms *store.FormStore, submissions *store.SubmissionStore) *AnalyticsHandler {
	return &AnalyticsHandler{
		forms:       forms,
		submissions: submissions,
	}
}

type formCount struct {
	FormID   string `json:"formId"`
	FormName string `json:"formName"`
	Count    int    `json:"count"`
}

type dailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Summary 汇总统计
// GET /api/analytics/summary
// totalForms 只统计非模板表单；submissionsByDay 覆盖最近7天（含今天），
// 无提交的日期补0
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	subs := h.submissions.Filter("", "")

	totalForms := 0
	for _, f := range h.forms.GetAll("") {
		if !f.IsTemplate {
			totalForms++
		}
	}

	byStatus := map[entity.SubmissionStatus]int{
		entity.SubmissionCompleted: 0,
		entity.SubmissionPending:   0,
		entity.SubmissionFlagged:   0,
	}
	byForm := make(map[string]*formCount)
	byDay := make(map[string]int)

	for _, sub := range subs {
		byStatus[sub.Status]++
		fc, ok := byForm[sub.FormID]
		if !ok {
			fc = &formCount{FormID: sub.FormID, FormName: sub.FormName}
			byForm[sub.FormID] = fc
		}
		fc.Count++
		byDay[sub.SubmittedAt.UTC().Format("2006-01-02")]++
	}

	topForms := make([]formCount, 0, len(byForm))
	for _, fc := range byForm {
		topForms = append(topForms, *fc)
	}
	sort.Slice(topForms, func(i, j int) bool {
		if topForms[i].Count != topForms[j].Count {
			return topForms[i].Count > topForms[j].Count
		}
		return topForms[i].FormID < topForms[j].FormID
	})

	today := time.Now().UTC()
	byDaySeries := make([]dailyCount, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		byDaySeries = append(byDaySeries, dailyCount{Date: date, Count: byDay[date]})
	}

	Success(c, gin.H{
		"totalForms":          totalForms,
		"totalSubmissions":    len(subs),
		"submissionsByStatus": byStatus,
		"submissionsByForm":   topForms,
		"submissionsByDay":    byDaySeries,
	})
}
