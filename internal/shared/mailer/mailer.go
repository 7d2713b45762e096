// Package mailer SMTP邮件通知
// 未配置SMTP主机时进入空操作模式，只记录日志不发信。
// 发送走后台goroutine，失败只记日志不影响请求
package mailer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Config 邮件配置
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer 邮件发送器
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	logger *zap.Logger
}

// New 创建邮件发送器，Host为空时返回空操作模式的实例
func New(cfg Config, logger *zap.Logger) *Mailer {
	m := &Mailer{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

// Mail 待发送的邮件内容
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Send 异步发送邮件
func (m *Mailer) Send(mail Mail) {
	if mail.To == "" {
		return
	}
	if m.dialer == nil {
		m.logger.Info("email would be sent",
			zap.String("to", mail.To),
			zap.String("subject", mail.Subject))
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)

	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			m.logger.Error("failed to send email",
				zap.String("to", mail.To),
				zap.String("subject", mail.Subject),
				zap.Error(err))
			return
		}
		m.logger.Info("email sent",
			zap.String("to", mail.To),
			zap.String("subject", mail.Subject))
	}()
}

// NewWorkOrderAssignedMail 工单指派通知
func NewWorkOrderAssignedMail(to, title, workOrderID, priority, dueDate string) Mail {
	var b strings.Builder
	fmt.Fprintf(&b, "You have been assigned a new work order.\n\n")
	fmt.Fprintf(&b, "Work Order: %s\n", title)
	fmt.Fprintf(&b, "ID: %s\n", workOrderID)
	fmt.Fprintf(&b, "Priority: %s\n", priority)
	fmt.Fprintf(&b, "Due Date: %s\n", dueDate)
	return Mail{
		To:      to,
		Subject: fmt.Sprintf("Work Order Assigned: %s", title),
		Body:    b.String(),
	}
}

// NewSubmissionMail 表单提交通知
func NewSubmissionMail(to, formName, submittedBy, submissionID string) Mail {
	var b strings.Builder
	fmt.Fprintf(&b, "A new submission has been received.\n\n")
	fmt.Fprintf(&b, "Form: %s\n", formName)
	fmt.Fprintf(&b, "Submitted By: %s\n", submittedBy)
	fmt.Fprintf(&b, "Submission ID: %s\n", submissionID)
	return Mail{
		To:      to,
		Subject: fmt.Sprintf("New Submission: %s", formName),
		Body:    b.String(),
	}
}
