package store

import (
	"fmt"
	"sync/atomic"
)

// Sequence ID生成器，产生 "{prefix}-{n}" 形式的单调递增标识
// 通过依赖注入传给各个存储，测试可以自建实例控制起始值
type Sequence struct {
	prefix string
	n      atomic.Int64
}

// NewSequence 创建ID生成器，计数从1开始
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next 返回下一个标识
func (s *Sequence) Next() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

// Stores 存储集合，进程启动时构建一次并注入handler层
type Stores struct {
	Forms       *FormStore
	Submissions *SubmissionStore
	Tasks       *TaskStore
	WorkOrders  *WorkOrderStore
	Users       *UserStore
}

// NewStores 创建存储集合
func NewStores() *Stores {
	return &Stores{
		Forms:       NewFormStore(NewSequence("form")),
		Submissions: NewSubmissionStore(NewSequence("submission")),
		Tasks:       NewTaskStore(NewSequence("task")),
		WorkOrders:  NewWorkOrderStore(NewSequence("wo")),
		Users:       NewUserStore(NewSequence("user")),
	}
}
