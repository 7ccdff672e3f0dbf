package engine

import "time"

// Timer 一个可取消的延时任务句柄
type Timer interface {
	Stop() bool
}

// Scheduler 定时器调度接口，抽象出来便于测试中使用假时钟
// 回调在独立协程触发，必须自行加锁并重新校验状态
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// NewScheduler 返回基于系统时钟的调度器
func NewScheduler() Scheduler {
	return wallScheduler{}
}
