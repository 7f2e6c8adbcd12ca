package run

import (
	"time"

	"github.com/John-Robertt/recentshot/internal/config"
	"github.com/John-Robertt/recentshot/internal/domain"
)

// Observer 用于把“阶段/结果”事件从核心执行流程中解耦出来。
//
// 约束：run 包只负责发事件，不做任何输出（stdout 只属于最终结果行）。
type Observer interface {
	// OnStart 在 Execute 开始时调用。
	OnStart(eff config.EffectiveConfig)
	// OnSelected 在选出最新条目后调用。
	OnSelected(c domain.Candidate, dur time.Duration)
	// OnDone 在得到最终 Result 后调用（仅当没有致命错误时）。
	OnDone(res domain.Result)
}
