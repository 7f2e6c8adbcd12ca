package run

import (
	"fmt"
	"time"

	"github.com/John-Robertt/recentshot/internal/app/planner"
	"github.com/John-Robertt/recentshot/internal/config"
	"github.com/John-Robertt/recentshot/internal/domain"
	"github.com/John-Robertt/recentshot/internal/scan"
)

// 通过可替换的函数指针，让测试能模拟目标路径构造失败。
var destinationFunc = planner.Destination

// Execute 执行一次：先选最新条目，再计算目标路径。
func Execute(eff config.EffectiveConfig) (domain.Result, error) {
	return ExecuteWithObserver(eff, nil)
}

// ExecuteWithObserver 与 Execute 相同，但允许传入 Observer。
//
// 错误分两类（边界固定）：
// - 选择阶段的错误（空目录/不存在/无权限）作为 error 返回，属于致命错误
// - 目标路径构造的错误只在这一步被捕获，降级为 StatusFailed 的 Result
func ExecuteWithObserver(eff config.EffectiveConfig, obs Observer) (domain.Result, error) {
	if obs != nil {
		obs.OnStart(eff)
	}

	started := time.Now()
	src, err := scan.Latest(eff.ScreenshotDir, scan.Options{IncludeHidden: eff.IncludeHidden})
	if err != nil {
		return domain.Result{}, fmt.Errorf("选择最新文件失败：%w", err)
	}
	if obs != nil {
		obs.OnSelected(src, time.Since(started))
	}

	var res domain.Result
	if dst, err := destinationFunc(eff.DestinationDir, src.AbsPath, eff.JoinMode); err != nil {
		res = domain.Failed(src, domain.ErrCodePathConstruction, err)
	} else {
		res = domain.OK(src, dst)
	}

	if obs != nil {
		obs.OnDone(res)
	}
	return res, nil
}
