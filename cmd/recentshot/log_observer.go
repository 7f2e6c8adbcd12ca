package main

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/John-Robertt/recentshot/internal/app/run"
	"github.com/John-Robertt/recentshot/internal/config"
	"github.com/John-Robertt/recentshot/internal/domain"
)

var _ run.Observer = (*logObserver)(nil)

// logObserver 把 run 的事件写成结构化日志（只写 stderr，不碰 stdout 的结果行）。
type logObserver struct {
	l *log.Logger
}

func newLogObserver(l *log.Logger) *logObserver {
	return &logObserver{l: l}
}

func (o *logObserver) OnStart(eff config.EffectiveConfig) {
	o.l.Debug("开始",
		"screenshot_dir", eff.ScreenshotDir,
		"destination_dir", eff.DestinationDir,
		"join", eff.JoinMode.String(),
		"hidden", eff.IncludeHidden,
		"strict", eff.Strict,
	)
}

func (o *logObserver) OnSelected(c domain.Candidate, dur time.Duration) {
	o.l.Debug("选中最新条目",
		"path", c.AbsPath,
		"dir", c.IsDir,
		"created", c.Created.Format(time.RFC3339Nano),
		"took", dur.Round(time.Microsecond).String(),
	)
}

func (o *logObserver) OnDone(res domain.Result) {
	if res.IsOK() {
		o.l.Info("目标路径", "path", res.Path)
		return
	}
	o.l.Warn("目标路径构造失败", "src", res.Source.AbsPath, "code", res.ErrorCode, "err", res.ErrorMsg)
}
