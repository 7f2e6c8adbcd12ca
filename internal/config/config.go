package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/John-Robertt/recentshot/internal/app/planner"
)

const (
	// ErrCodeInvalid 表示 .env 无法读取/解析，或某个字段取值不合法。
	ErrCodeInvalid = "config_invalid"
)

// DotEnvName 是可选的环境文件名（位于 cwd 下）。
const DotEnvName = ".env"

const (
	EnvStrict   = "RECENTSHOT_STRICT"
	EnvJoin     = "RECENTSHOT_JOIN"
	EnvHidden   = "RECENTSHOT_HIDDEN"
	EnvLogLevel = "RECENTSHOT_LOG_LEVEL"
)

// DefaultLogLevel 保证正常运行时 stderr 保持安静。
const DefaultLogLevel = log.WarnLevel

// CLIArgs 是 CLI 暴露的入口，并保留“是否显式指定”的信息。
// 这能保证覆盖优先级可实现：例如 --strict=false 必须能覆盖 RECENTSHOT_STRICT=true。
type CLIArgs struct {
	ScreenshotDir  string
	DestinationDir string

	Strict    bool
	StrictSet bool

	Join    bool
	JoinSet bool

	Hidden    bool
	HiddenSet bool

	LogLevel    string
	LogLevelSet bool
}

// EffectiveConfig 是合并后的最终配置（实现层直接消费，不再做二次默认/优先级判断）。
type EffectiveConfig struct {
	// ScreenshotDir/DestinationDir 原样保留，不做 Clean/Abs：
	// 目标路径是直接字符串拼接，任何规范化都会改变输出。
	ScreenshotDir  string
	DestinationDir string

	// Strict 为 true 时，软失败映射为非零退出码。
	Strict bool
	// IncludeHidden 为 true 时，'.' 开头的条目也参与选择。
	IncludeHidden bool
	JoinMode      planner.JoinMode
	LogLevel      log.Level
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s：%s 无效：%v", e.Code, e.Key, e.Err)
	}
	return fmt.Sprintf("%s：%v", e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEffective 读取可选的 <cwd>/.env，并与进程环境、CLI 参数合并为最终配置。
//
// 覆盖优先级（固定）：
// - CLI 显式参数 > 进程环境变量 > .env > 内置默认
// - 两个目录只来自 CLI 位置参数
//
// getenv 为 nil 时使用 os.Getenv。.env 只读取，不写回进程环境。
func LoadEffective(cwd string, getenv func(string) string, cli CLIArgs) (EffectiveConfig, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	dotenv, err := readDotEnv(filepath.Join(cwd, DotEnvName))
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Key: DotEnvName, Err: err}
	}
	lookup := func(key string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(dotenv[key])
	}

	eff := EffectiveConfig{
		ScreenshotDir:  cli.ScreenshotDir,
		DestinationDir: cli.DestinationDir,
		JoinMode:       planner.JoinConcat,
		LogLevel:       DefaultLogLevel,
	}

	if eff.Strict, err = mergeBool(cli.Strict, cli.StrictSet, EnvStrict, lookup(EnvStrict)); err != nil {
		return EffectiveConfig{}, err
	}
	if eff.IncludeHidden, err = mergeBool(cli.Hidden, cli.HiddenSet, EnvHidden, lookup(EnvHidden)); err != nil {
		return EffectiveConfig{}, err
	}
	join, err := mergeBool(cli.Join, cli.JoinSet, EnvJoin, lookup(EnvJoin))
	if err != nil {
		return EffectiveConfig{}, err
	}
	if join {
		eff.JoinMode = planner.JoinPath
	}

	level, key := lookup(EnvLogLevel), EnvLogLevel
	if cli.LogLevelSet {
		level, key = strings.TrimSpace(cli.LogLevel), "--log-level"
	}
	if level != "" {
		lv, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Key: key, Err: err}
		}
		eff.LogLevel = lv
	}

	return eff, nil
}

func mergeBool(cliVal, cliSet bool, key, envVal string) (bool, error) {
	if cliSet {
		return cliVal, nil
	}
	if envVal == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(envVal)
	if err != nil {
		return false, &Error{Code: ErrCodeInvalid, Key: key, Err: fmt.Errorf("只能是 true 或 false，实际是 %q", envVal)}
	}
	return b, nil
}

// readDotEnv 读取并解析 .env；文件不存在不算错误。
func readDotEnv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return godotenv.Read(path)
}
