package planner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// JoinMode 决定目标目录与文件名如何拼接。
type JoinMode int

const (
	// JoinConcat 直接字符串拼接（不插入分隔符）；调用方需自带结尾分隔符。
	JoinConcat JoinMode = iota
	// JoinPath 使用 filepath.Join（显式修正分隔符）。
	JoinPath
)

func (m JoinMode) String() string {
	switch m {
	case JoinConcat:
		return "concat"
	case JoinPath:
		return "join"
	default:
		return fmt.Sprintf("JoinMode(%d)", int(m))
	}
}

// PathConstructionError 表示已选中源文件，但无法由它构造目标路径。
// 上层把它降级为软失败（输出固定标记），而不是致命错误。
type PathConstructionError struct {
	Src  string
	Dest string
	Err  error
}

func (e *PathConstructionError) Error() string {
	return fmt.Sprintf("无法构造目标路径：src=%q dest=%q：%v", e.Src, e.Dest, e.Err)
}

func (e *PathConstructionError) Unwrap() error { return e.Err }

// IsPathConstruction 判断 err 是否为 PathConstructionError。
func IsPathConstruction(err error) bool {
	var e *PathConstructionError
	return errors.As(err, &e)
}

var errNoBaseName = errors.New("源路径没有可用的文件名")

// Destination 由目标目录 destDir 与源路径 src 的 base name 计算目标路径（不访问文件系统）。
//
// - JoinConcat：destDir + base(src)，destDir 原样保留（"" 也合法）
// - JoinPath：filepath.Join(destDir, base(src))
//
// 只有 src 给不出文件名（空串、"."、".."、纯分隔符）时才返回 PathConstructionError。
func Destination(destDir, src string, mode JoinMode) (string, error) {
	base, err := baseName(src)
	if err != nil {
		return "", &PathConstructionError{Src: src, Dest: destDir, Err: err}
	}

	switch mode {
	case JoinConcat:
		return destDir + base, nil
	case JoinPath:
		return filepath.Join(destDir, base), nil
	default:
		return "", &PathConstructionError{Src: src, Dest: destDir, Err: fmt.Errorf("未知拼接方式：%v", mode)}
	}
}

func baseName(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", errNoBaseName
	}
	base := filepath.Base(src)
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", errNoBaseName
	}
	return base, nil
}
