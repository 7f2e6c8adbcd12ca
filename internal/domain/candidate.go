package domain

import "time"

// Candidate 描述源目录下的一个直接子项（文件或目录，不做类型过滤）。
//
// 不变量：
// - AbsPath 由源目录与 Name 拼接而成（不读文件内容）
// - Created 在选择时现读，不跨运行缓存
type Candidate struct {
	AbsPath string
	Name    string
	IsDir   bool
	Created time.Time
}
