package fsx

import (
	"time"
)

// CreationTime 返回 path 的创建时间（跟随符号链接，与 stat 语义一致）。
//
// 各平台取值：
// - Linux：statx 的 birth time；文件系统不提供时退化为 ctime（inode 状态变更时间）
// - Darwin：Birthtimespec
// - Windows：CreationTime
// - 其他平台：修改时间
//
// 只做元数据读取，不读文件内容。路径不存在/无权限时返回 *fs.PathError，
// 调用方可用 errors.Is(err, fs.ErrNotExist) 判断。
func CreationTime(path string) (time.Time, error) {
	return creationTime(path)
}
