//go:build linux

package fsx

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// 通过可替换的函数指针，让测试能模拟“内核不支持 statx / 文件系统没有 btime”。
var statxFunc = unix.Statx

func creationTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	err := statxFunc(unix.AT_FDCWD, path, 0, unix.STATX_BTIME|unix.STATX_CTIME, &stx)
	if err == nil {
		if stx.Mask&unix.STATX_BTIME != 0 {
			return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
		}
		// 部分文件系统（如较旧的 tmpfs/NFS）不记录 birth time：退化为 ctime。
		return time.Unix(stx.Ctime.Sec, int64(stx.Ctime.Nsec)), nil
	}
	if !errors.Is(err, unix.ENOSYS) {
		return time.Time{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}

	// 内核早于 4.11：没有 statx，只能用 stat 的 ctime。
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return time.Unix(st.Ctim.Unix()), nil
}
