package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/John-Robertt/recentshot/internal/domain"
	"github.com/John-Robertt/recentshot/internal/infra/fsx"
)

// 通过可替换的函数指针，让测试能稳定控制每个条目的创建时间。
var creationTimeFunc = fsx.CreationTime

// EmptyDirectoryError 表示源目录下没有任何可选条目（max over empty 无定义）。
type EmptyDirectoryError struct {
	Dir string
}

func (e *EmptyDirectoryError) Error() string {
	return fmt.Sprintf("源目录为空：%q 下没有任何条目", e.Dir)
}

// IsEmptyDirectory 判断 err 是否为 EmptyDirectoryError。
func IsEmptyDirectory(err error) bool {
	var e *EmptyDirectoryError
	return errors.As(err, &e)
}

// Options 控制枚举规则。
type Options struct {
	// IncludeHidden 为 true 时，名字以 '.' 开头的条目也参与选择。
	// 默认跳过，与 "<dir>/*" 的通配语义一致。
	IncludeHidden bool
}

// Latest 返回 dir 下创建时间最大的直接子项（文件与目录一视同仁，不递归）。
//
// 规则：
// - 创建时间在选择时现读（fsx.CreationTime），不缓存
// - 并列时取枚举顺序中的第一个；os.ReadDir 按文件名排序，因此并列即取字典序最小者
// - dir 不存在/不可读：原样返回 *fs.PathError
// - 没有可选条目：返回 *EmptyDirectoryError
//
// 注意：枚举与读时间之间条目可能被删除，此时直接返回 stat 错误，不做重试。
func Latest(dir string, opt Options) (domain.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.Candidate{}, err
	}

	var (
		best  domain.Candidate
		found bool
	)
	for _, e := range entries {
		name := e.Name()
		if !opt.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		p := filepath.Join(dir, name)
		created, err := creationTimeFunc(p)
		if err != nil {
			return domain.Candidate{}, err
		}

		// 严格大于：并列时保留先出现的条目。
		if found && !created.After(best.Created) {
			continue
		}
		best = domain.Candidate{
			AbsPath: p,
			Name:    name,
			IsDir:   e.IsDir(),
			Created: created,
		}
		found = true
	}

	if !found {
		return domain.Candidate{}, &EmptyDirectoryError{Dir: dir}
	}
	return best, nil
}
