package domain

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

const (
	ErrCodePathConstruction = "path_construction"
)

// FailureToken 是软失败时写到 stdout 的固定字面量（外部插件按该文本判断失败）。
const FailureToken = "false"

// Result 是一次运行在编排边界上的显式结果（ok / failed）。
// 退出码如何映射由调用方决定，run 包不做任何输出。
type Result struct {
	Status string

	// Path 仅在 StatusOK 时有意义。
	Path   string
	Source Candidate

	ErrorCode string
	ErrorMsg  string
}

// OK 构造成功结果。
func OK(src Candidate, path string) Result {
	return Result{Status: StatusOK, Path: path, Source: src}
}

// Failed 构造软失败结果（已选中文件，但目标路径无法构造）。
func Failed(src Candidate, code string, err error) Result {
	r := Result{Status: StatusFailed, Source: src, ErrorCode: code}
	if err != nil {
		r.ErrorMsg = err.Error()
	}
	return r
}

func (r Result) IsOK() bool { return r.Status == StatusOK }

// Line 返回 stdout 上唯一的一行：目标路径，或 FailureToken。
func (r Result) Line() string {
	if r.IsOK() {
		return r.Path
	}
	return FailureToken
}
