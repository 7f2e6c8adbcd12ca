package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/John-Robertt/recentshot/internal/app/run"
	"github.com/John-Robertt/recentshot/internal/config"
	"github.com/John-Robertt/recentshot/internal/domain"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取当前目录失败：%v\n", err)
		os.Exit(exitFatal)
	}
	if code := runMain(os.Args[1:], os.Stdout, os.Stderr, os.Getenv, cwd); code != exitOK {
		os.Exit(code)
	}
}

// usageError 表示参数层面的错误（个数不对、未知 flag），退出码固定为 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// runMain 是可在测试中直接调用的入口：不读 os.Args / 进程环境，全部由参数注入。
func runMain(args []string, stdout, stderr io.Writer, getenv func(string) string, cwd string) int {
	if args == nil {
		// cobra 在 args 为 nil 时会回退读取 os.Args。
		args = []string{}
	}
	code := exitOK
	cmd := newRootCmd(stdout, stderr, getenv, cwd, &code)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return code
	}

	var ue *usageError
	switch {
	case errors.As(err, &ue):
		fmt.Fprintf(stderr, "参数错误：%v\n\n", ue.err)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	case config.Code(err) != "":
		fmt.Fprintf(stderr, "配置错误：%v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "错误：%v\n", err)
		return exitFatal
	}
}

func newRootCmd(stdout, stderr io.Writer, getenv func(string) string, cwd string, code *int) *cobra.Command {
	var cli config.CLIArgs

	cmd := &cobra.Command{
		Use:   "recentshot <screenshot_dir> <destination_dir>",
		Short: "输出最新截图对应的目标路径",
		Long: `recentshot 选出 screenshot_dir 下创建时间最新的条目，并输出
destination_dir + 文件名（直接拼接，不补分隔符；可用 --join 改为路径拼接）。

只计算并输出路径，不复制、不移动任何文件。

stdout 只有一行：目标路径，或构造失败时的 "false"。`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.ScreenshotDir = args[0]
			cli.DestinationDir = args[1]

			flags := cmd.Flags()
			cli.StrictSet = flags.Changed("strict")
			cli.JoinSet = flags.Changed("join")
			cli.HiddenSet = flags.Changed("hidden")
			cli.LogLevelSet = flags.Changed("log-level")

			eff, err := config.LoadEffective(cwd, getenv, cli)
			if err != nil {
				return err
			}

			logger := log.NewWithOptions(stderr, log.Options{
				Prefix: "recentshot",
				Level:  eff.LogLevel,
			})

			res, err := run.ExecuteWithObserver(eff, newLogObserver(logger))
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, res.Line())
			*code = exitCode(res, eff.Strict)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.BoolVar(&cli.Strict, "strict", false, "目标路径构造失败时以非零退出码结束（默认仍为 0，只输出 false）")
	flags.BoolVar(&cli.Join, "join", false, "用路径拼接代替直接字符串拼接（自动补分隔符）")
	flags.BoolVar(&cli.Hidden, "hidden", false, "把 '.' 开头的条目也纳入选择")
	flags.StringVar(&cli.LogLevel, "log-level", "", "日志级别：debug|info|warn|error（默认 warn，输出到 stderr）")

	return cmd
}

// exitCode 把 Result 映射为退出码。
// 默认软失败仍返回 0（外部插件按 stdout 的 "false" 判断）；strict 时返回 1。
func exitCode(res domain.Result, strict bool) int {
	if res.IsOK() || !strict {
		return exitOK
	}
	return exitFatal
}
