package planner

import (
	"path/filepath"
	"testing"
)

func TestDestination_ConcatNoSeparatorInserted(t *testing.T) {
	src := filepath.Join("tmp", "shots", "b.png")

	cases := []struct {
		dest string
		want string
	}{
		{dest: "/dst/", want: "/dst/b.png"},
		{dest: "/dst", want: "/dstb.png"}, // 不补分隔符：原样拼接
		{dest: "", want: "b.png"},
		{dest: "prefix-", want: "prefix-b.png"},
	}
	for _, c := range cases {
		got, err := Destination(c.dest, src, JoinConcat)
		if err != nil {
			t.Fatalf("dest=%q：不期望错误：%v", c.dest, err)
		}
		if got != c.want {
			t.Fatalf("dest=%q：期望 %q，实际 %q", c.dest, c.want, got)
		}
		if got != c.dest+filepath.Base(src) {
			t.Fatalf("dest=%q：必须等于 dest+base(src)，实际 %q", c.dest, got)
		}
	}
}

func TestDestination_JoinMode(t *testing.T) {
	src := filepath.Join("tmp", "shots", "b.png")

	got, err := Destination("dst", src, JoinPath)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if want := filepath.Join("dst", "b.png"); got != want {
		t.Fatalf("期望 %q，实际 %q", want, got)
	}

	got, err = Destination("", src, JoinPath)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if got != "b.png" {
		t.Fatalf("期望 b.png，实际 %q", got)
	}
}

func TestDestination_DirectoryCandidate(t *testing.T) {
	// 选中的是目录时同样取最后一段。
	got, err := Destination("/dst/", filepath.Join("shots", "2026-10-14"), JoinConcat)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if got != "/dst/2026-10-14" {
		t.Fatalf("期望 /dst/2026-10-14，实际 %q", got)
	}
}

func TestDestination_NoBaseName(t *testing.T) {
	for _, src := range []string{"", "  ", ".", "..", string(filepath.Separator)} {
		_, err := Destination("/dst/", src, JoinConcat)
		if err == nil {
			t.Fatalf("src=%q：期望错误，但得到 nil", src)
		}
		if !IsPathConstruction(err) {
			t.Fatalf("src=%q：期望 PathConstructionError，实际：%T %v", src, err, err)
		}
	}
}

func TestDestination_UnknownMode(t *testing.T) {
	_, err := Destination("/dst/", "b.png", JoinMode(42))
	if !IsPathConstruction(err) {
		t.Fatalf("期望 PathConstructionError，实际：%T %v", err, err)
	}
}

func TestDestination_Idempotent(t *testing.T) {
	a, _ := Destination("/dst/", "/tmp/shots/b.png", JoinConcat)
	b, _ := Destination("/dst/", "/tmp/shots/b.png", JoinConcat)
	if a != b {
		t.Fatalf("相同输入必须得到相同输出：%q vs %q", a, b)
	}
}
