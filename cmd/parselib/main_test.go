package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iw2rmb/parselib/reader"
)

func TestParseFlags(t *testing.T) {
	cases := []struct {
		args    []string
		want    options
		wantErr bool
	}{
		{args: nil, want: options{}},
		{args: []string{"-text", "(1,2)"}, want: options{text: "(1,2)"}},
		{args: []string{"-file", "in.txt", "-watch"}, want: options{file: "in.txt", watch: true}},
		{args: []string{"-version"}, want: options{version: true}},
		{args: []string{"-debug", "debug.log"}, want: options{debug: "debug.log"}},
		{args: []string{"-text", "x", "-file", "in.txt"}, wantErr: true},
		{args: []string{"-watch"}, wantErr: true},
		{args: []string{"-nope"}, wantErr: true},
	}

	for _, tc := range cases {
		got, err := parseFlags(tc.args)
		if (err != nil) != tc.wantErr {
			t.Fatalf("parseFlags(%q): err=%v, wantErr=%v", tc.args, err, tc.wantErr)
		}
		if err == nil && got != tc.want {
			t.Fatalf("parseFlags(%q): got %+v, want %+v", tc.args, got, tc.want)
		}
	}
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("(a,b)"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []struct {
		opt  options
		want string
	}{
		{opt: options{}, want: sampleText},
		{opt: options{text: "abc"}, want: "abc"},
		{opt: options{file: path}, want: "(a,b)"},
	}
	for _, tc := range cases {
		got, err := loadText(tc.opt)
		if err != nil {
			t.Fatalf("loadText(%+v): %v", tc.opt, err)
		}
		if got != tc.want {
			t.Fatalf("loadText(%+v): got %q, want %q", tc.opt, got, tc.want)
		}
	}

	if _, err := loadText(options{file: filepath.Join(t.TempDir(), "missing")}); !os.IsNotExist(err) {
		t.Fatalf("missing file: got %v, want not-exist error", err)
	}
}

func TestSampleText_ScansCleanly(t *testing.T) {
	r := reader.New(sampleText)

	if got := r.ReadAlphanumericString(); got != "hello_world" {
		t.Fatalf("alnum: got %q", got)
	}
	r.ConsumeWhitespace()
	if got := r.ReadNumericString(); got != "42" {
		t.Fatalf("numeric: got %q", got)
	}
	r.ConsumeWhitespace()
	if got, err := r.ReadQuotedString(); err != nil || got != `he said "hi"` {
		t.Fatalf("quoted: got (%q, %v)", got, err)
	}
	r.ConsumeWhitespace()
	if _, err := r.ParseIntArray(); err != nil {
		t.Fatalf("int array: %v", err)
	}
	r.ConsumeWhitespace()
	if _, err := r.ParseCharArray(); err != nil {
		t.Fatalf("char array: %v", err)
	}
	if !r.IsAtEnd() {
		t.Fatalf("sample text not fully consumed, rest %q", r.PeekRest())
	}
}
