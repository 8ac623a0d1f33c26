// ==============================================================================================
// FILE: internal/natives/natives_file.go
// ==============================================================================================
// PURPOSE: file-read, file-write, file-exists, file-isdir, file-isfile,
//          file-mkdir, file-rmdir, file-remove, file-copy, file-dirname,
//          file-basename, file-extname (§4.6) — thin os/path/filepath
//          wrappers, each releasing any handle it opens before returning
//          (§5 resource discipline).
// ==============================================================================================

package natives

import (
	"io"
	"os"
	"path/filepath"

	"github.com/lynxlang/lynx/internal/diag"
	"github.com/lynxlang/lynx/internal/types"
	"github.com/lynxlang/lynx/internal/value"
)

func registerFile(out map[string]*value.Value) {
	str := types.String()

	out["file-read"] = makeNative([]types.Field{param("path", str)}, false, fileRead)
	out["file-write"] = makeNative([]types.Field{param("path", str), param("content", str)}, false, fileWrite)
	out["file-exists"] = makeNative([]types.Field{param("path", str)}, false, fileExists)
	out["file-isdir"] = makeNative([]types.Field{param("path", str)}, false, fileIsDir)
	out["file-isfile"] = makeNative([]types.Field{param("path", str)}, false, fileIsFile)
	out["file-mkdir"] = makeNative([]types.Field{param("path", str)}, false, fileMkdir)
	out["file-rmdir"] = makeNative([]types.Field{param("path", str)}, false, fileRmdir)
	out["file-remove"] = makeNative([]types.Field{param("path", str)}, false, fileRemove)
	out["file-copy"] = makeNative([]types.Field{param("src", str), param("dst", str)}, false, fileCopy)
	out["file-dirname"] = makeNative([]types.Field{param("path", str)}, false, fileDirname)
	out["file-basename"] = makeNative([]types.Field{param("path", str)}, false, fileBasename)
	out["file-extname"] = makeNative([]types.Field{param("path", str)}, false, fileExtname)
}

func fileRead(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	data, err := os.ReadFile(path.Str)
	if err != nil {
		call.Host.Fail(diag.Runtime, "file-read %q: %v", path.Str, err)
		return nil, false
	}
	return value.NewString(string(data)), true
}

func fileWrite(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	content, _ := call.Args.Get("content")
	if err := os.WriteFile(path.Str, []byte(content.Str), 0o644); err != nil {
		call.Host.Fail(diag.Runtime, "file-write %q: %v", path.Str, err)
		return nil, false
	}
	return value.Bool(true), true
}

func fileExists(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	_, err := os.Stat(path.Str)
	return value.Bool(err == nil), true
}

func fileIsDir(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	info, err := os.Stat(path.Str)
	return value.Bool(err == nil && info.IsDir()), true
}

func fileIsFile(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	info, err := os.Stat(path.Str)
	return value.Bool(err == nil && !info.IsDir()), true
}

func fileMkdir(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	if err := os.MkdirAll(path.Str, 0o755); err != nil {
		call.Host.Fail(diag.Runtime, "file-mkdir %q: %v", path.Str, err)
		return nil, false
	}
	return value.Bool(true), true
}

func fileRmdir(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	if err := os.Remove(path.Str); err != nil {
		call.Host.Fail(diag.Runtime, "file-rmdir %q: %v", path.Str, err)
		return nil, false
	}
	return value.Bool(true), true
}

func fileRemove(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	if err := os.Remove(path.Str); err != nil {
		call.Host.Fail(diag.Runtime, "file-remove %q: %v", path.Str, err)
		return nil, false
	}
	return value.Bool(true), true
}

func fileCopy(call *value.Call) (*value.Value, bool) {
	src, _ := call.Args.Get("src")
	dst, _ := call.Args.Get("dst")

	in, err := os.Open(src.Str)
	if err != nil {
		call.Host.Fail(diag.Runtime, "file-copy: open %q: %v", src.Str, err)
		return nil, false
	}
	defer in.Close()

	out, err := os.Create(dst.Str)
	if err != nil {
		call.Host.Fail(diag.Runtime, "file-copy: create %q: %v", dst.Str, err)
		return nil, false
	}
	_, copyErr := io.Copy(out, in)
	closeErr := out.Close()
	if copyErr != nil {
		call.Host.Fail(diag.Runtime, "file-copy %q -> %q: %v", src.Str, dst.Str, copyErr)
		return nil, false
	}
	if closeErr != nil {
		call.Host.Fail(diag.Runtime, "file-copy %q -> %q: %v", src.Str, dst.Str, closeErr)
		return nil, false
	}
	return value.Bool(true), true
}

func fileDirname(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	return value.NewString(filepath.Dir(path.Str)), true
}

func fileBasename(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	return value.NewString(filepath.Base(path.Str)), true
}

func fileExtname(call *value.Call) (*value.Value, bool) {
	path, _ := call.Args.Get("path")
	return value.NewString(filepath.Ext(path.Str)), true
}
