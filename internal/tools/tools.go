//go:build tools

// Package tools records the module's build-time tool dependencies so
// `go mod tidy` keeps them in go.mod. None of these are imported by the
// algorithmic code; this file exists only so the lint/vet toolchain the
// module is built with stays pinned.
package tools

import (
	_ "github.com/gordonklaus/ineffassign"
	_ "golang.org/x/mod/modfile"
	_ "golang.org/x/sys/unix"
	_ "golang.org/x/tools/go/analysis"
	_ "golang.org/x/xerrors"
)
