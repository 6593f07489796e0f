package local

import (
	"github.com/jobforge/jobforge/store/local/model"
)

// ValidSpec is the type set a spec reader or writer can operate on.
type ValidSpec interface {
	*model.JobSpec
}

// SpecReader reads specs from a directory tree.
type SpecReader[S ValidSpec] interface {
	ReadAll(rootDirPath string) ([]S, error)
	ReadByName(rootDirPath, name string) (S, error)
}

// SpecWriter writes a spec into its directory.
type SpecWriter[S ValidSpec] interface {
	Write(dirPath string, spec S) error
}

// SpecReadWriter reads and writes specs.
type SpecReadWriter[S ValidSpec] interface {
	SpecReader[S]
	SpecWriter[S]
}
