package build

import "errors"

var (
	ErrBuild               = errors.New("build failed")
	ErrDependencyInstall   = errors.New("dependency installation failed")
	ErrCopy                = errors.New("copy failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
