package sysctl

import (
	"os"
	"path/filepath"
	"strings"
)

// Entry is a single setting produced by the config loader. Name is in
// canonical slash form ("net/ipv4/ip_forward"), Value is the raw trimmed
// value as it appeared in the source.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Writer abstracts the privileged kernel-tunable write so the applier can be
// tested without touching procfs.
type Writer interface {
	Write(name, value string) error
}

// FS writes tunables beneath Root, which defaults to /proc/sys. Tests point
// Root at a temporary directory.
type FS struct {
	Root string
}

// Write writes value followed by a newline to the tunable's procfs file.
// A single attempt, no retry. The file is opened without O_CREATE so a
// tunable absent from the running kernel surfaces as ENOENT.
func (f FS) Write(name, value string) error {
	root := f.Root
	if root == "" {
		root = Root
	}

	fd, err := os.OpenFile(filepath.Join(root, name), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer fd.Close()

	_, err = fd.WriteString(value + "\n")
	return err
}

// Read returns the current value of a tunable, trimmed of surrounding
// whitespace the way procfs pads it.
func (f FS) Read(name string) (string, error) {
	root := f.Root
	if root == "" {
		root = Root
	}

	b, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
