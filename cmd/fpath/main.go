package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hhatto/fpath/internal/cli"
)

const (
	cmdName = "fpath"

	shortDesc = "POSIX path manipulation and canonicalization."
	longDesc  = `fpath manipulates POSIX paths lexically and resolves them against the
filesystem.

Lexical operations (normpath, join, split, ...) never touch the filesystem.
abspath and relpath consult only the working directory. realpath resolves
symbolic links component by component; with --strict it fails on missing
components and symlink loops instead of returning a best effort result.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
