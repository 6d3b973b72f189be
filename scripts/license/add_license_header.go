// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// add_license_header.go: add or check license headers in project files.
// Usage: go run ./scripts/license -dir . [--check]

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

//go:embed license_header.txt
var licenseText string

// ignored path fragments; generated files keep their own header.
var ignored = []string{"/_examples/", "_mocks.go"}

func main() {
	checkOnly := flag.Bool("check", false,
		"Check mode: only verify headers, do not modify files")
	targetDir := flag.String("dir", "",
		"Target directory to start processing files from. This flag is required to run.")
	flag.Parse()

	if *targetDir == "" {
		log.Fatal("Please provide a directory to look for files, use -dir\n")
	}
	if _, err := os.Stat(*targetDir); os.IsNotExist(err) {
		log.Fatalf("Invalid target directory: '%s'\n", *targetDir)
	}

	header := commentedHeader()
	failed := false
	err := filepath.Walk(*targetDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !relevant(path) {
			return err
		}
		ok, err := processFile(path, header, *checkOnly)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("missing or incorrect license header: %s\n", path)
			failed = true
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error processing files: %v\n", err)
	}
	if failed && *checkOnly {
		os.Exit(1)
	}
}

// relevant selects the files carrying the header: Go sources and module
// files outside ignored locations.
func relevant(path string) bool {
	for _, fragment := range ignored {
		if strings.Contains(path, fragment) {
			return false
		}
	}
	return strings.HasSuffix(path, ".go") || filepath.Base(path) == "go.mod"
}

// processFile verifies the header of the given file and, unless running
// in check mode, prepends it where missing. It reports whether the file
// is (now) correct.
func processFile(path, header string, checkOnly bool) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %v", path, err)
	}
	if strings.HasPrefix(string(content), "// Code generated") {
		return true, nil
	}
	if strings.HasPrefix(string(content), header) {
		return true, nil
	}
	if checkOnly {
		return false, nil
	}
	return true, os.WriteFile(path, []byte(header+"\n"+string(content)), fileMode(path))
}

func fileMode(path string) os.FileMode {
	stat, err := os.Stat(path)
	if err != nil {
		return 0644
	}
	return stat.Mode()
}

// commentedHeader renders foundation text as a line-comment block.
func commentedHeader() string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(licenseText, "\n"), "\n") {
		if line == "" {
			sb.WriteString("//\n")
		} else {
			sb.WriteString("// " + line + "\n")
		}
	}
	return sb.String()
}
