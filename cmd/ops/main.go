package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lukechampine.com/blake3"

	"github.com/fletchernt/extinction-escape/internal/ops"
)

func usage() {
	fmt.Fprintf(os.Stderr, `extinction-escape-ops manages save data backups.

Usage:
  extinction-escape-ops backup  -data <dir> -out <archive.tar.gz>
  extinction-escape-ops restore -in <archive.tar.gz> -data <dir>
  extinction-escape-ops drill   -data <dir>

backup archives the save store directory.
restore unpacks an archive into a (possibly new) data directory.
drill does backup + restore into a temp dir and verifies the content digest.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "backup":
		err = runBackup(os.Args[2:])
	case "restore":
		err = runRestore(os.Args[2:])
	case "drill":
		err = runDrill(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runBackup(args []string) error {
	flags := flag.NewFlagSet("backup", flag.ExitOnError)
	data := flags.String("data", "data", "save store directory")
	out := flags.String("out", "", "archive path to write")
	_ = flags.Parse(args)
	if *out == "" {
		return fmt.Errorf("-out is required")
	}
	if err := ops.BackupDataDir(*data, *out); err != nil {
		return err
	}
	fmt.Printf("backed up %s -> %s\n", *data, *out)
	return nil
}

func runRestore(args []string) error {
	flags := flag.NewFlagSet("restore", flag.ExitOnError)
	in := flags.String("in", "", "archive path to read")
	data := flags.String("data", "data", "directory to restore into")
	_ = flags.Parse(args)
	if *in == "" {
		return fmt.Errorf("-in is required")
	}
	if err := ops.RestoreDataDir(*in, *data); err != nil {
		return err
	}
	fmt.Printf("restored %s -> %s\n", *in, *data)
	return nil
}

func runDrill(args []string) error {
	flags := flag.NewFlagSet("drill", flag.ExitOnError)
	data := flags.String("data", "data", "save store directory")
	_ = flags.Parse(args)

	tmp, err := os.MkdirTemp("", "extinction-escape-drill-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	archive := filepath.Join(tmp, "drill.tar.gz")
	restored := filepath.Join(tmp, "restored")

	if err := ops.BackupDataDir(*data, archive); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	if err := ops.RestoreDataDir(archive, restored); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	want, err := dirDigest(*data)
	if err != nil {
		return err
	}
	got, err := dirDigest(restored)
	if err != nil {
		return err
	}
	if want != got {
		return fmt.Errorf("digest mismatch: source=%s restored=%s", want, got)
	}
	fmt.Printf("drill ok, digest %s\n", want)
	return nil
}

// dirDigest hashes every regular file (relative path + content) so two
// directory trees can be compared without walking them side by side.
func dirDigest(dir string) (string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	sort.Strings(files)

	h := blake3.New(32, nil)
	for _, path := range files {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return "", err
		}
		io.WriteString(h, filepath.ToSlash(rel))
		io.WriteString(h, "\x00")
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", err
		}
		io.WriteString(h, "\x00")
	}
	sum := h.Sum(nil)
	return strings.ToLower(hex.EncodeToString(sum[:8])), nil
}
