// Package cleanup implements the post-upload soft delete: on consent the
// original file is renamed into the OS temp directory under its MD5 digest,
// keeping the bytes recoverable rather than erasing them.
package cleanup

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Choice is the user's answer to the deletion prompt.
type Choice int

const (
	Yes Choice = iota
	No
	Invalid
)

// Ask writes the deletion prompt to w and reads a single line from r. The
// answer is trimmed and matched case-insensitively; there is no re-prompt,
// anything unrecognized (including EOF) is Invalid.
func Ask(r io.Reader, w io.Writer) Choice {
	fmt.Fprintln(w, "Would you like to delete the file? (Y/N)")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return Invalid
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "yes", "y":
		return Yes
	case "no", "n":
		return No
	default:
		return Invalid
	}
}

// SoftDelete renames path into tempDir as {md5-hex}.tmp, where the digest
// is computed over the file's current content. On any failure the original
// file is left in place. Returns the destination path.
func SoftDelete(path string, tempDir string) (string, error) {
	digest, err := hashFile(path)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(tempDir, digest+".tmp")
	if err := os.Rename(path, dest); err != nil {
		return "", err
	}

	return dest, nil
}

// hashFile streams the file through MD5 in fixed-size chunks rather than
// loading it whole.
func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
