// Package integrity verifies the saveit executable against a stored
// checksum. On first run the checksum is recorded next to the executable;
// later runs abort on a mismatch.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	saveiterrors "saveit.dev/saveit/internal/errors"
)

// StoreName is the file that holds the baseline checksum, placed in the
// executable's directory.
const StoreName = ".saveit_expected_hash"

// Status reports the outcome of a verification pass
type Status struct {
	Checksum string
	Stored   bool // true when this run recorded the baseline
}

// ComputeChecksum computes the SHA-256 of the given file
func ComputeChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Check verifies exePath against the checksum stored at storePath,
// recording the baseline on first run. A mismatch returns IntegrityError.
func Check(exePath, storePath string) (Status, error) {
	actual, err := ComputeChecksum(exePath)
	if err != nil {
		return Status{}, err
	}

	data, err := os.ReadFile(storePath)
	if os.IsNotExist(err) {
		if err := os.WriteFile(storePath, []byte(actual), 0600); err != nil {
			return Status{}, fmt.Errorf("failed to store checksum: %w", err)
		}
		return Status{Checksum: actual, Stored: true}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("failed to read checksum store: %w", err)
	}

	expected := strings.TrimSpace(string(data))
	if actual != expected {
		return Status{}, saveiterrors.NewIntegrityError(expected, actual)
	}
	return Status{Checksum: actual}, nil
}

// VerifySelf checks the running executable. Failure to locate the
// executable or to use the store is tolerated (a wrapper must not brick
// itself); an explicit checksum mismatch is not.
func VerifySelf() (Status, error) {
	exePath, err := os.Executable()
	if err != nil {
		return Status{}, nil
	}

	status, err := Check(exePath, filepath.Join(filepath.Dir(exePath), StoreName))
	if err != nil {
		var intErr *saveiterrors.IntegrityError
		if errors.As(err, &intErr) {
			return Status{}, err
		}
		return Status{}, nil
	}
	return status, nil
}
