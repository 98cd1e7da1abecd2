package pipeline

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"faultline.dev/pkg/faultline/pkg/codepath"
	"faultline.dev/pkg/faultline/pkg/probe"
)

// Failure modes the archive pipeline can have injected.
var (
	ErrPayloadWrite     = errors.New("archive: payload write failed")
	ErrChecksumRead     = errors.New("archive: checksum read failed")
	ErrChecksumMismatch = errors.New("archive: checksum mismatch")
	ErrRename           = errors.New("archive: rename failed")
	ErrVerify           = errors.New("archive: verify failed")
)

func init() {
	register(Pipeline{
		Name:        "archive",
		Description: "write a payload, checksum it and move it into an archive",
		Args:        archiveArgs,
	})
}

// archiveArgs stages a file through write, checksum, rename and verify,
// with a probe on every external operation. The checksum probe carries
// two candidates: the read can fail, or the digest can disagree.
func archiveArgs(s *probe.State) codepath.Args[string] {
	var workspace string

	return codepath.Args[string]{
		Setup: func() {
			workspace, _ = os.MkdirTemp("", "faultline-archive-*")
		},
		Path: func() (string, error) {
			return runArchive(s, workspace)
		},
		Teardown: func() {
			if workspace != "" {
				_ = os.RemoveAll(workspace)
			}
		},
	}
}

func runArchive(s *probe.State, workspace string) (string, error) {
	if workspace == "" {
		return "", errors.New("archive: no workspace")
	}

	payload := []byte("faultline archive payload\n")
	source := filepath.Join(workspace, "payload.dat")

	err := probe.VisitErr(s, "write payload",
		os.WriteFile(source, payload, 0o600),
		ErrPayloadWrite)
	if err != nil {
		return "", err
	}

	content, readErr := os.ReadFile(source)

	content, err = probe.Visit(s, "checksum payload", content, readErr,
		ErrChecksumRead, ErrChecksumMismatch)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(content)
	archived := filepath.Join(workspace, fmt.Sprintf("payload-%x.dat", sum[:4]))

	err = probe.VisitErr(s, "move into archive",
		os.Rename(source, archived),
		ErrRename)
	if err != nil {
		return "", err
	}

	_, statErr := os.Stat(archived)

	err = probe.VisitErr(s, "verify archive entry", statErr, ErrVerify)
	if err != nil {
		return "", err
	}

	return archived, nil
}
