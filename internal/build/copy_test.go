package build

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
)

func TestTarFile(t *testing.T) {
	content := []byte("import requests\nprint('hello')\n\x00\x01binary bytes\xff")
	hostPath := filepath.Join(t.TempDir(), "bot.py")
	if err := os.WriteFile(hostPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	dig, err := tarFile(&buf, hostPath, "bot.py")
	if err != nil {
		t.Fatalf("tarFile: %v", err)
	}

	// The recorded digest must match an independent digest of the source.
	if want := digest.FromBytes(content); dig != want {
		t.Fatalf("digest = %s, want %s", dig, want)
	}

	// The archive must contain exactly one entry with the original bytes.
	tr := tar.NewReader(&buf)
	header, err := tr.Next()
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	if header.Name != "bot.py" {
		t.Errorf("entry name = %q, want bot.py", header.Name)
	}
	if header.Size != int64(len(content)) {
		t.Errorf("entry size = %d, want %d", header.Size, len(content))
	}

	extracted, err := io.ReadAll(tr)
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	if !bytes.Equal(extracted, content) {
		t.Fatal("extracted bytes differ from source")
	}

	if _, err := tr.Next(); err != io.EOF {
		t.Fatalf("expected single entry, got err = %v", err)
	}
}

func TestTarFileMissingSource(t *testing.T) {
	var buf bytes.Buffer
	if _, err := tarFile(&buf, filepath.Join(t.TempDir(), "absent.py"), "absent.py"); err == nil {
		t.Fatal("expected error for missing source file")
	}
}

func TestStreamFile(t *testing.T) {
	content := []byte("requests==2.31.0\nschedule==1.2.0\n")
	hostPath := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(hostPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	var received bytes.Buffer
	dig, err := streamFile(hostPath, func(r io.Reader) error {
		_, err := io.Copy(&received, r)
		return err
	})
	if err != nil {
		t.Fatalf("streamFile: %v", err)
	}

	if want := digest.FromBytes(content); dig != want {
		t.Errorf("digest = %s, want %s", dig, want)
	}

	tr := tar.NewReader(&received)
	if _, err := tr.Next(); err != nil {
		t.Fatalf("received stream is not a tar archive: %v", err)
	}
}

func TestStreamFileSendFailure(t *testing.T) {
	hostPath := filepath.Join(t.TempDir(), "bot.py")
	if err := os.WriteFile(hostPath, []byte("print('hi')\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// A send that fails without reading must not strand the producing
	// goroutine on the pipe; streamFile only returns after it exits.
	sendErr := errors.New("extraction failed")
	_, err := streamFile(hostPath, func(io.Reader) error {
		return sendErr
	})

	if !errors.Is(err, ErrCopy) {
		t.Fatalf("error = %v, want ErrCopy", err)
	}
	if !errors.Is(err, sendErr) {
		t.Fatalf("error = %v, does not carry the send failure", err)
	}
}
