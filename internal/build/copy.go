package build

import (
	"archive/tar"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	"github.com/quayside/shipd/internal/fault"
)

// Copies a host file into the container's working directory and returns the
// digest of the bytes that were streamed.
//
// The file is wrapped in a single-entry tar stream and piped to the
// container's tar extraction, so the bytes land unmodified. The digest is
// computed from the same stream, making it a faithful checksum of what the
// image now contains.
func (p *pipeline) copyInput(ctx context.Context, hostPath string) (digest.Digest, error) {
	return streamFile(hostPath, func(r io.Reader) error {
		return p.ctr.CopyTo(ctx, r, p.recipe.Workdir)
	})
}

// Pipes a single-entry tar stream produced from hostPath into send and
// returns the digest of the file's bytes.
//
// When send fails before draining the stream, the read side is torn down so
// the producing goroutine unblocks; it has always exited by the time this
// function returns.
func streamFile(hostPath string, send func(io.Reader) error) (digest.Digest, error) {
	pr, pw := io.Pipe()

	var dig digest.Digest
	errc := make(chan error, 1)
	go func() {
		d, err := tarFile(pw, hostPath, filepath.Base(hostPath))
		dig = d
		pw.CloseWithError(err)
		errc <- err
	}()

	if err := send(pr); err != nil {
		pr.CloseWithError(err)
		<-errc
		return "", fault.Wrap(ErrCopy, err)
	}
	if err := <-errc; err != nil {
		return "", fault.Wrap(ErrCopy, err)
	}

	return dig, nil
}

// Writes a single-entry tar stream for the file at hostPath to w, naming
// the entry name. Returns the digest of the file's contents.
func tarFile(w io.Writer, hostPath, name string) (digest.Digest, error) {
	info, err := os.Stat(hostPath)
	if err != nil {
		return "", err
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return "", err
	}
	header.Name = name

	tw := tar.NewWriter(w)
	if err := tw.WriteHeader(header); err != nil {
		return "", err
	}

	f, err := os.Open(hostPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	digester := digest.Canonical.Digester()
	if _, err := io.Copy(tw, io.TeeReader(f, digester.Hash())); err != nil {
		return "", err
	}

	if err := tw.Close(); err != nil {
		return "", err
	}

	return digester.Digest(), nil
}
