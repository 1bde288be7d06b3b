package fasta

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

type closer struct {
	ctx context.Context
	f   file.File
	gz  *gzip.Reader
}

// Close implements io.Closer.
func (c *closer) Close() error {
	var err error
	if c.gz != nil {
		err = c.gz.Close()
	}
	if cerr := c.f.Close(c.ctx); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Open returns a Scanner over the FASTA file at path, which may be any path
// grailbio/base/file understands.  Gzipped files (per fileio.DetermineType)
// are decompressed on the fly.  The caller must Close the returned closer.
func Open(ctx context.Context, path string) (*Scanner, io.Closer, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, errors.E(err, "fasta.Open", path)
	}
	c := &closer{ctx: ctx, f: f}
	r := io.Reader(f.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if c.gz, err = gzip.NewReader(r); err != nil {
			_ = f.Close(ctx)
			return nil, nil, errors.E(err, "fasta.Open: bad gzip header", path)
		}
		r = c.gz
	}
	return NewScanner(r), c, nil
}
