package fasta_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/align/encoding/fasta"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
)

var fastaData = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + "\n" + ">seq2 A viral sequence\r\n" + "ACGT\r\n" + "ACGT\r\n" + ">empty\n"

func readAll(t *testing.T, s *fasta.Scanner) []fasta.Record {
	var recs []fasta.Record
	for s.Scan() {
		recs = append(recs, s.Record())
	}
	assert.NoError(t, s.Err())
	return recs
}

func TestScan(t *testing.T) {
	recs := readAll(t, fasta.NewScanner(strings.NewReader(fastaData)))
	assert.EQ(t, len(recs), 3)
	expect.EQ(t, recs[0].Name, "seq1")
	expect.EQ(t, string(recs[0].Seq), "ACGTACGTACGT")
	expect.EQ(t, recs[1].Name, "seq2")
	expect.EQ(t, string(recs[1].Seq), "ACGTACGT")
	expect.EQ(t, recs[2].Name, "empty")
	expect.EQ(t, len(recs[2].Seq), 0)
}

func TestScanEmpty(t *testing.T) {
	recs := readAll(t, fasta.NewScanner(strings.NewReader("")))
	expect.EQ(t, len(recs), 0)
}

func TestScanMalformed(t *testing.T) {
	s := fasta.NewScanner(strings.NewReader("ACGT\n>seq1\nACGT\n"))
	expect.False(t, s.Scan())
	expect.HasSubstr(t, s.Err().Error(), "line 1")
	expect.False(t, s.Scan())
}

func TestOpen(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "fasta")
	defer cleanup()
	ctx := context.Background()

	plain := filepath.Join(dir, "plain.fa")
	assert.NoError(t, os.WriteFile(plain, []byte(fastaData), 0600))

	gz := filepath.Join(dir, "compressed.fa.gz")
	f, err := os.Create(gz)
	assert.NoError(t, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(fastaData))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, f.Close())

	for _, path := range []string{plain, gz} {
		s, c, err := fasta.Open(ctx, path)
		assert.NoError(t, err)
		recs := readAll(t, s)
		expect.NoError(t, c.Close())
		expect.EQ(t, len(recs), 3)
		expect.EQ(t, string(recs[0].Seq), "ACGTACGTACGT")
	}

	_, _, err = fasta.Open(ctx, filepath.Join(dir, "missing.fa"))
	expect.NotNil(t, err)
}
