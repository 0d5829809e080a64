package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/recordlink/blobstore"
	"github.com/hupe1980/recordlink/model"
)

// Decode reads JSON-lines records from r. Blank lines are skipped.
func Decode(r io.Reader) ([]Record, error) {
	var (
		records []Record
		seen    = make(map[string]int)
		br      = bufio.NewReader(r)
	)
	for line := 1; ; line++ {
		raw, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if raw = bytes.TrimSpace(raw); len(raw) > 0 {
			var rec Record
			if jerr := json.Unmarshal(raw, &rec); jerr != nil {
				return nil, &LineError{Line: line, Err: jerr}
			}
			if rec.ID == "" {
				rec.ID = strconv.Itoa(len(records))
			}
			if prev, dup := seen[rec.ID]; dup {
				return nil, &LineError{Line: line, Err: fmt.Errorf("%w %q (first on line %d)", ErrDuplicateID, rec.ID, prev)}
			}
			seen[rec.ID] = line
			records = append(records, rec)
		}
		if err != nil {
			return records, nil
		}
	}
}

// Encode writes records as JSON lines.
func Encode(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the records stored under name.
func Load(ctx context.Context, store blobstore.BlobStore, name string) ([]Record, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = blob.Close() }()

	raw, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer func() { _ = raw.Close() }()

	r, err := NewReader(raw, CompressionFor(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	records, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return records, nil
}

// Save writes records under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, records []Record) error {
	return write(ctx, store, name, func(w io.Writer) error {
		return Encode(w, records)
	})
}

// ClusterLine is one output line of WriteClusters.
type ClusterLine struct {
	Cluster int      `json:"cluster"`
	Members []string `json:"members"`
}

// ClusterLines maps clusters of record indices to record ids.
func ClusterLines(clusters []model.Cluster, records []Record) []ClusterLine {
	out := make([]ClusterLine, len(clusters))
	for i, c := range clusters {
		members := make([]string, c.Len())
		for j, r := range c {
			members[j] = records[r].ID
		}
		out[i] = ClusterLine{Cluster: i, Members: members}
	}
	return out
}

// WriteClusters writes one ClusterLine per cluster under name.
func WriteClusters(ctx context.Context, store blobstore.BlobStore, name string, clusters []model.Cluster, records []Record) error {
	lines := ClusterLines(clusters, records)
	return write(ctx, store, name, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		for _, l := range lines {
			if err := enc.Encode(l); err != nil {
				return err
			}
		}
		return nil
	})
}

func write(ctx context.Context, store blobstore.BlobStore, name string, body func(io.Writer) error) error {
	blob, err := store.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	w, err := NewWriter(blob, CompressionFor(name))
	if err != nil {
		_ = blob.Close()
		return err
	}
	bw := bufio.NewWriter(w)

	if err := body(bw); err != nil {
		_ = blob.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		_ = blob.Close()
		return err
	}
	if err := w.Close(); err != nil {
		_ = blob.Close()
		return err
	}
	return blob.Close()
}
