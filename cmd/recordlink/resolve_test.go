package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recordlink/blobstore"
	"github.com/hupe1980/recordlink/dataset"
)

func writeRecords(t *testing.T, dir, name string) string {
	t.Helper()
	records := []dataset.Record{
		{ID: "p1", Text: "eiffel tower city", Entities: map[string]int{"paris": 2}, Label: "paris"},
		{ID: "p2", Text: "city of light eiffel", Entities: map[string]int{"paris": 2}, Label: "paris"},
		{ID: "t1", Text: "lone star state", Entities: map[string]int{"texas": 2}, Label: "texas"},
		{ID: "t2", Text: "austin lone star", Entities: map[string]int{"texas": 2}, Label: "texas"},
		{ID: "m1", Text: "red planet", Entities: map[string]int{"mars": 1}, Label: "mars"},
	}
	require.NoError(t, dataset.Save(context.Background(), blobstore.NewLocalStore(dir), name, records))
	return filepath.Join(dir, name)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestResolveCmd_Stdout(t *testing.T) {
	input := writeRecords(t, t.TempDir(), "records.jsonl")

	for _, blocking := range []string{"none", "canopies", "lego"} {
		t.Run(blocking, func(t *testing.T) {
			stdout, stderr, err := execute(t, "resolve", input, "--blocking", blocking, "--log-level", "error")
			require.NoError(t, err)

			var got [][]string
			dec := json.NewDecoder(strings.NewReader(stdout))
			for dec.More() {
				var line dataset.ClusterLine
				require.NoError(t, dec.Decode(&line))
				got = append(got, line.Members)
			}
			assert.Equal(t, [][]string{{"p1", "p2"}, {"t1", "t2"}, {"m1"}}, got)
			assert.Contains(t, stderr, "f1=1.0000")
		})
	}
}

func TestResolveCmd_OutputAndMetrics(t *testing.T) {
	dir := t.TempDir()
	input := writeRecords(t, dir, "records.jsonl.zst")
	output := filepath.Join(dir, "out", "clusters.jsonl.lz4")
	metricsFile := filepath.Join(dir, "recordlink.prom")

	config := filepath.Join(dir, "recordlink.yaml")
	require.NoError(t, os.WriteFile(config, []byte("blocking: canopies\nlog:\n  level: error\n"), 0o600))

	stdout, _, err := execute(t, "resolve", input,
		"--config", config,
		"--output", output,
		"--metrics-file", metricsFile,
		"--no-eval",
	)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	ctx := context.Background()
	store := blobstore.NewLocalStore(filepath.Dir(output))
	blob, err := store.Open(ctx, filepath.Base(output))
	require.NoError(t, err)
	defer blob.Close()
	assert.Positive(t, blob.Size())

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "recordlink_clusters 3")
	assert.Contains(t, string(prom), "recordlink_canopy_members_count 3")
}

func TestResolveCmd_Errors(t *testing.T) {
	input := writeRecords(t, t.TempDir(), "records.jsonl")

	tests := []struct {
		name string
		args []string
	}{
		{"missing arg", []string{"resolve"}},
		{"missing file", []string{"resolve", filepath.Join(t.TempDir(), "nope.jsonl")}},
		{"bad blocking", []string{"resolve", input, "--blocking", "sorted"}},
		{"bad log level", []string{"resolve", input, "--log-level", "loud"}},
		{"bad scheme", []string{"resolve", "ftp://bucket/records.jsonl"}},
		{"bad s3 location", []string{"resolve", "s3://bucket"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "recordlink dev\n", stdout)
}
