package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/model"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command with args and returns its stdout
func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "ridesnap v"+Version+"\n", run(t, "version"))
}

func TestDemoAndInspect(t *testing.T) {
	dir := t.TempDir()

	out := run(t, "demo", "--data-dir", dir, "--file", "empresa.bin", "--trip-file", "pedidos.bin", "--metrics=false")
	assert.Contains(t, out, filepath.Join(dir, "empresa.bin"))

	// the company file holds the sample
	c, err := persist.ReadCompany(persist.NewBinaryPersistence(), filepath.Join(dir, "empresa.bin"))
	require.NoError(t, err)
	customer := c.Customers["Sofia123"]
	require.NotNil(t, customer)
	assert.Same(t, customer, c.ActiveTrips[customer].Customer())

	// the trip file holds a trip and its order
	records, err := persist.ReadFile(persist.NewBinaryPersistence(), filepath.Join(dir, "pedidos.bin"), 2)
	require.NoError(t, err)
	assert.IsType(t, &model.Trip{}, records[0])
	assert.IsType(t, &model.Order{}, records[1])

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	out = run(t, "inspect", "--data-dir", dir, "--file", "empresa.bin", "--records", "1", "--format", "json", "--trips=false", "--metrics=false")
	var rec struct {
		Type  string `json:"type"`
		Value struct {
			Customers []struct {
				Username string `json:"username"`
			} `json:"customers"`
		} `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "company", rec.Type)
	require.Len(t, rec.Value.Customers, 1)
	assert.Equal(t, "Sofia123", rec.Value.Customers[0].Username)

	// reading all records of the trip file stops at the end of the file
	out = run(t, "inspect", "--data-dir", dir, "--trip-file", "pedidos.bin", "--trips", "--records", "0", "--format", "yaml", "--metrics=false")
	dec := yaml.NewDecoder(bytes.NewBufferString(out))
	var types []string
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			break
		}
		types = append(types, doc["type"].(string))
	}
	assert.Equal(t, []string{"trip", "order"}, types)
}

func TestInspectMissingFile(t *testing.T) {
	dir := t.TempDir()
	out := run(t, "inspect", "--data-dir", dir, "--file", "nothing.bin", "--records", "1", "--format", "json", "--trips=false", "--metrics=false")
	assert.Contains(t, out, "no saved state")
}

func TestInspectCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.bin"), []byte("RIDESNAP\x99"), 0o644))

	RootCmd.SetOut(&bytes.Buffer{})
	RootCmd.SetErr(&bytes.Buffer{})
	RootCmd.SetArgs([]string{"inspect", "--data-dir", dir, "--file", "bad.bin", "--records", "1", "--format", "json", "--trips=false", "--metrics=false"})
	err := RootCmd.Execute()
	assert.ErrorIs(t, err, persist.ErrDecode)
}

func TestMetricsFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, persist.WriteFile(persist.NewBinaryPersistence(), filepath.Join(dir, "empty.bin"), company.New()))

	out := run(t, "inspect", "--data-dir", dir, "--file", "empty.bin", "--records", "1", "--format", "json", "--trips=false", "--metrics")
	assert.Contains(t, out, "ridesnap_records_read_total")
	run(t, "version", "--metrics=false")
}
