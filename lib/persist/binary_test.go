package persist_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist"
	ptesting "github.com/SofiaIPalladino/2024-grupo-7/lib/persist/testing"
	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factory() persist.IPersistence {
	return persist.NewBinaryPersistence()
}

func TestBinaryPersistence(t *testing.T) {
	ptesting.RunPersistenceTests(t, "Binary", factory)
}

func BenchmarkBinaryPersistence(b *testing.B) {
	ptesting.RunPersistenceBenchmarks(b, "Binary", factory)
}

func TestErrorIs(t *testing.T) {
	notFound := &persist.Error{Code: persist.ErrCNotFound, Op: "open input", Name: "x.bin", Err: os.ErrNotExist}

	assert.ErrorIs(t, notFound, persist.ErrNotFound)
	assert.ErrorIs(t, notFound, persist.ErrIO)
	assert.ErrorIs(t, notFound, os.ErrNotExist)
	assert.NotErrorIs(t, notFound, persist.ErrDecode)

	ioErr := &persist.Error{Code: persist.ErrCIO, Err: io.ErrUnexpectedEOF}
	assert.ErrorIs(t, ioErr, persist.ErrIO)
	assert.NotErrorIs(t, ioErr, persist.ErrNotFound)

	wrapped := errors.Join(errors.New("other"), notFound)
	var pErr *persist.Error
	require.ErrorAs(t, wrapped, &pErr)
	assert.Equal(t, persist.ErrCNotFound, pErr.Code)
}

func TestErrorMessage(t *testing.T) {
	err := &persist.Error{Code: persist.ErrCNotFound, Op: "open input", Name: "x.bin", Err: os.ErrNotExist}
	assert.Equal(t, "persist open input x.bin: NotFound: file does not exist", err.Error())

	err = &persist.Error{Code: persist.ErrCDecode, Op: "read", Msg: "invalid vehicle kind: 9", Value: 9}
	assert.Equal(t, "persist read: DecodeFailure: invalid vehicle kind: 9", err.Error())

	assert.Equal(t, "Unknown(42)", persist.ErrCode(42).String())
}

func TestMetrics(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "empresa.bin")
	c, _ := company.NewSample()
	p := factory()

	before := metrics.GetOrCreateCounter("ridesnap_records_written_total").Get()
	beforeRead := metrics.GetOrCreateCounter("ridesnap_records_read_total").Get()
	beforeIO := metrics.GetOrCreateCounter("ridesnap_io_failures_total").Get()

	require.NoError(t, persist.WriteFile(p, name, c, c))
	_, err := persist.ReadFile(p, name, 2)
	require.NoError(t, err)
	_, err = persist.ReadCompany(p, filepath.Join(dir, "missing.bin"))
	require.ErrorIs(t, err, persist.ErrNotFound)

	assert.Equal(t, before+2, metrics.GetOrCreateCounter("ridesnap_records_written_total").Get())
	assert.Equal(t, beforeRead+2, metrics.GetOrCreateCounter("ridesnap_records_read_total").Get())
	assert.Equal(t, beforeIO+1, metrics.GetOrCreateCounter("ridesnap_io_failures_total").Get())

	var sb strings.Builder
	metrics.WritePrometheus(&sb, false)
	assert.Contains(t, sb.String(), "ridesnap_bytes_written_total")
}
