package persist

import "github.com/VictoriaMetrics/metrics"

// Counters of all persistence instances of the process.
// They are exported in Prometheus format via metrics.WritePrometheus.
var (
	recordsWritten = metrics.GetOrCreateCounter("ridesnap_records_written_total")
	recordsRead    = metrics.GetOrCreateCounter("ridesnap_records_read_total")
	bytesWritten   = metrics.GetOrCreateCounter("ridesnap_bytes_written_total")
	decodeFailures = metrics.GetOrCreateCounter("ridesnap_decode_failures_total")
	ioFailures     = metrics.GetOrCreateCounter("ridesnap_io_failures_total")
)
