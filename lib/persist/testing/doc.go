// Package testing provides standardised tests and benchmarks for
// implementations of the persist.IPersistence interface.
//
// The package contains:
//   - testing: A conformance suite covering round trips of the company
//     aggregate, shared identity, variant fidelity, the channel state machine
//     and the error taxonomy
//   - benchmark: Write and read throughput for the sample company and for
//     larger generated companies
//
// Example usage:
//
//	factory := func() persist.IPersistence {
//		return persist.NewBinaryPersistence()
//	}
//
//	// Running the standard test suite
//	ptesting.RunPersistenceTests(t, "Binary", factory)
//
//	// Running performance benchmarks
//	ptesting.RunPersistenceBenchmarks(b, "Binary", factory)
package testing
