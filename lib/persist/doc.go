// Package persist saves and restores the company aggregate (and standalone
// entities such as a single trip or order) to local binary files.
//
// The package focuses on:
//   - Preserving shared identity: an entity reachable from several places of
//     the object graph is written once and referenced afterwards, and is
//     restored as a single shared instance.
//   - Preserving runtime type: drivers and vehicles are written with an
//     explicit kind discriminator and restored as the same concrete variant.
//   - A small, typed error taxonomy so callers can branch on "no saved state
//     yet" (ErrNotFound) without string matching.
//
// Key Components:
//
//   - IPersistence: the channel oriented API (OpenOutput, Write, CloseOutput,
//     OpenInput, Read, CloseInput). Input and output are independent.
//
//   - binaryPersistence: the implementation returned by NewBinaryPersistence.
//     Each Write produces one self-contained record; reference ids are scoped
//     to that record.
//
//   - Error: the error type of every failure, with the codes ErrCIO,
//     ErrCNotFound, ErrCDecode, ErrCNotOpen and ErrCUnsupported. Use errors.Is
//     with the ErrIO, ErrNotFound, ErrDecode, ErrNotOpen and ErrUnsupported
//     sentinels. ErrNotFound is a subtype of ErrIO.
//
//   - Scoped helpers: WriteFile, ReadFile, ReadCompany and SaveAtomic open a
//     channel, do their work and release it on every path. ReadAs is a typed
//     Read.
//
// Stream Format:
//
//	"RIDESNAP" followed by records. Every object starts with a tag byte
//	(company, customer, vehicle, driver, order, trip, reference or nil) and a
//	reference id; vehicles and drivers carry a kind byte in front of their
//	fields. Map entries are written in ascending key order, so equal
//	companies produce equal files.
//
// Thread Safety:
//
//	An IPersistence instance is not safe for concurrent use. Use one instance
//	per goroutine and per file.
//
// Usage:
//
//	p := persist.NewBinaryPersistence()
//	if err := persist.WriteFile(p, "empresa.bin", c); err != nil {
//	    return err
//	}
//	c, err := persist.ReadCompany(p, "empresa.bin")
//	if errors.Is(err, persist.ErrNotFound) {
//	    c = company.New() // nothing saved yet
//	}
package persist
