package persist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/google/uuid"
)

// --------------------------------------------------------------------------
// Scoped Helpers
// --------------------------------------------------------------------------

// WriteFile writes records to the file name using p.
// The output is closed on every path; a close error is joined to the result.
func WriteFile(p IPersistence, name string, records ...any) (err error) {
	if err := p.OpenOutput(name); err != nil {
		return err
	}
	defer func() {
		if closeErr := p.CloseOutput(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	for _, record := range records {
		if err := p.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile reads the first n records of the file name using p. If n <= 0
// all records up to the end of the file are read.
// The input is closed on every path. On error no records are returned.
func ReadFile(p IPersistence, name string, n int) (records []any, err error) {
	if err := p.OpenInput(name); err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := p.CloseInput(); closeErr != nil {
			err = errors.Join(err, closeErr)
			records = nil
		}
	}()

	records = make([]any, 0, max(n, 0))
	for n <= 0 || len(records) < n {
		obj, err := p.Read()
		if n <= 0 && errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, obj)
	}
	return records, nil
}

// ReadCompany reads the company stored as first record of the file name.
// If the file does not exist the error matches ErrNotFound.
func ReadCompany(p IPersistence, name string) (*company.Company, error) {
	if err := p.OpenInput(name); err != nil {
		return nil, err
	}
	c, err := ReadAs[*company.Company](p)
	if closeErr := p.CloseInput(); closeErr != nil {
		return nil, errors.Join(err, closeErr)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ReadAs reads the next record of p and asserts it to T.
// A record of another type is reported as a decode failure.
func ReadAs[T any](p IPersistence) (T, error) {
	var zero T
	obj, err := p.Read()
	if err != nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		msg := fmt.Sprintf("record is a %T, not a %s", obj, reflect.TypeFor[T]())
		return zero, newDecodeError("read", "", msg, 0, nil)
	}
	return v, nil
}

// SaveAtomic writes records to a temporary file next to name and renames it
// to name once everything is written, so name holds either the previous or
// the new content.
func SaveAtomic(p IPersistence, name string, records ...any) error {
	tmp := fmt.Sprintf("%s.%s.tmp", name, uuid.NewString())

	if err := WriteFile(p, tmp, records...); err != nil {
		removeTemp(tmp)
		return err
	}
	if err := os.Rename(tmp, name); err != nil {
		removeTemp(tmp)
		return newIOError("rename", name, err)
	}
	log.Debugf("saved %d record(s) to %s", len(records), name)
	return nil
}

func removeTemp(name string) {
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warningf("could not remove temporary file %s: %v", name, err)
	}
}
