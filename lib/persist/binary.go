package persist

import (
	"bufio"
	"bytes"
	"errors"
	"os"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist/internal"
	"github.com/lni/dragonboat/v4/logger"
)

const bufferSize = 64 * 1024

var log = logger.GetLogger("persist")

// NewBinaryPersistence creates a new persistence that reads and writes the
// ridesnap binary format
func NewBinaryPersistence() IPersistence {
	return &binaryPersistence{}
}

// binaryPersistence implements IPersistence on top of local files
type binaryPersistence struct {
	// output channel
	outName string
	outFile *os.File
	out     *bufio.Writer

	// input channel
	inName string
	inFile *os.File
	in     *bufio.Reader

	// a record is encoded here completely before it reaches the output
	record bytes.Buffer
}

// --------------------------------------------------------------------------
// Interface Methods (docu see persist.IPersistence)
// --------------------------------------------------------------------------

func (p *binaryPersistence) OpenOutput(name string) error {
	if err := p.CloseOutput(); err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return newIOError("open output", name, err)
	}

	bw := bufio.NewWriterSize(f, bufferSize)
	if _, err := bw.WriteString(internal.Magic); err != nil {
		_ = f.Close()
		return newIOError("open output", name, err)
	}

	p.outName, p.outFile, p.out = name, f, bw
	log.Debugf("opened output %s", name)
	return nil
}

func (p *binaryPersistence) Write(obj any) error {
	if p.out == nil {
		return newNotOpenError("write", "output")
	}
	if !supported(obj) {
		return newUnsupportedError(obj)
	}

	p.record.Reset()
	w := internal.NewWriter(&p.record)
	newEncoder(w).root(obj)
	if err := w.Err(); err != nil {
		var re *internal.RangeError
		if errors.As(err, &re) {
			return newUnsupportedValueError(obj, re)
		}
		return newIOError("write", p.outName, err)
	}

	if _, err := p.out.Write(p.record.Bytes()); err != nil {
		return newIOError("write", p.outName, err)
	}

	recordsWritten.Inc()
	bytesWritten.Add(int(w.Written()))
	log.Debugf("wrote %T record (%d bytes) to %s", obj, w.Written(), p.outName)
	return nil
}

func (p *binaryPersistence) CloseOutput() error {
	if p.outFile == nil {
		return nil
	}
	name := p.outName
	flushErr := p.out.Flush()
	closeErr := p.outFile.Close()
	p.outName, p.outFile, p.out = "", nil, nil

	if err := errors.Join(flushErr, closeErr); err != nil {
		return newIOError("close output", name, err)
	}
	log.Debugf("closed output %s", name)
	return nil
}

func (p *binaryPersistence) OpenInput(name string) error {
	if err := p.CloseInput(); err != nil {
		return err
	}

	f, err := os.Open(name)
	if err != nil {
		return newIOError("open input", name, err)
	}

	br := bufio.NewReaderSize(f, bufferSize)
	if err := internal.NewReader(br).Magic(); err != nil {
		_ = f.Close()
		return readError("open input", name, err)
	}

	p.inName, p.inFile, p.in = name, f, br
	log.Debugf("opened input %s", name)
	return nil
}

func (p *binaryPersistence) Read() (any, error) {
	if p.in == nil {
		return nil, newNotOpenError("read", "input")
	}

	obj, err := newDecoder(internal.NewReader(p.in)).record()
	if err != nil {
		return nil, readError("read", p.inName, err)
	}

	recordsRead.Inc()
	log.Debugf("read %T record from %s", obj, p.inName)
	return obj, nil
}

func (p *binaryPersistence) CloseInput() error {
	if p.inFile == nil {
		return nil
	}
	name := p.inName
	err := p.inFile.Close()
	p.inName, p.inFile, p.in = "", nil, nil

	if err != nil {
		return newIOError("close input", name, err)
	}
	log.Debugf("closed input %s", name)
	return nil
}
