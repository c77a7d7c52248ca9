package persist

// IPersistence is the interface of all persistence implementations.
//
// Output and input are two independent channels: opening, using or closing one
// of them never affects the other.
type IPersistence interface {
	// OpenOutput creates (or truncates) the file name and makes it the current output.
	// An output that is still open is closed first.
	OpenOutput(name string) (err error)
	// Write appends one record holding obj to the current output.
	// obj may be a *company.Company, *model.Trip, *model.Order, *model.Customer,
	// model.Driver or model.Vehicle.
	Write(obj any) (err error)
	// CloseOutput flushes and closes the current output.
	// It does nothing if no output is open.
	CloseOutput() (err error)
	// OpenInput opens the file name and makes it the current input.
	// An input that is still open is closed first.
	// If the file does not exist the error matches ErrNotFound.
	OpenInput(name string) (err error)
	// Read returns the next record of the current input.
	// The caller knows what was written and type-asserts the result (see ReadAs).
	Read() (obj any, err error)
	// CloseInput closes the current input. It is always safe to call.
	CloseInput() (err error)
}
