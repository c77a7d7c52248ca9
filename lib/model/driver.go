package model

import "fmt"

// DriverKind is the discriminator of the Driver variants
type DriverKind uint8

const (
	DriverKindTemporary DriverKind = iota + 1 // hired for a limited time
	DriverKindPermanent                       // permanent staff
)

func (k DriverKind) String() string {
	switch k {
	case DriverKindTemporary:
		return "Temporary"
	case DriverKindPermanent:
		return "Permanent"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Driver is implemented by every driver variant.
// Variants embed DriverInfo and report their own kind.
type Driver interface {
	Info() *DriverInfo
	Kind() DriverKind
}

// DriverInfo holds the fields shared by all driver variants.
// GrossPay and NetPay stay 0 until they are computed by the payroll.
type DriverInfo struct {
	ID       string `validate:"required"` // national ID
	Name     string `validate:"required"`
	GrossPay float64
	NetPay   float64
}

// Info returns the shared driver fields
func (d *DriverInfo) Info() *DriverInfo {
	return d
}

// SetPay stores the computed gross and net pay
func (d *DriverInfo) SetPay(gross, net float64) {
	d.GrossPay = gross
	d.NetPay = net
}

// TemporaryDriver is a driver hired for a limited time
type TemporaryDriver struct {
	DriverInfo
}

// NewTemporaryDriver creates a new temporary driver
func NewTemporaryDriver(id, name string) *TemporaryDriver {
	return &TemporaryDriver{DriverInfo{ID: id, Name: name}}
}

func (*TemporaryDriver) Kind() DriverKind { return DriverKindTemporary }

// PermanentDriver is a driver that belongs to the permanent staff
type PermanentDriver struct {
	DriverInfo
}

// NewPermanentDriver creates a new permanent driver
func NewPermanentDriver(id, name string) *PermanentDriver {
	return &PermanentDriver{DriverInfo{ID: id, Name: name}}
}

func (*PermanentDriver) Kind() DriverKind { return DriverKindPermanent }
