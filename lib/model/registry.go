package model

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Variant Registry
// --------------------------------------------------------------------------

var (
	driverKinds  = xsync.NewMapOf[DriverKind, func() Driver]()
	vehicleKinds = xsync.NewMapOf[VehicleKind, func() Vehicle]()
)

func init() {
	_ = RegisterDriverKind(DriverKindTemporary, func() Driver { return &TemporaryDriver{} })
	_ = RegisterDriverKind(DriverKindPermanent, func() Driver { return &PermanentDriver{} })
	_ = RegisterVehicleKind(VehicleKindCar, func() Vehicle { return &Car{} })
	_ = RegisterVehicleKind(VehicleKindOther, func() Vehicle { return &Other{} })
}

// RegisterDriverKind registers the constructor of a blank driver of the given kind.
// The constructor must return a new instance whose Kind() equals kind.
// Registering the same kind twice returns an error and keeps the first constructor.
func RegisterDriverKind(kind DriverKind, blank func() Driver) error {
	if _, loaded := driverKinds.LoadOrStore(kind, blank); loaded {
		return fmt.Errorf("driver kind %s already registered", kind)
	}
	return nil
}

// RegisterVehicleKind registers the constructor of a blank vehicle of the given kind.
// The constructor must return a new instance whose Kind() equals kind.
// Registering the same kind twice returns an error and keeps the first constructor.
func RegisterVehicleKind(kind VehicleKind, blank func() Vehicle) error {
	if _, loaded := vehicleKinds.LoadOrStore(kind, blank); loaded {
		return fmt.Errorf("vehicle kind %s already registered", kind)
	}
	return nil
}

// BlankDriver returns a new zero driver of the given kind.
// The boolean is false if no variant is registered for kind.
func BlankDriver(kind DriverKind) (Driver, bool) {
	blank, ok := driverKinds.Load(kind)
	if !ok {
		return nil, false
	}
	return blank(), true
}

// BlankVehicle returns a new zero vehicle of the given kind.
// The boolean is false if no variant is registered for kind.
func BlankVehicle(kind VehicleKind) (Vehicle, bool) {
	blank, ok := vehicleKinds.Load(kind)
	if !ok {
		return nil, false
	}
	return blank(), true
}
