package model

import "fmt"

// VehicleKind is the discriminator of the Vehicle variants
type VehicleKind uint8

const (
	VehicleKindCar   VehicleKind = iota + 1 // passenger car
	VehicleKindOther                        // any other kind (motorbike, van, ...)
)

func (k VehicleKind) String() string {
	switch k {
	case VehicleKindCar:
		return "Car"
	case VehicleKindOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Vehicle is implemented by every vehicle variant.
// Variants embed VehicleInfo and report their own kind.
type Vehicle interface {
	Info() *VehicleInfo
	Kind() VehicleKind
}

// VehicleInfo holds the fields shared by all vehicle variants
type VehicleInfo struct {
	Plate string `validate:"required"`
	Seats int    `validate:"min=1"`
	// Extra is the variant specific feature flag: pet friendly for a car,
	// luggage rack for other kinds.
	Extra bool
}

// Info returns the shared vehicle fields
func (v *VehicleInfo) Info() *VehicleInfo {
	return v
}

// Car is a passenger car
type Car struct {
	VehicleInfo
}

// NewCar creates a new car
func NewCar(plate string, seats int, petFriendly bool) *Car {
	return &Car{VehicleInfo{Plate: plate, Seats: seats, Extra: petFriendly}}
}

func (*Car) Kind() VehicleKind { return VehicleKindCar }

// PetFriendly reports whether pets are allowed in the car
func (c *Car) PetFriendly() bool { return c.Extra }

// Other is any vehicle that is not a car
type Other struct {
	VehicleInfo
}

// NewOther creates a new vehicle of the other kind
func NewOther(plate string, seats int, extra bool) *Other {
	return &Other{VehicleInfo{Plate: plate, Seats: seats, Extra: extra}}
}

func (*Other) Kind() VehicleKind { return VehicleKindOther }
