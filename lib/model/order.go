package model

// Zones an order can be placed in
const (
	ZoneStandard  = "ZONA_STANDARD"
	ZoneUnpaved   = "ZONA_SIN_ASFALTAR"
	ZoneDangerous = "ZONA_PELIGROSA"
)

// Order is a ride request of a customer
type Order struct {
	Customer *Customer `validate:"required"`
	Seats    int       `validate:"min=1"`
	Pets     bool
	Luggage  bool
	Distance int    `validate:"min=0"` // in km
	Zone     string `validate:"oneof=ZONA_STANDARD ZONA_SIN_ASFALTAR ZONA_PELIGROSA"`
}

// NewOrder creates a new order for the given customer
func NewOrder(customer *Customer, seats int, pets, luggage bool, distance int, zone string) *Order {
	return &Order{
		Customer: customer,
		Seats:    seats,
		Pets:     pets,
		Luggage:  luggage,
		Distance: distance,
		Zone:     zone,
	}
}

// Trip binds an order to the driver and the vehicle serving it
type Trip struct {
	Order   *Order  `validate:"required"`
	Driver  Driver  `validate:"required"`
	Vehicle Vehicle `validate:"required"`
}

// NewTrip creates a new trip
func NewTrip(order *Order, driver Driver, vehicle Vehicle) *Trip {
	return &Trip{
		Order:   order,
		Driver:  driver,
		Vehicle: vehicle,
	}
}

// Customer returns the customer of the trip's order (nil if the trip has no order)
func (t *Trip) Customer() *Customer {
	if t.Order == nil {
		return nil
	}
	return t.Order.Customer
}
