package company

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/model"
)

var (
	ErrDuplicate     = errors.New("entity already registered")
	ErrUnknownEntity = errors.New("entity not registered")
	ErrOrderPending  = errors.New("customer already has an open order or active trip")
	ErrUnavailable   = errors.New("driver or vehicle is not idle")
	ErrNoActiveTrip  = errors.New("customer has no active trip")
)

// Company is the aggregate of the ride-dispatch business
type Company struct {
	Customers      map[string]*model.Customer // by username
	Vehicles       map[string]model.Vehicle   // by plate
	Drivers        map[string]model.Driver    // by national ID
	IdleDrivers    []model.Driver
	IdleVehicles   []model.Vehicle
	Orders         map[*model.Customer]*model.Order // open orders
	ActiveTrips    map[*model.Customer]*model.Trip
	CompletedTrips []*model.Trip
}

// New creates an empty company with all collections initialized
func New() *Company {
	return &Company{
		Customers:      make(map[string]*model.Customer),
		Vehicles:       make(map[string]model.Vehicle),
		Drivers:        make(map[string]model.Driver),
		IdleDrivers:    []model.Driver{},
		IdleVehicles:   []model.Vehicle{},
		Orders:         make(map[*model.Customer]*model.Order),
		ActiveTrips:    make(map[*model.Customer]*model.Trip),
		CompletedTrips: []*model.Trip{},
	}
}

// IsEmpty reports whether every collection of the company is empty
func (c *Company) IsEmpty() bool {
	return len(c.Customers) == 0 && len(c.Vehicles) == 0 && len(c.Drivers) == 0 &&
		len(c.IdleDrivers) == 0 && len(c.IdleVehicles) == 0 &&
		len(c.Orders) == 0 && len(c.ActiveTrips) == 0 && len(c.CompletedTrips) == 0
}

// --------------------------------------------------------------------------
// Registration
// --------------------------------------------------------------------------

// AddCustomer registers a customer
func (c *Company) AddCustomer(customer *model.Customer) error {
	if err := model.Validate(customer); err != nil {
		return err
	}
	if _, ok := c.Customers[customer.Username]; ok {
		return fmt.Errorf("customer %s: %w", customer.Username, ErrDuplicate)
	}
	c.Customers[customer.Username] = customer
	return nil
}

// AddDriver registers a driver and marks it idle
func (c *Company) AddDriver(driver model.Driver) error {
	if err := model.Validate(driver); err != nil {
		return err
	}
	id := driver.Info().ID
	if _, ok := c.Drivers[id]; ok {
		return fmt.Errorf("driver %s: %w", id, ErrDuplicate)
	}
	c.Drivers[id] = driver
	c.IdleDrivers = append(c.IdleDrivers, driver)
	return nil
}

// AddVehicle registers a vehicle and marks it idle
func (c *Company) AddVehicle(vehicle model.Vehicle) error {
	if err := model.Validate(vehicle); err != nil {
		return err
	}
	plate := vehicle.Info().Plate
	if _, ok := c.Vehicles[plate]; ok {
		return fmt.Errorf("vehicle %s: %w", plate, ErrDuplicate)
	}
	c.Vehicles[plate] = vehicle
	c.IdleVehicles = append(c.IdleVehicles, vehicle)
	return nil
}

// --------------------------------------------------------------------------
// Orders and Trips
// --------------------------------------------------------------------------

// PlaceOrder records an open order. The customer of the order must be the
// registered instance and may not have another open order or active trip.
func (c *Company) PlaceOrder(order *model.Order) error {
	if err := model.Validate(order); err != nil {
		return err
	}
	if registered, ok := c.Customers[order.Customer.Username]; !ok || registered != order.Customer {
		return fmt.Errorf("customer %s: %w", order.Customer.Username, ErrUnknownEntity)
	}
	if c.hasPending(order.Customer) {
		return fmt.Errorf("customer %s: %w", order.Customer.Username, ErrOrderPending)
	}
	c.Orders[order.Customer] = order
	return nil
}

// StartTrip binds an open order to an idle driver and an idle vehicle.
// The order leaves the open orders, the trip becomes active.
func (c *Company) StartTrip(order *model.Order, driver model.Driver, vehicle model.Vehicle) (*model.Trip, error) {
	if order == nil || c.Orders[order.Customer] != order {
		return nil, fmt.Errorf("order: %w", ErrUnknownEntity)
	}
	di := slices.IndexFunc(c.IdleDrivers, func(d model.Driver) bool { return d == driver })
	vi := slices.IndexFunc(c.IdleVehicles, func(v model.Vehicle) bool { return v == vehicle })
	if di < 0 || vi < 0 {
		return nil, ErrUnavailable
	}

	trip := model.NewTrip(order, driver, vehicle)
	c.IdleDrivers = slices.Delete(c.IdleDrivers, di, di+1)
	c.IdleVehicles = slices.Delete(c.IdleVehicles, vi, vi+1)
	delete(c.Orders, order.Customer)
	c.ActiveTrips[order.Customer] = trip
	return trip, nil
}

// FinishTrip completes the active trip of a customer and releases its driver and vehicle
func (c *Company) FinishTrip(customer *model.Customer) (*model.Trip, error) {
	trip, ok := c.ActiveTrips[customer]
	if !ok {
		return nil, ErrNoActiveTrip
	}
	delete(c.ActiveTrips, customer)
	c.CompletedTrips = append(c.CompletedTrips, trip)
	c.IdleDrivers = append(c.IdleDrivers, trip.Driver)
	c.IdleVehicles = append(c.IdleVehicles, trip.Vehicle)
	return trip, nil
}

func (c *Company) hasPending(customer *model.Customer) bool {
	_, ordered := c.Orders[customer]
	_, travelling := c.ActiveTrips[customer]
	return ordered || travelling
}

// --------------------------------------------------------------------------
// Ordered Views
// --------------------------------------------------------------------------

// SortedCustomers returns the customers of a customer keyed map ordered by
// username, then real name and password. A nil key sorts first.
// It is used wherever a deterministic iteration order is required.
func SortedCustomers[V any](m map[*model.Customer]V) []*model.Customer {
	return slices.SortedFunc(maps.Keys(m), CompareCustomers)
}

// CompareCustomers orders customers by their fields, nil first
func CompareCustomers(a, b *model.Customer) int {
	switch {
	case a == nil || b == nil:
		return cmp.Compare(boolRank(a != nil), boolRank(b != nil))
	case a.Username != b.Username:
		return cmp.Compare(a.Username, b.Username)
	case a.RealName != b.RealName:
		return cmp.Compare(a.RealName, b.RealName)
	default:
		return cmp.Compare(a.Password, b.Password)
	}
}

// SortedKeys returns the keys of a string keyed map in ascending order
func SortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
