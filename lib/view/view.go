package view

import (
	"errors"
	"fmt"
	"io"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/model"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Encode
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrUnsupportedType   = errors.New("no view for this type")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// --------------------------------------------------------------------------
// Views
// --------------------------------------------------------------------------

// Record is the view of one persisted record
type Record struct {
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

type Company struct {
	Customers      []Customer `json:"customers" yaml:"customers"`
	Vehicles       []Vehicle  `json:"vehicles" yaml:"vehicles"`
	Drivers        []Driver   `json:"drivers" yaml:"drivers"`
	IdleDrivers    []string   `json:"idleDrivers" yaml:"idleDrivers"`
	IdleVehicles   []string   `json:"idleVehicles" yaml:"idleVehicles"`
	Orders         []Order    `json:"orders" yaml:"orders"`
	ActiveTrips    []TripRef  `json:"activeTrips" yaml:"activeTrips"`
	CompletedTrips []TripRef  `json:"completedTrips" yaml:"completedTrips"`
}

type Customer struct {
	Username string `json:"username" yaml:"username"`
	RealName string `json:"realName,omitempty" yaml:"realName,omitempty"`
}

type Vehicle struct {
	Kind  string `json:"kind" yaml:"kind"`
	Plate string `json:"plate" yaml:"plate"`
	Seats int    `json:"seats" yaml:"seats"`
	Extra bool   `json:"extra" yaml:"extra"`
}

type Driver struct {
	Kind     string  `json:"kind" yaml:"kind"`
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	GrossPay float64 `json:"grossPay" yaml:"grossPay"`
	NetPay   float64 `json:"netPay" yaml:"netPay"`
}

type Order struct {
	Customer string `json:"customer" yaml:"customer"`
	Seats    int    `json:"seats" yaml:"seats"`
	Pets     bool   `json:"pets" yaml:"pets"`
	Luggage  bool   `json:"luggage" yaml:"luggage"`
	Distance int    `json:"distance" yaml:"distance"`
	Zone     string `json:"zone" yaml:"zone"`
}

// Trip is the view of a standalone trip
type Trip struct {
	Order   Order   `json:"order" yaml:"order"`
	Driver  Driver  `json:"driver" yaml:"driver"`
	Vehicle Vehicle `json:"vehicle" yaml:"vehicle"`
}

// TripRef is the view of a trip inside a company, whose driver and vehicle
// are listed in full elsewhere
type TripRef struct {
	Order   Order  `json:"order" yaml:"order"`
	Driver  string `json:"driver" yaml:"driver"`
	Vehicle string `json:"vehicle" yaml:"vehicle"`
}

// --------------------------------------------------------------------------
// Conversion
// --------------------------------------------------------------------------

// Of returns the view of a record
func Of(obj any) (Record, error) {
	switch o := obj.(type) {
	case *company.Company:
		return Record{Type: "company", Value: ofCompany(o)}, nil
	case *model.Trip:
		return Record{Type: "trip", Value: ofTrip(o)}, nil
	case *model.Order:
		return Record{Type: "order", Value: ofOrder(o)}, nil
	case *model.Customer:
		return Record{Type: "customer", Value: ofCustomer(o)}, nil
	case model.Driver:
		return Record{Type: "driver", Value: ofDriver(o)}, nil
	case model.Vehicle:
		return Record{Type: "vehicle", Value: ofVehicle(o)}, nil
	default:
		return Record{}, fmt.Errorf("%T: %w", obj, ErrUnsupportedType)
	}
}

func ofCompany(c *company.Company) Company {
	v := Company{
		Customers:      make([]Customer, 0, len(c.Customers)),
		Vehicles:       make([]Vehicle, 0, len(c.Vehicles)),
		Drivers:        make([]Driver, 0, len(c.Drivers)),
		IdleDrivers:    make([]string, 0, len(c.IdleDrivers)),
		IdleVehicles:   make([]string, 0, len(c.IdleVehicles)),
		Orders:         make([]Order, 0, len(c.Orders)),
		ActiveTrips:    make([]TripRef, 0, len(c.ActiveTrips)),
		CompletedTrips: make([]TripRef, 0, len(c.CompletedTrips)),
	}
	for _, username := range company.SortedKeys(c.Customers) {
		v.Customers = append(v.Customers, ofCustomer(c.Customers[username]))
	}
	for _, plate := range company.SortedKeys(c.Vehicles) {
		v.Vehicles = append(v.Vehicles, ofVehicle(c.Vehicles[plate]))
	}
	for _, id := range company.SortedKeys(c.Drivers) {
		v.Drivers = append(v.Drivers, ofDriver(c.Drivers[id]))
	}
	for _, d := range c.IdleDrivers {
		v.IdleDrivers = append(v.IdleDrivers, ofDriver(d).ID)
	}
	for _, vh := range c.IdleVehicles {
		v.IdleVehicles = append(v.IdleVehicles, ofVehicle(vh).Plate)
	}
	for _, customer := range company.SortedCustomers(c.Orders) {
		v.Orders = append(v.Orders, ofOrder(c.Orders[customer]))
	}
	for _, customer := range company.SortedCustomers(c.ActiveTrips) {
		v.ActiveTrips = append(v.ActiveTrips, ofTripRef(c.ActiveTrips[customer]))
	}
	for _, t := range c.CompletedTrips {
		v.CompletedTrips = append(v.CompletedTrips, ofTripRef(t))
	}
	return v
}

func ofCustomer(c *model.Customer) Customer {
	if c == nil {
		return Customer{}
	}
	return Customer{Username: c.Username, RealName: c.RealName}
}

func ofVehicle(v model.Vehicle) Vehicle {
	if v == nil {
		return Vehicle{}
	}
	info := v.Info()
	return Vehicle{Kind: v.Kind().String(), Plate: info.Plate, Seats: info.Seats, Extra: info.Extra}
}

func ofDriver(d model.Driver) Driver {
	if d == nil {
		return Driver{}
	}
	info := d.Info()
	return Driver{Kind: d.Kind().String(), ID: info.ID, Name: info.Name, GrossPay: info.GrossPay, NetPay: info.NetPay}
}

func ofOrder(o *model.Order) Order {
	if o == nil {
		return Order{}
	}
	v := Order{Seats: o.Seats, Pets: o.Pets, Luggage: o.Luggage, Distance: o.Distance, Zone: o.Zone}
	if o.Customer != nil {
		v.Customer = o.Customer.Username
	}
	return v
}

func ofTrip(t *model.Trip) Trip {
	if t == nil {
		return Trip{}
	}
	return Trip{Order: ofOrder(t.Order), Driver: ofDriver(t.Driver), Vehicle: ofVehicle(t.Vehicle)}
}

func ofTripRef(t *model.Trip) TripRef {
	if t == nil {
		return TripRef{}
	}
	ref := TripRef{Order: ofOrder(t.Order)}
	if t.Driver != nil {
		ref.Driver = t.Driver.Info().ID
	}
	if t.Vehicle != nil {
		ref.Vehicle = t.Vehicle.Info().Plate
	}
	return ref
}

// --------------------------------------------------------------------------
// Encoding
// --------------------------------------------------------------------------

// Encode writes v to w in the given format (FormatJSON or FormatYAML)
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		// explicit document start so consecutive records form a YAML stream
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}
