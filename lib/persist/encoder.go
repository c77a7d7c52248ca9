package persist

import (
	"reflect"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/model"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist/internal"
)

// encoder writes one record. It assigns a reference id to every object the
// first time it is written; later occurrences of the same pointer are written
// as a reference to that id.
type encoder struct {
	w    *internal.Writer
	refs map[any]uint32
	next uint32
}

func newEncoder(w *internal.Writer) *encoder {
	return &encoder{
		w:    w,
		refs: make(map[any]uint32),
	}
}

// supported reports whether obj can be the root of a record
func supported(obj any) bool {
	switch obj.(type) {
	case *company.Company, *model.Trip, *model.Order, *model.Customer, model.Driver, model.Vehicle:
		return !isNil(obj)
	default:
		return false
	}
}

// isNil reports whether obj is nil or a typed nil pointer
func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// root writes a supported root object
func (e *encoder) root(obj any) {
	switch o := obj.(type) {
	case *company.Company:
		e.company(o)
	case *model.Trip:
		e.trip(o)
	case *model.Order:
		e.order(o)
	case *model.Customer:
		e.customer(o)
	case model.Driver:
		e.driver(o)
	case model.Vehicle:
		e.vehicle(o)
	}
}

// begin writes the header of obj and reports whether its payload must follow.
// Nil objects are written as TagNil, known objects as a reference.
func (e *encoder) begin(tag internal.Tag, obj any) bool {
	if isNil(obj) {
		e.w.Tag(internal.TagNil)
		return false
	}
	if id, ok := e.refs[obj]; ok {
		e.w.Tag(internal.TagRef)
		e.w.Uint32(id)
		return false
	}
	e.next++
	e.refs[obj] = e.next
	e.w.Tag(tag)
	e.w.Uint32(e.next)
	return true
}

func (e *encoder) company(c *company.Company) {
	if !e.begin(internal.TagCompany, c) {
		return
	}

	e.w.Count("customers", len(c.Customers))
	for _, username := range company.SortedKeys(c.Customers) {
		e.w.Text(username)
		e.customer(c.Customers[username])
	}

	e.w.Count("vehicles", len(c.Vehicles))
	for _, plate := range company.SortedKeys(c.Vehicles) {
		e.w.Text(plate)
		e.vehicle(c.Vehicles[plate])
	}

	e.w.Count("drivers", len(c.Drivers))
	for _, id := range company.SortedKeys(c.Drivers) {
		e.w.Text(id)
		e.driver(c.Drivers[id])
	}

	e.w.Count("idle drivers", len(c.IdleDrivers))
	for _, d := range c.IdleDrivers {
		e.driver(d)
	}

	e.w.Count("idle vehicles", len(c.IdleVehicles))
	for _, v := range c.IdleVehicles {
		e.vehicle(v)
	}

	e.w.Count("open orders", len(c.Orders))
	for _, customer := range company.SortedCustomers(c.Orders) {
		e.customer(customer)
		e.order(c.Orders[customer])
	}

	e.w.Count("active trips", len(c.ActiveTrips))
	for _, customer := range company.SortedCustomers(c.ActiveTrips) {
		e.customer(customer)
		e.trip(c.ActiveTrips[customer])
	}

	e.w.Count("completed trips", len(c.CompletedTrips))
	for _, t := range c.CompletedTrips {
		e.trip(t)
	}
}

func (e *encoder) customer(c *model.Customer) {
	if !e.begin(internal.TagCustomer, c) {
		return
	}
	e.w.Text(c.Username)
	e.w.Text(c.RealName)
	e.w.Text(c.Password)
}

func (e *encoder) vehicle(v model.Vehicle) {
	if !e.begin(internal.TagVehicle, v) {
		return
	}
	info := v.Info()
	e.w.Uint8(uint8(v.Kind()))
	e.w.Text(info.Plate)
	e.w.Count("vehicle seats", info.Seats)
	e.w.Bool(info.Extra)
}

func (e *encoder) driver(d model.Driver) {
	if !e.begin(internal.TagDriver, d) {
		return
	}
	info := d.Info()
	e.w.Uint8(uint8(d.Kind()))
	e.w.Text(info.ID)
	e.w.Text(info.Name)
	e.w.Float64(info.GrossPay)
	e.w.Float64(info.NetPay)
}

func (e *encoder) order(o *model.Order) {
	if !e.begin(internal.TagOrder, o) {
		return
	}
	e.customer(o.Customer)
	e.w.Count("order seats", o.Seats)
	e.w.Bool(o.Pets)
	e.w.Bool(o.Luggage)
	e.w.Int64(int64(o.Distance))
	e.w.Text(o.Zone)
}

func (e *encoder) trip(t *model.Trip) {
	if !e.begin(internal.TagTrip, t) {
		return
	}
	e.order(t.Order)
	e.driver(t.Driver)
	e.vehicle(t.Vehicle)
}
