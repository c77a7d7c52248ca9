package persist

import (
	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/model"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist/internal"
)

// decoder reads one record. Every materialized object is registered under
// its reference id before its children are read, so a reference always
// resolves to the instance created first.
type decoder struct {
	r    *internal.Reader
	objs map[uint32]any
}

func newDecoder(r *internal.Reader) *decoder {
	return &decoder{
		r:    r,
		objs: make(map[uint32]any),
	}
}

// record reads a complete record. A clean end of stream is returned as io.EOF.
func (d *decoder) record() (any, error) {
	tag, err := d.r.RecordTag()
	if err != nil {
		return nil, err
	}
	if tag == internal.TagNil || tag == internal.TagRef {
		return nil, &internal.FormatError{What: "record tag", Value: uint64(tag)}
	}
	return d.object(tag)
}

func (d *decoder) object(tag internal.Tag) (any, error) {
	switch tag {
	case internal.TagNil:
		return nil, nil
	case internal.TagRef:
		id, err := d.r.Uint32()
		if err != nil {
			return nil, err
		}
		obj, ok := d.objs[id]
		if !ok {
			return nil, &internal.FormatError{What: "reference id", Value: uint64(id)}
		}
		return obj, nil
	case internal.TagCompany:
		return d.company()
	case internal.TagCustomer:
		return d.customer()
	case internal.TagVehicle:
		return d.vehicle()
	case internal.TagDriver:
		return d.driver()
	case internal.TagOrder:
		return d.order()
	case internal.TagTrip:
		return d.trip()
	default:
		return nil, &internal.FormatError{What: "record tag", Value: uint64(tag)}
	}
}

// slot reads the object in the current slot, which must be nil, a reference
// to a T or a new object with the given tag. Any other tag is rejected before
// it is decoded, so nesting is bounded by the record layout.
func slot[T any](d *decoder, want internal.Tag) (T, error) {
	var zero T
	tag, err := d.r.Tag()
	if err != nil {
		return zero, err
	}
	if tag != want && tag != internal.TagNil && tag != internal.TagRef {
		return zero, &internal.FormatError{What: tag.String() + " in " + want.String() + " slot", Value: uint64(tag)}
	}

	obj, err := d.object(tag)
	if err != nil || obj == nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		return zero, &internal.FormatError{What: "reference in " + want.String() + " slot", Value: uint64(tag)}
	}
	return v, nil
}

// id reads a fresh reference id
func (d *decoder) id() (uint32, error) {
	id, err := d.r.Uint32()
	if err != nil {
		return 0, err
	}
	if _, dup := d.objs[id]; dup || id == 0 {
		return 0, &internal.FormatError{What: "duplicate reference id", Value: uint64(id)}
	}
	return id, nil
}

// --------------------------------------------------------------------------
// Objects
// --------------------------------------------------------------------------

func (d *decoder) company() (*company.Company, error) {
	id, err := d.id()
	if err != nil {
		return nil, err
	}
	c := company.New()
	d.objs[id] = c

	// customers
	n, err := d.r.Uint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		key, err := d.r.Text()
		if err != nil {
			return nil, err
		}
		if c.Customers[key], err = slot[*model.Customer](d, internal.TagCustomer); err != nil {
			return nil, err
		}
	}

	// vehicles
	if n, err = d.r.Uint32(); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		key, err := d.r.Text()
		if err != nil {
			return nil, err
		}
		if c.Vehicles[key], err = slot[model.Vehicle](d, internal.TagVehicle); err != nil {
			return nil, err
		}
	}

	// drivers
	if n, err = d.r.Uint32(); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		key, err := d.r.Text()
		if err != nil {
			return nil, err
		}
		if c.Drivers[key], err = slot[model.Driver](d, internal.TagDriver); err != nil {
			return nil, err
		}
	}

	// idle drivers
	if n, err = d.r.Uint32(); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		driver, err := slot[model.Driver](d, internal.TagDriver)
		if err != nil {
			return nil, err
		}
		c.IdleDrivers = append(c.IdleDrivers, driver)
	}

	// idle vehicles
	if n, err = d.r.Uint32(); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		vehicle, err := slot[model.Vehicle](d, internal.TagVehicle)
		if err != nil {
			return nil, err
		}
		c.IdleVehicles = append(c.IdleVehicles, vehicle)
	}

	// open orders
	if n, err = d.r.Uint32(); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		customer, err := slot[*model.Customer](d, internal.TagCustomer)
		if err != nil {
			return nil, err
		}
		if c.Orders[customer], err = slot[*model.Order](d, internal.TagOrder); err != nil {
			return nil, err
		}
	}

	// active trips
	if n, err = d.r.Uint32(); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		customer, err := slot[*model.Customer](d, internal.TagCustomer)
		if err != nil {
			return nil, err
		}
		if c.ActiveTrips[customer], err = slot[*model.Trip](d, internal.TagTrip); err != nil {
			return nil, err
		}
	}

	// completed trips
	if n, err = d.r.Uint32(); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		trip, err := slot[*model.Trip](d, internal.TagTrip)
		if err != nil {
			return nil, err
		}
		c.CompletedTrips = append(c.CompletedTrips, trip)
	}

	return c, nil
}

func (d *decoder) customer() (*model.Customer, error) {
	id, err := d.id()
	if err != nil {
		return nil, err
	}
	c := &model.Customer{}
	d.objs[id] = c

	if c.Username, err = d.r.Text(); err != nil {
		return nil, err
	}
	if c.RealName, err = d.r.Text(); err != nil {
		return nil, err
	}
	if c.Password, err = d.r.Text(); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *decoder) vehicle() (model.Vehicle, error) {
	id, err := d.id()
	if err != nil {
		return nil, err
	}
	kind, err := d.r.Uint8()
	if err != nil {
		return nil, err
	}
	v, ok := model.BlankVehicle(model.VehicleKind(kind))
	if !ok {
		return nil, &internal.FormatError{What: "vehicle kind", Value: uint64(kind)}
	}
	d.objs[id] = v

	info := v.Info()
	if info.Plate, err = d.r.Text(); err != nil {
		return nil, err
	}
	seats, err := d.r.Uint32()
	if err != nil {
		return nil, err
	}
	info.Seats = int(seats)
	if info.Extra, err = d.r.Bool(); err != nil {
		return nil, err
	}
	return v, nil
}

func (d *decoder) driver() (model.Driver, error) {
	id, err := d.id()
	if err != nil {
		return nil, err
	}
	kind, err := d.r.Uint8()
	if err != nil {
		return nil, err
	}
	drv, ok := model.BlankDriver(model.DriverKind(kind))
	if !ok {
		return nil, &internal.FormatError{What: "driver kind", Value: uint64(kind)}
	}
	d.objs[id] = drv

	info := drv.Info()
	if info.ID, err = d.r.Text(); err != nil {
		return nil, err
	}
	if info.Name, err = d.r.Text(); err != nil {
		return nil, err
	}
	if info.GrossPay, err = d.r.Float64(); err != nil {
		return nil, err
	}
	if info.NetPay, err = d.r.Float64(); err != nil {
		return nil, err
	}
	return drv, nil
}

func (d *decoder) order() (*model.Order, error) {
	id, err := d.id()
	if err != nil {
		return nil, err
	}
	o := &model.Order{}
	d.objs[id] = o

	if o.Customer, err = slot[*model.Customer](d, internal.TagCustomer); err != nil {
		return nil, err
	}
	seats, err := d.r.Uint32()
	if err != nil {
		return nil, err
	}
	o.Seats = int(seats)
	if o.Pets, err = d.r.Bool(); err != nil {
		return nil, err
	}
	if o.Luggage, err = d.r.Bool(); err != nil {
		return nil, err
	}
	distance, err := d.r.Int64()
	if err != nil {
		return nil, err
	}
	o.Distance = int(distance)
	if o.Zone, err = d.r.Text(); err != nil {
		return nil, err
	}
	return o, nil
}

func (d *decoder) trip() (*model.Trip, error) {
	id, err := d.id()
	if err != nil {
		return nil, err
	}
	t := &model.Trip{}
	d.objs[id] = t

	if t.Order, err = slot[*model.Order](d, internal.TagOrder); err != nil {
		return nil, err
	}
	if t.Driver, err = slot[model.Driver](d, internal.TagDriver); err != nil {
		return nil, err
	}
	if t.Vehicle, err = slot[model.Vehicle](d, internal.TagVehicle); err != nil {
		return nil, err
	}
	return t, nil
}
