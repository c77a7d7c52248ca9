package testing

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/model"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PersistenceFactory is a function that creates a new instance of an IPersistence implementation
type PersistenceFactory func() persist.IPersistence

// RunPersistenceTests runs a comprehensive test suite for an IPersistence implementation.
func RunPersistenceTests(t *testing.T, name string, factory PersistenceFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("RoundTrip", func(t *testing.T) {
			testRoundTrip(t, factory())
		})

		t.Run("IdentitySharing", func(t *testing.T) {
			testIdentitySharing(t, factory())
		})

		t.Run("VariantFidelity", func(t *testing.T) {
			testVariantFidelity(t, factory())
		})

		t.Run("EmptyCompany", func(t *testing.T) {
			testEmptyCompany(t, factory())
		})

		t.Run("MissingSource", func(t *testing.T) {
			testMissingSource(t, factory())
		})

		t.Run("NumericFidelity", func(t *testing.T) {
			testNumericFidelity(t, factory())
		})

		t.Run("Scenario", func(t *testing.T) {
			testScenario(t, factory)
		})

		t.Run("MultipleRecords", func(t *testing.T) {
			testMultipleRecords(t, factory())
		})

		t.Run("ChannelState", func(t *testing.T) {
			testChannelState(t, factory())
		})

		t.Run("Unsupported", func(t *testing.T) {
			testUnsupported(t, factory())
		})

		t.Run("RejectedRecords", func(t *testing.T) {
			testRejectedRecords(t, factory())
		})

		t.Run("NilEntries", func(t *testing.T) {
			testNilEntries(t, factory())
		})

		t.Run("DecodeFailures", func(t *testing.T) {
			testDecodeFailures(t, factory())
		})

		t.Run("Truncated", func(t *testing.T) {
			testTruncated(t, factory())
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory())
		})

		t.Run("Deterministic", func(t *testing.T) {
			testDeterministic(t, factory())
		})

		t.Run("Helpers", func(t *testing.T) {
			testHelpers(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// roundTrip writes c to a fresh file and reads it back with p
func roundTrip(t *testing.T, p persist.IPersistence, c *company.Company) *company.Company {
	t.Helper()
	name := path(t, "empresa.bin")
	require.NoError(t, persist.WriteFile(p, name, c))

	got, err := persist.ReadCompany(p, name)
	require.NoError(t, err)
	require.NotNil(t, got)
	return got
}

// requireCode checks that err is a *persist.Error with the given code
func requireCode(t *testing.T, err error, code persist.ErrCode) *persist.Error {
	t.Helper()
	var pErr *persist.Error
	require.ErrorAs(t, err, &pErr)
	require.Equal(t, code, pErr.Code, "unexpected error: %v", err)
	return pErr
}

func assertSameDriver(t *testing.T, want, got model.Driver) {
	t.Helper()
	assert.Equal(t, want.Kind(), got.Kind())
	assert.Equal(t, *want.Info(), *got.Info())
}

func assertSameVehicle(t *testing.T, want, got model.Vehicle) {
	t.Helper()
	assert.Equal(t, want.Kind(), got.Kind())
	assert.Equal(t, *want.Info(), *got.Info())
}

func assertSameOrder(t *testing.T, want, got *model.Order) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, *want.Customer, *got.Customer)
	assert.Equal(t, want.Seats, got.Seats)
	assert.Equal(t, want.Pets, got.Pets)
	assert.Equal(t, want.Luggage, got.Luggage)
	assert.Equal(t, want.Distance, got.Distance)
	assert.Equal(t, want.Zone, got.Zone)
}

func assertSameTrip(t *testing.T, want, got *model.Trip) {
	t.Helper()
	require.NotNil(t, got)
	assertSameOrder(t, want.Order, got.Order)
	assertSameDriver(t, want.Driver, got.Driver)
	assertSameVehicle(t, want.Vehicle, got.Vehicle)
}

// customerOf returns the customer with the given username of a customer keyed map
func customerOf[V any](m map[*model.Customer]V, username string) (*model.Customer, V) {
	for k, v := range m {
		if k != nil && k.Username == username {
			return k, v
		}
	}
	var zero V
	return nil, zero
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testRoundTrip(t *testing.T, p persist.IPersistence) {
	want := newFleet(t)
	got := roundTrip(t, p, want)

	require.ElementsMatch(t, company.SortedKeys(want.Customers), company.SortedKeys(got.Customers))
	for username, customer := range want.Customers {
		assert.Equal(t, *customer, *got.Customers[username])
	}

	require.ElementsMatch(t, company.SortedKeys(want.Vehicles), company.SortedKeys(got.Vehicles))
	for plate, vehicle := range want.Vehicles {
		assertSameVehicle(t, vehicle, got.Vehicles[plate])
	}

	require.ElementsMatch(t, company.SortedKeys(want.Drivers), company.SortedKeys(got.Drivers))
	for id, driver := range want.Drivers {
		assertSameDriver(t, driver, got.Drivers[id])
	}

	require.Len(t, got.IdleDrivers, len(want.IdleDrivers))
	for i := range want.IdleDrivers {
		assertSameDriver(t, want.IdleDrivers[i], got.IdleDrivers[i])
	}

	require.Len(t, got.IdleVehicles, len(want.IdleVehicles))
	for i := range want.IdleVehicles {
		assertSameVehicle(t, want.IdleVehicles[i], got.IdleVehicles[i])
	}

	require.Len(t, got.Orders, len(want.Orders))
	for customer, order := range want.Orders {
		_, gotOrder := customerOf(got.Orders, customer.Username)
		assertSameOrder(t, order, gotOrder)
	}

	require.Len(t, got.ActiveTrips, len(want.ActiveTrips))
	for customer, trip := range want.ActiveTrips {
		_, gotTrip := customerOf(got.ActiveTrips, customer.Username)
		assertSameTrip(t, trip, gotTrip)
	}

	require.Len(t, got.CompletedTrips, len(want.CompletedTrips))
	for i := range want.CompletedTrips {
		assertSameTrip(t, want.CompletedTrips[i], got.CompletedTrips[i])
	}
}

func testIdentitySharing(t *testing.T, p persist.IPersistence) {
	got := roundTrip(t, p, newFleet(t))

	// customers referenced by orders and trips are the instances of the customer map
	for customer, order := range got.Orders {
		assert.Same(t, got.Customers[customer.Username], customer)
		assert.Same(t, customer, order.Customer)
	}
	for customer, trip := range got.ActiveTrips {
		assert.Same(t, got.Customers[customer.Username], customer)
		assert.Same(t, customer, trip.Customer())
	}

	// drivers and vehicles are shared between the maps, the idle lists and the trips
	for _, driver := range got.IdleDrivers {
		assert.Same(t, got.Drivers[driver.Info().ID], driver)
	}
	for _, vehicle := range got.IdleVehicles {
		assert.Same(t, got.Vehicles[vehicle.Info().Plate], vehicle)
	}
	for _, trip := range got.CompletedTrips {
		assert.Same(t, got.Customers[trip.Customer().Username], trip.Customer())
		assert.Same(t, got.Drivers[trip.Driver.Info().ID], trip.Driver)
		assert.Same(t, got.Vehicles[trip.Vehicle.Info().Plate], trip.Vehicle)
	}

	// equal values stay distinct instances
	assert.NotSame(t, got.Drivers["30222333"], got.Drivers["40333444"])
}

func testVariantFidelity(t *testing.T, p persist.IPersistence) {
	got := roundTrip(t, p, newFleet(t))

	assert.IsType(t, &model.TemporaryDriver{}, got.Drivers["20111222"])
	assert.IsType(t, &model.PermanentDriver{}, got.Drivers["30222333"])
	assert.IsType(t, &model.PermanentDriver{}, got.Drivers["40333444"])

	car, ok := got.Vehicles["AAA111"].(*model.Car)
	require.True(t, ok, "expected *model.Car, got %T", got.Vehicles["AAA111"])
	assert.True(t, car.PetFriendly())
	assert.IsType(t, &model.Other{}, got.Vehicles["BBB222"])
	assert.IsType(t, &model.Other{}, got.Vehicles["CCC333"])
}

func testEmptyCompany(t *testing.T, p persist.IPersistence) {
	got := roundTrip(t, p, company.New())

	assert.True(t, got.IsEmpty())
	// collections are usable, not nil
	assert.NotNil(t, got.Customers)
	assert.NotNil(t, got.Orders)
	assert.NotNil(t, got.ActiveTrips)
	require.NoError(t, got.AddCustomer(model.NewCustomer("new", "pw", "New")))
}

func testMissingSource(t *testing.T, p persist.IPersistence) {
	name := path(t, "does-not-exist.bin")

	err := p.OpenInput(name)
	require.Error(t, err)
	assert.ErrorIs(t, err, persist.ErrNotFound)
	assert.ErrorIs(t, err, persist.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)

	obj, err := p.Read()
	assert.Nil(t, obj)
	assert.ErrorIs(t, err, persist.ErrNotOpen)

	c, err := persist.ReadCompany(p, name)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, persist.ErrNotFound)

	require.NoError(t, p.CloseInput())
}

func testNumericFidelity(t *testing.T, p persist.IPersistence) {
	driver := model.NewPermanentDriver("11111111", "Nora")
	driver.SetPay(1234.5678, 987.6543)

	name := path(t, "chofer.bin")
	require.NoError(t, persist.WriteFile(p, name, driver))
	records, err := persist.ReadFile(p, name, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got, ok := records[0].(model.Driver)
	require.True(t, ok)
	assert.InDelta(t, 1234.5678, got.Info().GrossPay, 0.001)
	assert.InDelta(t, 987.6543, got.Info().NetPay, 0.001)

	// also inside a company
	c := company.New()
	require.NoError(t, c.AddDriver(driver))
	gotC := roundTrip(t, p, c)
	assert.InDelta(t, 1234.5678, gotC.Drivers["11111111"].Info().GrossPay, 0.001)
	assert.InDelta(t, 987.6543, gotC.Drivers["11111111"].Info().NetPay, 0.001)
}

func testScenario(t *testing.T, factory PersistenceFactory) {
	dir := t.TempDir()
	companyFile := filepath.Join(dir, "empresa.bin")
	tripFile := filepath.Join(dir, "pedidos.bin")

	c, trip := company.NewSample()

	// write with one instance ...
	out := factory()
	require.NoError(t, out.OpenOutput(companyFile))
	require.NoError(t, out.Write(c))
	require.NoError(t, out.CloseOutput())
	require.NoError(t, persist.WriteFile(out, tripFile, trip, trip.Order))

	// ... read with another
	in := factory()
	require.NoError(t, in.OpenInput(companyFile))
	got, err := persist.ReadAs[*company.Company](in)
	require.NoError(t, err)
	require.NoError(t, in.CloseInput())

	customer := got.Customers["Sofia123"]
	require.NotNil(t, customer)
	assert.Equal(t, "123456", customer.Password)
	assert.Equal(t, "Sofia", customer.RealName)

	driver := got.Drivers["87654321"]
	require.IsType(t, &model.TemporaryDriver{}, driver)
	assert.Equal(t, "Carlos P", driver.Info().Name)

	car := got.Vehicles["ABC123"]
	require.IsType(t, &model.Car{}, car)
	assert.Equal(t, 4, car.Info().Seats)
	assert.True(t, car.Info().Extra)

	require.Len(t, got.IdleDrivers, 1)
	assert.Same(t, driver, got.IdleDrivers[0])
	require.Len(t, got.IdleVehicles, 1)
	assert.Same(t, car, got.IdleVehicles[0])

	order := got.Orders[customer]
	require.NotNil(t, order)
	assert.Same(t, customer, order.Customer)
	assert.Equal(t, 3, order.Seats)
	assert.True(t, order.Pets)
	assert.False(t, order.Luggage)
	assert.Equal(t, 10, order.Distance)
	assert.Equal(t, model.ZoneDangerous, order.Zone)

	active := got.ActiveTrips[customer]
	require.NotNil(t, active)
	require.Len(t, got.CompletedTrips, 1)
	assert.Same(t, active, got.CompletedTrips[0])
	for _, tr := range []*model.Trip{active, got.CompletedTrips[0]} {
		assert.Same(t, driver, tr.Driver)
		assert.Same(t, car, tr.Vehicle)
		assert.Same(t, customer, tr.Customer())
		assert.Same(t, order, tr.Order)
	}

	// second file: a trip and its order as standalone records
	records, err := persist.ReadFile(in, tripFile, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	gotTrip, ok := records[0].(*model.Trip)
	require.True(t, ok, "expected *model.Trip, got %T", records[0])
	assertSameTrip(t, trip, gotTrip)
	assert.Equal(t, "Sofia123", gotTrip.Customer().Username)

	gotOrder, ok := records[1].(*model.Order)
	require.True(t, ok, "expected *model.Order, got %T", records[1])
	assertSameOrder(t, trip.Order, gotOrder)
	// reference ids do not reach across records
	assert.NotSame(t, gotTrip.Order, gotOrder)
}

func testMultipleRecords(t *testing.T, p persist.IPersistence) {
	c, trip := company.NewSample()
	customer := trip.Customer()
	name := path(t, "mixed.bin")

	require.NoError(t, persist.WriteFile(p, name, c, trip, customer, trip.Driver, trip.Vehicle, company.New()))

	require.NoError(t, p.OpenInput(name))
	defer p.CloseInput()

	gotC, err := persist.ReadAs[*company.Company](p)
	require.NoError(t, err)
	assert.Len(t, gotC.Customers, 1)

	gotTrip, err := persist.ReadAs[*model.Trip](p)
	require.NoError(t, err)
	assertSameTrip(t, trip, gotTrip)
	assert.NotSame(t, gotC.ActiveTrips[gotC.Customers["Sofia123"]], gotTrip)

	gotCustomer, err := persist.ReadAs[*model.Customer](p)
	require.NoError(t, err)
	assert.Equal(t, *customer, *gotCustomer)

	gotDriver, err := persist.ReadAs[model.Driver](p)
	require.NoError(t, err)
	assertSameDriver(t, trip.Driver, gotDriver)

	gotVehicle, err := persist.ReadAs[model.Vehicle](p)
	require.NoError(t, err)
	assertSameVehicle(t, trip.Vehicle, gotVehicle)

	empty, err := persist.ReadAs[*company.Company](p)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	// end of stream
	obj, err := p.Read()
	assert.Nil(t, obj)
	requireCode(t, err, persist.ErrCIO)
	assert.ErrorIs(t, err, io.EOF)
}

func testChannelState(t *testing.T, p persist.IPersistence) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")

	// nothing open
	requireCode(t, p.Write(company.New()), persist.ErrCNotOpen)
	_, err := p.Read()
	requireCode(t, err, persist.ErrCNotOpen)
	require.NoError(t, p.CloseOutput())
	require.NoError(t, p.CloseInput())

	// write after close fails
	require.NoError(t, persist.WriteFile(p, a, company.New()))
	requireCode(t, p.Write(company.New()), persist.ErrCNotOpen)
	require.NoError(t, p.CloseOutput())

	// input and output are independent
	require.NoError(t, p.OpenInput(a))
	require.NoError(t, p.OpenOutput(b))
	_, trip := company.NewSample()
	require.NoError(t, p.Write(trip))
	got, err := persist.ReadAs[*company.Company](p)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	require.NoError(t, p.CloseInput())
	_, err = p.Read()
	requireCode(t, err, persist.ErrCNotOpen)
	require.NoError(t, p.Write(trip.Order))
	require.NoError(t, p.CloseOutput())

	// reopening replaces the current channel
	require.NoError(t, p.OpenInput(a))
	require.NoError(t, p.OpenInput(b))
	gotTrip, err := persist.ReadAs[*model.Trip](p)
	require.NoError(t, err)
	assertSameTrip(t, trip, gotTrip)
	gotOrder, err := persist.ReadAs[*model.Order](p)
	require.NoError(t, err)
	assertSameOrder(t, trip.Order, gotOrder)
	require.NoError(t, p.CloseInput())

	// output into a missing directory
	err = p.OpenOutput(filepath.Join(dir, "missing", "c.bin"))
	assert.ErrorIs(t, err, persist.ErrIO)
	requireCode(t, p.Write(trip), persist.ErrCNotOpen)
}

func testUnsupported(t *testing.T, p persist.IPersistence) {
	name := path(t, "unsupported.bin")
	require.NoError(t, p.OpenOutput(name))

	for _, obj := range []any{
		nil,
		"empresa",
		42,
		company.Company{},
		(*company.Company)(nil),
		(*model.Order)(nil),
		(*model.Car)(nil),
		[]*model.Customer{},
	} {
		err := p.Write(obj)
		requireCode(t, err, persist.ErrCUnsupported)
		assert.ErrorIs(t, err, persist.ErrUnsupported)
	}

	// the channel stays usable and nothing was written
	c, _ := company.NewSample()
	require.NoError(t, p.Write(c))
	require.NoError(t, p.CloseOutput())

	got, err := persist.ReadCompany(p, name)
	require.NoError(t, err)
	assert.Len(t, got.Customers, 1)
}

func testRejectedRecords(t *testing.T, p persist.IPersistence) {
	name := path(t, "rejected.bin")
	require.NoError(t, p.OpenOutput(name))

	customer := model.NewCustomer("ana", "pw", "Ana")
	for _, obj := range []any{
		model.NewOther("NEG001", -1, false),
		model.NewOrder(customer, 8589934594, false, false, 1, model.ZoneStandard),
		model.NewCustomer(strings.Repeat("x", 2<<20), "pw", ""),
	} {
		err := p.Write(obj)
		requireCode(t, err, persist.ErrCUnsupported)
		var re *internal.RangeError
		assert.ErrorAs(t, err, &re)
	}

	// nothing of the rejected records reached the file
	valid := model.NewCar("OK0001", 4, true)
	require.NoError(t, p.Write(valid))
	require.NoError(t, p.CloseOutput())

	records, err := persist.ReadFile(p, name, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	got, ok := records[0].(model.Vehicle)
	require.True(t, ok, "expected model.Vehicle, got %T", records[0])
	assertSameVehicle(t, valid, got)
}

func testNilEntries(t *testing.T, p persist.IPersistence) {
	c, trip := company.NewSample()
	twin := model.NewCustomer("Sofia123", "other", "Sofia")
	c.Orders[nil] = model.NewOrder(nil, 1, false, false, 0, model.ZoneStandard)
	c.Orders[twin] = model.NewOrder(twin, 2, false, false, 3, model.ZoneUnpaved)
	c.ActiveTrips[twin] = nil

	got := roundTrip(t, p, c)
	require.Len(t, got.Orders, 3)
	require.Contains(t, got.Orders, (*model.Customer)(nil))
	assert.Nil(t, got.Orders[nil].Customer)
	assert.Equal(t, 1, got.Orders[nil].Seats)

	require.Len(t, got.ActiveTrips, 2)
	for customer, active := range got.ActiveTrips {
		assert.Equal(t, "Sofia123", customer.Username)
		if customer.Password == "other" {
			assert.Nil(t, active)
			assert.Same(t, customer, got.Orders[customer].Customer)
			continue
		}
		assertSameTrip(t, trip, active)
	}

	// equal input, equal bytes, whatever the map order
	dir := t.TempDir()
	first := filepath.Join(dir, "first.bin")
	require.NoError(t, persist.WriteFile(p, first, c))
	want, err := os.ReadFile(first)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again := filepath.Join(dir, "again.bin")
		require.NoError(t, persist.WriteFile(p, again, c))
		data, err := os.ReadFile(again)
		require.NoError(t, err)
		require.True(t, bytes.Equal(want, data), "write %d produced different bytes", i)
	}
}

func testDecodeFailures(t *testing.T, p persist.IPersistence) {
	tests := []struct {
		name  string
		body  func(w *internal.Writer)
		value uint64
	}{
		{
			name:  "UnknownTag",
			body:  func(w *internal.Writer) { w.Uint8(0x99) },
			value: 0x99,
		},
		{
			name:  "RootReference",
			body:  func(w *internal.Writer) { w.Tag(internal.TagRef); w.Uint32(1) },
			value: uint64(internal.TagRef),
		},
		{
			name: "UnknownVehicleKind",
			body: func(w *internal.Writer) {
				w.Tag(internal.TagVehicle)
				w.Uint32(1)
				w.Uint8(9)
				w.Text("XYZ999")
				w.Uint32(4)
				w.Bool(false)
			},
			value: 9,
		},
		{
			name: "UnknownDriverKind",
			body: func(w *internal.Writer) {
				w.Tag(internal.TagDriver)
				w.Uint32(1)
				w.Uint8(7)
				w.Text("1")
				w.Text("X")
				w.Float64(0)
				w.Float64(0)
			},
			value: 7,
		},
		{
			name: "InvalidBool",
			body: func(w *internal.Writer) {
				w.Tag(internal.TagVehicle)
				w.Uint32(1)
				w.Uint8(uint8(model.VehicleKindCar))
				w.Text("XYZ999")
				w.Uint32(4)
				w.Uint8(2)
			},
			value: 2,
		},
		{
			name: "DanglingReference",
			body: func(w *internal.Writer) {
				w.Tag(internal.TagOrder)
				w.Uint32(1)
				w.Tag(internal.TagRef)
				w.Uint32(5)
			},
			value: 5,
		},
		{
			name: "WrongSlotType",
			body: func(w *internal.Writer) {
				w.Tag(internal.TagTrip)
				w.Uint32(1)
				w.Tag(internal.TagCustomer)
				w.Uint32(2)
				w.Text("u")
				w.Text("n")
				w.Text("p")
			},
			value: uint64(internal.TagCustomer),
		},
		{
			name: "CompanyInCustomerSlot",
			body: func(w *internal.Writer) {
				w.Tag(internal.TagCompany)
				w.Uint32(1)
				w.Uint32(1)
				w.Text("")
				w.Tag(internal.TagCompany)
				w.Uint32(2)
			},
			value: uint64(internal.TagCompany),
		},
		{
			name: "NestedCompanies",
			body: func(w *internal.Writer) {
				for i := 0; i < 10000; i++ {
					w.Tag(internal.TagCompany)
					w.Uint32(uint32(i + 1))
					w.Uint32(1)
					w.Text("")
				}
			},
			value: uint64(internal.TagCompany),
		},
		{
			name: "DriverInVehicleSlot",
			body: func(w *internal.Writer) {
				w.Tag(internal.TagTrip)
				w.Uint32(1)
				w.Tag(internal.TagNil)
				w.Tag(internal.TagNil)
				w.Tag(internal.TagDriver)
				w.Uint32(2)
			},
			value: uint64(internal.TagDriver),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := writeRaw(t, tt.body)
			require.NoError(t, p.OpenInput(name))

			obj, err := p.Read()
			assert.Nil(t, obj)
			pErr := requireCode(t, err, persist.ErrCDecode)
			assert.ErrorIs(t, err, persist.ErrDecode)
			assert.NotErrorIs(t, err, persist.ErrIO)
			assert.Equal(t, tt.value, pErr.Value)
			assert.Equal(t, name, pErr.Name)

			// the input can still be closed
			require.NoError(t, p.CloseInput())
		})
	}

	t.Run("BadMagic", func(t *testing.T) {
		name := path(t, "bad.bin")
		require.NoError(t, os.WriteFile(name, []byte("NOTASNAP and some more"), 0o644))
		err := p.OpenInput(name)
		requireCode(t, err, persist.ErrCDecode)
		_, err = p.Read()
		requireCode(t, err, persist.ErrCNotOpen)
	})
}

func testTruncated(t *testing.T, p persist.IPersistence) {
	c, _ := company.NewSample()
	name := path(t, "empresa.bin")
	require.NoError(t, persist.WriteFile(p, name, c))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Greater(t, len(data), len(internal.Magic)+10)

	for _, cut := range []int{1, 7, len(data) - len(internal.Magic) - 1} {
		truncated := path(t, "truncated.bin")
		require.NoError(t, os.WriteFile(truncated, data[:len(data)-cut], 0o644))

		require.NoError(t, p.OpenInput(truncated))
		obj, err := p.Read()
		assert.Nil(t, obj)
		requireCode(t, err, persist.ErrCIO)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.NoError(t, p.CloseInput())
	}

	// empty and header-only files
	empty := path(t, "empty.bin")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	err = p.OpenInput(empty)
	requireCode(t, err, persist.ErrCIO)
	assert.NotErrorIs(t, err, persist.ErrNotFound)

	headerOnly := path(t, "header.bin")
	require.NoError(t, os.WriteFile(headerOnly, []byte(internal.Magic), 0o644))
	require.NoError(t, p.OpenInput(headerOnly))
	_, err = p.Read()
	assert.ErrorIs(t, err, io.EOF)
	require.NoError(t, p.CloseInput())
}

func testOverwrite(t *testing.T, p persist.IPersistence) {
	name := path(t, "empresa.bin")
	require.NoError(t, persist.WriteFile(p, name, newFleet(t)))
	require.NoError(t, persist.WriteFile(p, name, company.New()))

	records, err := persist.ReadFile(p, name, 1)
	require.NoError(t, err)
	got, ok := records[0].(*company.Company)
	require.True(t, ok)
	assert.True(t, got.IsEmpty())

	// only one record remains
	_, err = persist.ReadFile(p, name, 2)
	assert.ErrorIs(t, err, io.EOF)
}

func testDeterministic(t *testing.T, p persist.IPersistence) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.bin")
	second := filepath.Join(dir, "second.bin")

	require.NoError(t, persist.WriteFile(p, first, newFleet(t)))
	require.NoError(t, persist.WriteFile(p, second, newFleet(t)))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "equal companies produced different files")

	// writing what was read reproduces the file
	got, err := persist.ReadCompany(p, first)
	require.NoError(t, err)
	third := filepath.Join(dir, "third.bin")
	require.NoError(t, persist.WriteFile(p, third, got))
	c, err := os.ReadFile(third)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, c), "round trip changed the file")
}

func testHelpers(t *testing.T, p persist.IPersistence) {
	dir := t.TempDir()
	name := filepath.Join(dir, "empresa.bin")

	// SaveAtomic creates and replaces the file without leaving temporary files
	c, trip := company.NewSample()
	require.NoError(t, persist.SaveAtomic(p, name, c))
	require.NoError(t, persist.SaveAtomic(p, name, trip))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "empresa.bin", entries[0].Name())

	// ReadCompany rejects other record types
	_, err = persist.ReadCompany(p, name)
	requireCode(t, err, persist.ErrCDecode)

	// a failing SaveAtomic keeps the previous content
	err = persist.SaveAtomic(p, name, trip, "not a record")
	requireCode(t, err, persist.ErrCUnsupported)
	records, err := persist.ReadFile(p, name, 1)
	require.NoError(t, err)
	assert.IsType(t, &model.Trip{}, records[0])
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// ReadFile returns no records on failure
	records, err = persist.ReadFile(p, name, 3)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, persist.ErrIO))

	// n <= 0 reads up to the end of the file
	require.NoError(t, persist.WriteFile(p, name, c, trip, trip.Order))
	for _, n := range []int{0, -1} {
		records, err = persist.ReadFile(p, name, n)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, records, 3)
		assert.IsType(t, &company.Company{}, records[0])
		assert.IsType(t, &model.Trip{}, records[1])
		assert.IsType(t, &model.Order{}, records[2])
	}

	// a truncated file is still an error
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(name, data[:len(data)-1], 0o644))
	records, err = persist.ReadFile(p, name, -1)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
