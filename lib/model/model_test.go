package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "Car", VehicleKindCar.String())
	assert.Equal(t, "Other", VehicleKindOther.String())
	assert.Equal(t, "Unknown(9)", VehicleKind(9).String())
	assert.Equal(t, "Temporary", DriverKindTemporary.String())
	assert.Equal(t, "Permanent", DriverKindPermanent.String())
	assert.Equal(t, "Unknown(0)", DriverKind(0).String())
}

func TestBlankVariants(t *testing.T) {
	for _, kind := range []DriverKind{DriverKindTemporary, DriverKindPermanent} {
		d, ok := BlankDriver(kind)
		require.True(t, ok, "driver kind %s", kind)
		assert.Equal(t, kind, d.Kind())
		assert.Empty(t, d.Info().ID)
	}
	for _, kind := range []VehicleKind{VehicleKindCar, VehicleKindOther} {
		v, ok := BlankVehicle(kind)
		require.True(t, ok, "vehicle kind %s", kind)
		assert.Equal(t, kind, v.Kind())
	}

	_, ok := BlankDriver(DriverKind(42))
	assert.False(t, ok)
	_, ok = BlankVehicle(VehicleKind(0))
	assert.False(t, ok)
}

func TestBlankReturnsNewInstance(t *testing.T) {
	a, _ := BlankDriver(DriverKindTemporary)
	b, _ := BlankDriver(DriverKindTemporary)
	assert.NotSame(t, a, b)
}

func TestRegisterTwice(t *testing.T) {
	err := RegisterDriverKind(DriverKindTemporary, func() Driver { return &PermanentDriver{} })
	require.Error(t, err)

	// first registration wins
	d, _ := BlankDriver(DriverKindTemporary)
	assert.IsType(t, &TemporaryDriver{}, d)

	err = RegisterVehicleKind(VehicleKindCar, func() Vehicle { return &Other{} })
	require.Error(t, err)
}

func TestSetPay(t *testing.T) {
	d := NewPermanentDriver("20111222", "Ana")
	assert.Zero(t, d.GrossPay)
	d.SetPay(1234.5678, 987.6543)
	assert.Equal(t, 1234.5678, d.Info().GrossPay)
	assert.Equal(t, 987.6543, d.Info().NetPay)
}

func TestCarAccessors(t *testing.T) {
	c := NewCar("ABC123", 4, true)
	assert.True(t, c.PetFriendly())
	assert.Equal(t, "ABC123", c.Info().Plate)
	assert.Equal(t, 4, c.Seats)
}

func TestTripCustomer(t *testing.T) {
	cust := NewCustomer("Sofia123", "123456", "Sofia")
	trip := NewTrip(NewOrder(cust, 3, true, false, 10, ZoneDangerous), NewTemporaryDriver("1", "x"), NewCar("A", 1, false))
	assert.Same(t, cust, trip.Customer())
	assert.Nil(t, (&Trip{}).Customer())
}

func TestValidate(t *testing.T) {
	cust := NewCustomer("Sofia123", "123456", "Sofia")
	driver := NewTemporaryDriver("87654321", "Carlos P")
	car := NewCar("ABC123", 4, true)
	order := NewOrder(cust, 3, true, false, 10, ZoneDangerous)

	valid := []any{cust, driver, car, NewOther("XYZ999", 1, false), order, NewTrip(order, driver, car)}
	for _, e := range valid {
		assert.NoError(t, Validate(e), "%T", e)
	}

	invalid := map[string]any{
		"nil":            nil,
		"empty username": NewCustomer("", "pw", "name"),
		"empty password": NewCustomer("user", "", "name"),
		"no driver id":   NewTemporaryDriver("", "Carlos"),
		"no driver name": NewPermanentDriver("123", ""),
		"no plate":       NewCar("", 4, false),
		"zero seats":     NewOther("AAA111", 0, false),
		"no customer":    NewOrder(nil, 1, false, false, 1, ZoneStandard),
		"unknown zone":   NewOrder(cust, 1, false, false, 1, "ZONA_LUNAR"),
		"negative km":    NewOrder(cust, 1, false, false, -1, ZoneStandard),
		"no seats":       NewOrder(cust, 0, false, false, 1, ZoneUnpaved),
		"trip no driver": NewTrip(order, nil, car),
	}
	for name, e := range invalid {
		assert.Error(t, Validate(e), name)
	}
}
