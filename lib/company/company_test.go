package company

import (
	"testing"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	c := New()
	assert.True(t, c.IsEmpty())
	assert.NotNil(t, c.Customers)
	assert.NotNil(t, c.Orders)
	assert.NotNil(t, c.CompletedTrips)
}

func TestAddEntities(t *testing.T) {
	c := New()
	require.NoError(t, c.AddCustomer(model.NewCustomer("Sofia123", "123456", "Sofia")))
	require.NoError(t, c.AddDriver(model.NewTemporaryDriver("87654321", "Carlos P")))
	require.NoError(t, c.AddVehicle(model.NewCar("ABC123", 4, true)))

	assert.Len(t, c.Customers, 1)
	assert.Len(t, c.IdleDrivers, 1)
	assert.Len(t, c.IdleVehicles, 1)
	assert.False(t, c.IsEmpty())

	assert.ErrorIs(t, c.AddCustomer(model.NewCustomer("Sofia123", "x", "Other Sofia")), ErrDuplicate)
	assert.ErrorIs(t, c.AddDriver(model.NewPermanentDriver("87654321", "Someone")), ErrDuplicate)
	assert.ErrorIs(t, c.AddVehicle(model.NewOther("ABC123", 2, false)), ErrDuplicate)

	assert.Error(t, c.AddCustomer(model.NewCustomer("", "x", "y")))
	assert.Error(t, c.AddVehicle(model.NewCar("ZZZ000", 0, false)))
	assert.Len(t, c.Vehicles, 1)
}

func TestTripLifecycle(t *testing.T) {
	c := New()
	customer := model.NewCustomer("Sofia123", "123456", "Sofia")
	driver := model.NewTemporaryDriver("87654321", "Carlos P")
	car := model.NewCar("ABC123", 4, true)
	require.NoError(t, c.AddCustomer(customer))
	require.NoError(t, c.AddDriver(driver))
	require.NoError(t, c.AddVehicle(car))

	order := model.NewOrder(customer, 3, true, false, 10, model.ZoneDangerous)
	require.NoError(t, c.PlaceOrder(order))
	assert.ErrorIs(t, c.PlaceOrder(model.NewOrder(customer, 1, false, false, 2, model.ZoneStandard)), ErrOrderPending)

	trip, err := c.StartTrip(order, driver, car)
	require.NoError(t, err)
	assert.Same(t, order, trip.Order)
	assert.Empty(t, c.Orders)
	assert.Empty(t, c.IdleDrivers)
	assert.Empty(t, c.IdleVehicles)
	assert.Same(t, trip, c.ActiveTrips[customer])

	// still travelling
	assert.ErrorIs(t, c.PlaceOrder(model.NewOrder(customer, 1, false, false, 2, model.ZoneStandard)), ErrOrderPending)

	finished, err := c.FinishTrip(customer)
	require.NoError(t, err)
	assert.Same(t, trip, finished)
	assert.Empty(t, c.ActiveTrips)
	assert.Equal(t, []*model.Trip{trip}, c.CompletedTrips)
	assert.Len(t, c.IdleDrivers, 1)
	assert.Len(t, c.IdleVehicles, 1)

	_, err = c.FinishTrip(customer)
	assert.ErrorIs(t, err, ErrNoActiveTrip)
}

func TestPlaceOrderUnknownCustomer(t *testing.T) {
	c := New()
	require.NoError(t, c.AddCustomer(model.NewCustomer("Sofia123", "123456", "Sofia")))

	// same username, different instance
	impostor := model.NewCustomer("Sofia123", "123456", "Sofia")
	err := c.PlaceOrder(model.NewOrder(impostor, 1, false, false, 1, model.ZoneStandard))
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestStartTripUnavailable(t *testing.T) {
	c := New()
	customer := model.NewCustomer("Sofia123", "123456", "Sofia")
	driver := model.NewTemporaryDriver("87654321", "Carlos P")
	require.NoError(t, c.AddCustomer(customer))
	require.NoError(t, c.AddDriver(driver))

	order := model.NewOrder(customer, 1, false, false, 1, model.ZoneStandard)
	require.NoError(t, c.PlaceOrder(order))

	_, err := c.StartTrip(order, driver, model.NewCar("NOTREG", 4, false))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Len(t, c.IdleDrivers, 1, "failed start must not change idle lists")

	_, err = c.StartTrip(model.NewOrder(customer, 1, false, false, 1, model.ZoneStandard), driver, nil)
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestSample(t *testing.T) {
	c, trip := NewSample()
	customer := c.Customers["Sofia123"]
	require.NotNil(t, customer)
	assert.Same(t, trip, c.ActiveTrips[customer])
	assert.Same(t, trip, c.CompletedTrips[0])
	assert.Same(t, customer, c.Orders[customer].Customer)
	assert.Same(t, c.Drivers["87654321"], trip.Driver)
	assert.Same(t, c.Vehicles["ABC123"], trip.Vehicle)
	assert.Equal(t, model.DriverKindTemporary, trip.Driver.Kind())
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))

	b := model.NewCustomer("b", "x", "")
	a := model.NewCustomer("a", "x", "")
	keys := SortedCustomers(map[*model.Customer]bool{b: true, a: true})
	assert.Equal(t, []*model.Customer{a, b}, keys)
}

func TestSortedCustomersNilAndTies(t *testing.T) {
	second := model.NewCustomer("sofia", "pw-2", "Sofia B")
	first := model.NewCustomer("sofia", "pw-1", "Sofia A")
	other := model.NewCustomer("ana", "pw", "Ana")
	m := map[*model.Customer]int{second: 1, nil: 2, first: 3, other: 4}

	for i := 0; i < 20; i++ {
		keys := SortedCustomers(m)
		require.Equal(t, []*model.Customer{nil, other, first, second}, keys)
	}

	assert.Zero(t, CompareCustomers(nil, nil))
	assert.Negative(t, CompareCustomers(nil, other))
	assert.Positive(t, CompareCustomers(first, nil))
	samePw := model.NewCustomer("sofia", "pw-0", "Sofia A")
	assert.Positive(t, CompareCustomers(first, samePw))
}
