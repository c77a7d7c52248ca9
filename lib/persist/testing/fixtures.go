package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/model"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist/internal"
	"github.com/stretchr/testify/require"
)

// --------------------------------------------------------------------------
// Fixtures
// --------------------------------------------------------------------------

// newFleet builds a company with both driver and both vehicle variants, one
// open order, one active trip and one completed trip. It is built through the
// bookkeeping methods so every collection is consistent.
func newFleet(t testing.TB) *company.Company {
	c := company.New()

	ana := model.NewCustomer("ana", "pw-ana", "Ana Gomez")
	bruno := model.NewCustomer("bruno", "pw-bruno", "Bruno Diaz")
	carla := model.NewCustomer("carla", "pw-carla", "")
	for _, customer := range []*model.Customer{ana, bruno, carla} {
		require.NoError(t, c.AddCustomer(customer))
	}

	temp := model.NewTemporaryDriver("20111222", "Tomas")
	perm := model.NewPermanentDriver("30222333", "Paula")
	perm.SetPay(1234.5678, 987.6543)
	spare := model.NewPermanentDriver("40333444", "Pedro")
	for _, driver := range []model.Driver{temp, perm, spare} {
		require.NoError(t, c.AddDriver(driver))
	}

	car := model.NewCar("AAA111", 4, true)
	van := model.NewOther("BBB222", 8, false)
	moto := model.NewOther("CCC333", 1, true)
	for _, vehicle := range []model.Vehicle{car, van, moto} {
		require.NoError(t, c.AddVehicle(vehicle))
	}

	// ana: completed trip
	order := model.NewOrder(ana, 2, false, true, 7, model.ZoneStandard)
	require.NoError(t, c.PlaceOrder(order))
	_, err := c.StartTrip(order, temp, car)
	require.NoError(t, err)
	_, err = c.FinishTrip(ana)
	require.NoError(t, err)

	// bruno: active trip
	order = model.NewOrder(bruno, 6, true, true, 25, model.ZoneUnpaved)
	require.NoError(t, c.PlaceOrder(order))
	_, err = c.StartTrip(order, perm, van)
	require.NoError(t, err)

	// carla: open order
	require.NoError(t, c.PlaceOrder(model.NewOrder(carla, 1, false, false, 0, model.ZoneDangerous)))

	return c
}

// newLargeCompany builds a company with n customers, drivers and vehicles
// and one open order per customer
func newLargeCompany(n int) *company.Company {
	c := company.New()
	for i := 0; i < n; i++ {
		customer := model.NewCustomer(fmt.Sprintf("user-%05d", i), "secret", fmt.Sprintf("User %d", i))
		c.Customers[customer.Username] = customer
		c.Orders[customer] = model.NewOrder(customer, 1+i%4, i%2 == 0, i%3 == 0, i, model.ZoneStandard)

		var driver model.Driver = model.NewTemporaryDriver(fmt.Sprintf("%08d", i), "Driver")
		if i%2 == 1 {
			driver = model.NewPermanentDriver(fmt.Sprintf("%08d", i), "Driver")
		}
		c.Drivers[driver.Info().ID] = driver
		c.IdleDrivers = append(c.IdleDrivers, driver)

		var vehicle model.Vehicle = model.NewCar(fmt.Sprintf("CAR%05d", i), 4, i%2 == 0)
		if i%3 == 0 {
			vehicle = model.NewOther(fmt.Sprintf("OTH%05d", i), 10, false)
		}
		c.Vehicles[vehicle.Info().Plate] = vehicle
		c.IdleVehicles = append(c.IdleVehicles, vehicle)
	}
	return c
}

// path returns the path of name inside a fresh temporary directory
func path(t testing.TB, name string) string {
	return filepath.Join(t.TempDir(), name)
}

// writeRaw writes a stream consisting of the magic header followed by
// whatever body writes, and returns the path of the file
func writeRaw(t testing.TB, body func(w *internal.Writer)) string {
	name := path(t, "raw.bin")
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()

	w := internal.NewWriter(f)
	w.Raw([]byte(internal.Magic))
	body(w)
	require.NoError(t, w.Err())
	return name
}
