package company

import "github.com/SofiaIPalladino/2024-grupo-7/lib/model"

// NewSample builds the reference company used by the demo command and the
// persistence conformance tests. Every entity is reachable from several
// collections: the order stays open while its trip is both active and
// completed, and the driver and vehicle are still listed as idle.
func NewSample() (*Company, *model.Trip) {
	c := New()

	customer := model.NewCustomer("Sofia123", "123456", "Sofia")
	c.Customers[customer.Username] = customer

	driver := model.NewTemporaryDriver("87654321", "Carlos P")
	c.Drivers[driver.ID] = driver

	car := model.NewCar("ABC123", 4, true)
	c.Vehicles[car.Plate] = car

	c.IdleDrivers = append(c.IdleDrivers, driver)
	c.IdleVehicles = append(c.IdleVehicles, car)

	order := model.NewOrder(customer, 3, true, false, 10, model.ZoneDangerous)
	c.Orders[customer] = order

	trip := model.NewTrip(order, driver, car)
	c.ActiveTrips[customer] = trip
	c.CompletedTrips = append(c.CompletedTrips, trip)

	return c, trip
}
