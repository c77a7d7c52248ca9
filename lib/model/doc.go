// Package model defines the entities of the ride-dispatch company that are
// persisted by the persist package: customers, vehicles, drivers, orders and
// trips.
//
// The entities are plain data holders. All cross references (an order's
// customer, a trip's driver and vehicle) are shared pointers and never imply
// ownership, so the same instance is usually reachable from several places of
// a company.Company.
//
// Key Components:
//
//   - Customer: identified by its username.
//
//   - Vehicle: a closed set of variants (Car, Other) sharing VehicleInfo.
//     The concrete variant is reported by Kind() and is what the persistence
//     layer writes as the discriminator.
//
//   - Driver: variants TemporaryDriver and PermanentDriver sharing DriverInfo.
//     They differ in how pay is computed elsewhere, not in stored shape.
//
//   - Order and Trip: a customer's ride request and the binding of an order
//     to a driver and a vehicle.
//
// Variant Registry:
//
//	Every driver and vehicle kind is registered together with a constructor
//	for a blank instance (see BlankDriver and BlankVehicle). Decoders use the
//	registry to build the correct variant before filling the shared fields.
//	The registry is safe for concurrent use.
//
// Validation:
//
//	Validate checks the struct tags of an entity (non-empty keys, at least one
//	seat, known zone). The company package validates every entity it accepts.
package model
