// Package company provides the aggregate that is persisted as a single unit:
// the Company with all of its customers, vehicles, drivers, open orders,
// active trips and completed trips.
//
// The collections are exported and may be filled directly (this is what the
// persistence layer does on load). The helper methods keep the collections
// consistent for callers that build a company step by step:
//
//   - AddCustomer, AddDriver, AddVehicle register validated entities; new
//     drivers and vehicles start idle.
//   - PlaceOrder records the open order of a registered customer.
//   - StartTrip turns an open order into an active trip and takes the driver
//     and vehicle out of the idle lists.
//   - FinishTrip moves an active trip to the completed trips and puts the
//     driver and vehicle back into the idle lists.
//
// Pricing, payroll and dispatch matching are not part of this package.
//
// Thread Safety:
//
//	A Company is not safe for concurrent use.
package company
