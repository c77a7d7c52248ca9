// Package view renders persisted records in a human readable form.
//
// Of converts a company, trip, order, customer, driver or vehicle into plain
// data transfer objects. Shared entities are shown once in full and
// referenced by their natural key (username, national ID or plate)
// everywhere else. Encode writes such a view as JSON or YAML.
package view
