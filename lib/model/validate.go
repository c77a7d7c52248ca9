package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the constraints of an entity (Customer, Vehicle, Driver, Order or Trip)
func Validate(entity any) error {
	var err error
	switch e := entity.(type) {
	case nil:
		return fmt.Errorf("invalid entity: nil")
	case Driver:
		err = validate.Struct(e.Info())
	case Vehicle:
		err = validate.Struct(e.Info())
	default:
		err = validate.Struct(entity)
	}
	if err != nil {
		return fmt.Errorf("invalid %T: %w", entity, err)
	}
	return nil
}
