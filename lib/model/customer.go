package model

// Customer is a registered user of the company. The username is the identity
// of the customer and is used as key in company.Company.Customers.
type Customer struct {
	Username string `validate:"required"`
	RealName string
	Password string `validate:"required"`
}

// NewCustomer creates a new customer
func NewCustomer(username, password, realName string) *Customer {
	return &Customer{
		Username: username,
		RealName: realName,
		Password: password,
	}
}
