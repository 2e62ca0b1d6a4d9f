package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCustomer() Customer {
	return Customer{
		Name:        "Asha",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Address1:    "12 Market Road",
		City:        "Chennai",
		State:       "TN",
		Country:     "India",
		Pincode:     "600001",
	}
}

func TestCustomerValidate_AllFieldsPresent(t *testing.T) {
	c := validCustomer()
	assert.Empty(t, c.Validate())
}

func TestCustomerValidate_Address2Optional(t *testing.T) {
	c := validCustomer()
	c.Address2 = ""
	assert.Empty(t, c.Validate())
}

func TestCustomerValidate_MissingFields(t *testing.T) {
	c := validCustomer()
	c.Name = "  "
	c.Email = ""

	problems := c.Validate()
	assert.Equal(t, []string{"Name is required", "Email is required"}, problems)
}

func TestCustomerValidate_NonNumericPincode(t *testing.T) {
	c := validCustomer()
	c.Pincode = "60 00 01x"

	problems := c.Validate()
	assert.Contains(t, problems, "Pincode must be numeric")
}
