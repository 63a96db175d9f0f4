package address

// Address is a shipping address in a user's address book.
type Address struct {
	AddressID   int    `json:"addressId"`
	UserID      int    `json:"userId"`
	AddressName string `json:"addressName"`
	AddressDesc string `json:"addressDesc"`
	Phone       string `json:"phone"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Fields is the user-editable part of an Address.
type Fields struct {
	AddressName string `json:"addressName" validate:"required,max=64"`
	AddressDesc string `json:"addressDesc" validate:"required,max=500"`
	Phone       string `json:"phone" validate:"required,min=7,max=20"`
}
