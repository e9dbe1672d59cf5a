package models

// All returns every model registered for auto-migration, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Product{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&OrderStatusHistory{},
		&DiscountCode{},
		&ShippingAddress{},
		&Wishlist{},
		&SiteSetting{},
	}
}
