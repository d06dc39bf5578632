package handlers

// HandlerBundle aggregates every handler the route registration needs.
type HandlerBundle struct {
	Catalog  *CatalogHandler
	Reviews  *ReviewHandler
	Carts    *CartHandler
	Users    *UserHandler
	Bookings *BookingHandler
	Premium  *PremiumHandler
	Stats    *StatsHandler
}
