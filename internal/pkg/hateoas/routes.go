package hateoas

const apiPrefix = "/api"

func fixed(path string) PathFunc {
	return func(string) string { return apiPrefix + path }
}

func withID(prefix string) PathFunc {
	return func(id string) string { return apiPrefix + prefix + "/" + id }
}

// Default returns the link table of the whole API.
func Default(baseURL string) *Table {
	t := NewTable(baseURL)

	t.Register(ResourceRoot, GetMainLinks, fixed(""))
	t.Register(ResourceAuth, Login, fixed("/auth/login"))
	t.Register(ResourceAuth, Logout, fixed("/auth/logout"))

	t.Register(ResourceRoom, GetAllRooms, fixed("/rooms"))
	t.Register(ResourceRoom, CreateRoom, fixed("/rooms"))
	t.Register(ResourceRoom, SearchRooms, fixed("/rooms/search"))
	t.Register(ResourceRoom, GetRoom, withID("/rooms"))
	t.Register(ResourceRoom, UpdateRoom, withID("/rooms"))

	t.Register(ResourceEmployee, GetAllEmployees, fixed("/employees"))
	t.Register(ResourceEmployee, CreateEmployee, fixed("/employees"))
	t.Register(ResourceEmployee, CheckEmail, fixed("/employees/check-email"))
	t.Register(ResourceEmployee, GetEmployee, withID("/employees"))
	t.Register(ResourceEmployee, UpdateEmployee, withID("/employees"))

	t.Register(ResourceOffer, GetAllOffers, fixed("/offers"))
	t.Register(ResourceOffer, GetActiveOffers, fixed("/offers/active"))
	t.Register(ResourceOffer, CreateOffer, fixed("/offers"))
	t.Register(ResourceOffer, GetOffer, withID("/offers"))
	t.Register(ResourceOffer, UpdateOffer, withID("/offers"))

	t.Register(ResourceReservation, GetAllReservations, fixed("/reservations"))
	t.Register(ResourceReservation, RoomsOccupation, fixed("/reservations/occupation"))
	t.Register(ResourceReservation, GetReservation, withID("/reservations"))
	t.Register(ResourceReservation, UpdateReservation, withID("/reservations"))
	// Reservations are created against a room, so id is the room id here.
	t.Register(ResourceReservation, CreateReservation, withID("/reservations"))

	return t
}
