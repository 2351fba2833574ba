package hateoas

// Relation names a follow-up action advertised in a response.
type Relation string

const (
	Self Relation = "self"

	GetMainLinks Relation = "GET_MAIN_LINKS"

	Login  Relation = "LOGIN"
	Logout Relation = "LOGOUT"

	GetRoom     Relation = "GET_ROOM"
	GetAllRooms Relation = "GET_ALL_ROOMS"
	CreateRoom  Relation = "CREATE_ROOM"
	UpdateRoom  Relation = "UPDATE_ROOM"

	GetEmployee     Relation = "GET_EMPLOYEE"
	GetAllEmployees Relation = "GET_ALL_EMPLOYEES"
	CreateEmployee  Relation = "CREATE_EMPLOYEE"
	UpdateEmployee  Relation = "UPDATE_EMPLOYEE"
	CheckEmail      Relation = "CHECK_EMAIL"

	GetOffer        Relation = "GET_OFFER"
	GetAllOffers    Relation = "GET_ALL_OFFERS"
	GetActiveOffers Relation = "GET_ACTIVE_OFFERS"
	CreateOffer     Relation = "CREATE_OFFER"
	UpdateOffer     Relation = "UPDATE_OFFER"

	SearchRooms        Relation = "SEARCH_ROOMS"
	RoomsOccupation    Relation = "ROOMS_OCCUPATION"
	CreateReservation  Relation = "CREATE_RESERVATION"
	GetReservation     Relation = "GET_RESERVATION"
	GetAllReservations Relation = "GET_ALL_RESERVATIONS"
	UpdateReservation  Relation = "UPDATE_RESERVATION"
)

var descriptions = map[Relation]string{
	GetMainLinks: "Get main endpoint links",

	Login:  "Login",
	Logout: "Logout",

	GetRoom:     "Get room",
	GetAllRooms: "Get all rooms",
	CreateRoom:  "Add new room",
	UpdateRoom:  "Update room",

	GetEmployee:     "Get employee",
	GetAllEmployees: "Get all employees",
	CreateEmployee:  "Add new employee",
	UpdateEmployee:  "Update employee",
	CheckEmail:      "Check employee email",

	GetOffer:        "Get offer",
	GetAllOffers:    "Get all offers",
	GetActiveOffers: "Get active offers",
	CreateOffer:     "Add new offer",
	UpdateOffer:     "Update offer",

	SearchRooms:        "Search rooms",
	RoomsOccupation:    "Rooms occupation",
	CreateReservation:  "Create reservation",
	GetReservation:     "Get reservation",
	GetAllReservations: "Get all reservations",
	UpdateReservation:  "Update reservation",
}

// Description returns the human readable title of r, or "" for self.
func (r Relation) Description() string {
	return descriptions[r]
}

// Relations lists every named relation except self.
func Relations() []Relation {
	out := make([]Relation, 0, len(descriptions))
	for r := range descriptions {
		out = append(out, r)
	}
	return out
}
