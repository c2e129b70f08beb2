package entity

// User is the minimal profile referenced by bookings, reviews and the
// community board. Credentials and sessions live with the auth service.
type User struct {
	Base
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
}
