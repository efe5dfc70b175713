package entity

type Role string

const (
	RoleStudent Role = "student"
	RoleClub    Role = "club"
)

type User struct {
	Base
	Name           string `db:"name"`
	Email          string `db:"email"`
	PasswordHash   string `db:"password_hash"`
	Role           Role   `db:"role"`
	SRN            string `db:"srn"`
	ProfilePicture string `db:"profile_picture"`
}
