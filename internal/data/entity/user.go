package entity

type User struct {
	BaseSimple
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}
