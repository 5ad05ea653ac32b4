package domain

// User is a row in the externally managed users table. This service only
// ever reads it; user creation and updates happen elsewhere.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Password string `json:"-"` // Never return password in JSON
}

func (User) TableName() string {
	return "users"
}

// Identity is the claim set carried by a verified access token.
type Identity struct {
	UserID uint
	Email  string
}
