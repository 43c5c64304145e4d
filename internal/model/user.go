package model

// User is an account that owns work logs. PublicID is the identity
// exposed in tokens and the API, never the database primary key.
type User struct {
	BaseModel
	PublicID     int64  `gorm:"uniqueIndex;not null" json:"public_id"`
	Email        string `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(128);not null" json:"-"`
	FullName     string `gorm:"type:varchar(128);not null;default:''" json:"full_name"`
}

func (User) TableName() string {
	return "users"
}
