package db_models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Account struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:16;not null;default:'user'"`
}
