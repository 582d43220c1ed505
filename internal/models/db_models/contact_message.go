package db_models

type ContactMessage struct {
	BaseModel
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:254;not null"`
	Message string `gorm:"type:text;not null"`
}
