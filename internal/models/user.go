package models

type User struct {
	Username  string `gorm:"primaryKey;size:100" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `json:"avatar_url"`
}
