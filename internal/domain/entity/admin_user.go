package entity

import (
	"time"
)

type AdminUser struct {
	ID           string    `json:"id" firestore:"id"`
	Email        string    `json:"email" firestore:"email"`
	PasswordHash string    `json:"-" firestore:"passwordHash"`
	Name         string    `json:"name" firestore:"name"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}
