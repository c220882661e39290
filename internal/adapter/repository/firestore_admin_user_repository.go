package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"returnex/internal/domain/entity"
	"returnex/internal/domain/repository"
	"returnex/pkg/errors"
)

type firestoreAdminUserRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminUserRepository(client *firestore.Client) repository.AdminUserRepository {
	return &firestoreAdminUserRepository{
		client: client,
	}
}

func (r *firestoreAdminUserRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("admin_users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create admin user", err)
	}

	return nil
}

func (r *firestoreAdminUserRepository) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	query := r.client.Collection("admin_users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Admin user", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get admin user", err)
	}

	var user entity.AdminUser
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse admin user data", err)
	}

	return &user, nil
}
