package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"rebooks/internal/domain/entity"
	"rebooks/internal/domain/repository"
	"rebooks/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

// Create keys the document by email so duplicate registration fails on the
// create precondition instead of a racy check-then-insert.
func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	_, err := r.client.Collection("users").Doc(user.Email).Create(ctx, user)
	if err != nil {
		if IsAlreadyExists(err) {
			return errors.Conflict("User already exists")
		}
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(email).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

// Verify marks the user verified along with every product they sell.
func (r *firestoreUserRepository) Verify(ctx context.Context, email string) error {
	userRef := r.client.Collection("users").Doc(email)
	_, err := userRef.Update(ctx, []firestore.Update{
		{Path: "verified", Value: true},
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to verify user", err)
	}

	products := r.client.Collection("products").Where("sellerEmail", "==", email).Documents(ctx)
	defer products.Stop()
	for {
		doc, err := products.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to list seller products", err)
		}
		if _, err := doc.Ref.Update(ctx, []firestore.Update{
			{Path: "sellerVerified", Value: true},
		}); err != nil {
			return errors.Internal("Failed to verify seller products", err)
		}
	}

	return nil
}

func (r *firestoreUserRepository) Delete(ctx context.Context, email string) error {
	_, err := r.client.Collection("users").Doc(email).Delete(ctx, firestore.Exists)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to delete user", err)
	}
	return nil
}

func (r *firestoreUserRepository) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	iter := r.client.Collection("users").Where("role", "==", role).Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		users = append(users, &user)
	}

	return users, nil
}
