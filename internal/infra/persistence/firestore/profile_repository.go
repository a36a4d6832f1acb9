package firestore

import (
	"context"
	"time"

	"krishihive/internal/domain/entity"
	"krishihive/internal/domain/repository"
	"krishihive/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// profileRepository implements repository.ProfileRepository on users/{uid}.
type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

// FindByUID retrieves a single profile by the user's UID.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := repo.client.Collection(collUsers).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile document")
	}

	var doc model.ProfileModel
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return model.ToProfileDomain(snap.Ref.ID, &doc), nil
}

// Create persists a new profile document keyed by UID.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	doc := model.FromProfileDomain(profile)

	if _, err := repo.client.Collection(collUsers).Doc(profile.UID).Create(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to create profile document")
	}

	return nil
}

// UpdateRole changes only the role field of an existing profile.
func (repo *profileRepository) UpdateRole(ctx context.Context, uid string, role entity.Role) error {
	_, err := repo.client.Collection(collUsers).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role.String()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update profile role")
	}

	return nil
}

// TouchLastLogin records a sign-in timestamp.
func (repo *profileRepository) TouchLastLogin(ctx context.Context, uid string, at time.Time) error {
	_, err := repo.client.Collection(collUsers).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "lastLogin", Value: at},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update last login")
	}

	return nil
}

// List returns all profiles, newest first, for the admin panel.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.UserProfile, error) {
	iter := repo.client.Collection(collUsers).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var profiles []*entity.UserProfile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate profiles")
		}

		var doc model.ProfileModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode profile document")
		}

		profiles = append(profiles, model.ToProfileDomain(snap.Ref.ID, &doc))
	}

	return profiles, nil
}
