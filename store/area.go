package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/bitmark-inc/relief-api/schema"
)

func (s *ReliefStore) GetArea(ctx context.Context, id uuid.UUID) (*schema.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var a schema.Area
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// ListAreas returns all areas ordered by district then name
func (s *ReliefStore) ListAreas(ctx context.Context) ([]schema.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	areas := []schema.Area{}
	if err := s.ormDB.Order("district, name").Find(&areas).Error; err != nil {
		return nil, translate(err)
	}
	return areas, nil
}

// FindArea looks an area up by name, or by district when the name is empty.
// Matching is case insensitive.
func (s *ReliefStore) FindArea(ctx context.Context, name, district string) (*schema.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db := s.ormDB
	if name != "" {
		db = db.Where("lower(name) = lower(?)", name)
	}
	if district != "" {
		db = db.Where("lower(district) = lower(?)", district)
	}
	if name == "" && district == "" {
		return nil, ErrRecordNotFound
	}

	var a schema.Area
	if err := db.Order("name").First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// RoleOf returns the strongest role granted to the user, or an empty role
func (s *ReliefStore) RoleOf(ctx context.Context, userID string) (schema.Role, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	roles := []schema.UserRole{}
	if err := s.ormDB.Where("user_id = ?", userID).Find(&roles).Error; err != nil {
		return "", translate(err)
	}

	var role schema.Role
	for _, r := range roles {
		if r.Role.Rank() > role.Rank() {
			role = r.Role
		}
	}
	return role, nil
}
