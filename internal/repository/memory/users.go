package memory

import (
	"context"
	"sort"
	"strings"

	"pixelgram/internal/models"
)

type userRepo struct{ s *state }

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return models.NewConflictError("Username already exists")
		}
	}
	user.ID = r.s.id("users")
	user.CreatedAt = r.s.stamp(user.CreatedAt)
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, models.NewNotFoundError("User", username)
}

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sortedUsers(func(models.User) bool { return true }), nil
}

func (r *userRepo) Update(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	if patch.Username != nil && *patch.Username != u.Username {
		for _, other := range r.s.users {
			if other.Username == *patch.Username {
				return nil, models.NewConflictError("Username already exists")
			}
		}
	}
	patch.Apply(&u)
	u.UpdatedAt = r.s.now()
	r.s.users[id] = u
	return &u, nil
}

func (r *userRepo) Search(ctx context.Context, query string) ([]models.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sortedUsers(func(u models.User) bool {
		return containsFold(u.Username, q) || containsFold(u.FullName, q)
	}), nil
}

// sortedUsers returns matching users ordered by id. Callers hold a lock.
func (s *state) sortedUsers(match func(models.User) bool) []models.User {
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if match(u) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
