package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el repositorio sobre s.
func NewUserRepository(s *Store) *UserRepo {
	return s.Users()
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.v.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = row[entity.User]{seq: r.s.nextSeq(), v: *user}
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	out := u.v
	return &out, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.v.Email == email {
			out := u.v
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			v := u.v
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *UserRepo) ListActive(_ context.Context, page repository.Page) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := paginate(sorted(r.s.users, func(u entity.User) bool { return u.Status }), page)
	out := make([]*entity.User, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[user.ID]
	if !ok {
		return nil
	}
	for id, u := range r.s.users {
		if id != user.ID && u.v.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cur.v = *user
	r.s.users[user.ID] = cur
	return nil
}

func (r *UserRepo) SoftDelete(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cur.v.Status = false
	cur.v.UpdatedAt = time.Now()
	r.s.users[id] = cur
	out := cur.v
	return &out, nil
}
