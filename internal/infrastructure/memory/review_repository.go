package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación en memoria de ReviewRepository.
type ReviewRepo struct {
	s *Store
}

// NewReviewRepository construye el repositorio sobre s.
func NewReviewRepository(s *Store) *ReviewRepo {
	return s.Reviews()
}

func (r *ReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reviews[review.ID] = row[entity.Review]{seq: r.s.nextSeq(), v: *review}
	return nil
}

func (r *ReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cur, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	out := cur.v
	return &out, nil
}

func (r *ReviewRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Review, 0, len(ids))
	for _, id := range ids {
		if cur, ok := r.s.reviews[id]; ok {
			v := cur.v
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *ReviewRepo) ListActive(_ context.Context, page repository.Page) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := paginate(sorted(r.s.reviews, func(v entity.Review) bool { return v.Status }), page)
	out := make([]*entity.Review, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out, nil
}

func (r *ReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.reviews[review.ID]
	if !ok {
		return nil
	}
	cur.v = *review
	r.s.reviews[review.ID] = cur
	return nil
}

func (r *ReviewRepo) SoftDelete(_ context.Context, id string) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	cur.v.Status = false
	cur.v.UpdatedAt = time.Now()
	r.s.reviews[id] = cur
	out := cur.v
	return &out, nil
}
