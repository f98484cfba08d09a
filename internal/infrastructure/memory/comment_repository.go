package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implementación en memoria de CommentRepository.
type CommentRepo struct {
	s *Store
}

// NewCommentRepository construye el repositorio sobre s.
func NewCommentRepository(s *Store) *CommentRepo {
	return s.Comments()
}

func (r *CommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.comments[comment.ID] = row[entity.Comment]{seq: r.s.nextSeq(), v: cloneComment(*comment)}
	return nil
}

func (r *CommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cur, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	out := cloneComment(cur.v)
	return &out, nil
}

func (r *CommentRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Comment, 0, len(ids))
	for _, id := range ids {
		if cur, ok := r.s.comments[id]; ok {
			v := cloneComment(cur.v)
			out = append(out, &v)
		}
	}
	return out, nil
}

func (r *CommentRepo) ListActive(_ context.Context, page repository.Page) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := paginate(sorted(r.s.comments, func(c entity.Comment) bool { return c.Status }), page)
	out := make([]*entity.Comment, len(list))
	for i := range list {
		v := cloneComment(list[i])
		out[i] = &v
	}
	return out, nil
}

func (r *CommentRepo) FindByAuthor(_ context.Context, commentIDs []string, userID string) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range commentIDs {
		if cur, ok := r.s.comments[id]; ok && cur.v.UserID == userID {
			out := cloneComment(cur.v)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *CommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.comments[comment.ID]
	if !ok {
		return nil
	}
	cur.v = cloneComment(*comment)
	r.s.comments[comment.ID] = cur
	return nil
}

func (r *CommentRepo) MarkReviewed(_ context.Context, commentID, reviewID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.comments[commentID]
	if !ok || !cur.v.Opened {
		return false, nil
	}
	id := reviewID
	cur.v.Opened = false
	cur.v.ReviewID = &id
	cur.v.UpdatedAt = time.Now()
	r.s.comments[commentID] = cur
	return true, nil
}

func (r *CommentRepo) SoftDelete(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	cur.v.Status = false
	cur.v.UpdatedAt = time.Now()
	r.s.comments[id] = cur
	out := cloneComment(cur.v)
	return &out, nil
}
