package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación en memoria de RestaurantRepository.
type RestaurantRepo struct {
	s *Store
}

// NewRestaurantRepository construye el repositorio sobre s.
func NewRestaurantRepository(s *Store) *RestaurantRepo {
	return s.Restaurants()
}

func (r *RestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.restaurants[restaurant.ID] = row[entity.Restaurant]{seq: r.s.nextSeq(), v: cloneRestaurant(*restaurant)}
	return nil
}

func (r *RestaurantRepo) GetByID(_ context.Context, id string) (*entity.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cur, ok := r.s.restaurants[id]
	if !ok {
		return nil, nil
	}
	out := cloneRestaurant(cur.v)
	return &out, nil
}

// GetByIDForUpdate en memoria el bloqueo lo da TxRunner, que serializa transacciones.
func (r *RestaurantRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Restaurant, error) {
	return r.GetByID(ctx, id)
}

func (r *RestaurantRepo) List(_ context.Context, filter repository.RestaurantFilter, page repository.Page) ([]*entity.Restaurant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := paginate(sorted(r.s.restaurants, func(v entity.Restaurant) bool {
		if !v.Status {
			return false
		}
		if filter.OwnerID != "" && v.OwnerID != filter.OwnerID {
			return false
		}
		if filter.RatingAbove != nil && !v.Rating.GreaterThan(*filter.RatingAbove) {
			return false
		}
		return true
	}), page)
	out := make([]*entity.Restaurant, len(list))
	for i := range list {
		v := cloneRestaurant(list[i])
		out[i] = &v
	}
	return out, nil
}

func (r *RestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.restaurants[restaurant.ID]
	if !ok {
		return nil
	}
	// comment_ids y rating solo cambian vía AppendComment/RefreshRating.
	next := cloneRestaurant(*restaurant)
	next.CommentIDs = cur.v.CommentIDs
	next.Rating = cur.v.Rating
	cur.v = next
	r.s.restaurants[restaurant.ID] = cur
	return nil
}

func (r *RestaurantRepo) AppendComment(_ context.Context, restaurantID, commentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.restaurants[restaurantID]
	if !ok {
		return nil
	}
	cur.v = cloneRestaurant(cur.v)
	cur.v.CommentIDs = append(cur.v.CommentIDs, commentID)
	cur.v.UpdatedAt = time.Now()
	r.s.restaurants[restaurantID] = cur
	return nil
}

func (r *RestaurantRepo) RefreshRating(_ context.Context, restaurantID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.restaurants[restaurantID]
	if !ok {
		return nil
	}
	sum := decimal.Zero
	n := int64(0)
	for _, id := range cur.v.CommentIDs {
		c, ok := r.s.comments[id]
		if !ok || !c.v.Status {
			continue
		}
		sum = sum.Add(c.v.Rate)
		n++
	}
	rating := decimal.Zero
	if n > 0 {
		rating = sum.Div(decimal.NewFromInt(n)).Round(2)
	}
	cur.v.Rating = rating
	r.s.restaurants[restaurantID] = cur
	return nil
}

func (r *RestaurantRepo) SoftDelete(_ context.Context, id string) (*entity.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.restaurants[id]
	if !ok {
		return nil, nil
	}
	cur.v.Status = false
	cur.v.UpdatedAt = time.Now()
	r.s.restaurants[id] = cur
	out := cloneRestaurant(cur.v)
	return &out, nil
}
