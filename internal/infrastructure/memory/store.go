// Package memory implementa los puertos de persistencia en memoria, para desarrollo y tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Resenas-api/internal/application/reviews"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/domain/repository"
)

var _ reviews.TxRunner = (*TxRunner)(nil)

// row guarda el orden de inserción junto al valor.
type row[T any] struct {
	seq int64
	v   T
}

// Store datos en memoria compartidos por los repositorios.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	seq  int64

	users       map[string]row[entity.User]
	restaurants map[string]row[entity.Restaurant]
	comments    map[string]row[entity.Comment]
	reviews     map[string]row[entity.Review]
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]row[entity.User]),
		restaurants: make(map[string]row[entity.Restaurant]),
		comments:    make(map[string]row[entity.Comment]),
		reviews:     make(map[string]row[entity.Review]),
	}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// Users, Restaurants, Comments y Reviews devuelven los repositorios sobre este Store.
func (s *Store) Users() *UserRepo             { return &UserRepo{s: s} }
func (s *Store) Restaurants() *RestaurantRepo { return &RestaurantRepo{s: s} }
func (s *Store) Comments() *CommentRepo       { return &CommentRepo{s: s} }
func (s *Store) Reviews() *ReviewRepo         { return &ReviewRepo{s: s} }

type snapshot struct {
	seq         int64
	users       map[string]row[entity.User]
	restaurants map[string]row[entity.Restaurant]
	comments    map[string]row[entity.Comment]
	reviews     map[string]row[entity.Review]
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		seq:         s.seq,
		users:       make(map[string]row[entity.User], len(s.users)),
		restaurants: make(map[string]row[entity.Restaurant], len(s.restaurants)),
		comments:    make(map[string]row[entity.Comment], len(s.comments)),
		reviews:     make(map[string]row[entity.Review], len(s.reviews)),
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.restaurants {
		v.v = cloneRestaurant(v.v)
		snap.restaurants[k] = v
	}
	for k, v := range s.comments {
		v.v = cloneComment(v.v)
		snap.comments[k] = v
	}
	for k, v := range s.reviews {
		snap.reviews[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = snap.seq
	s.users = snap.users
	s.restaurants = snap.restaurants
	s.comments = snap.comments
	s.reviews = snap.reviews
}

// TxRunner serializa las transacciones sobre el Store y, si fn falla, restaura
// el estado previo. Escrituras fuera de transacción hechas mientras tanto se pierden
// en un rollback; aceptable para un almacenamiento de desarrollo.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre s.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con los repositorios del Store.
func (r *TxRunner) Run(ctx context.Context, fn func(
	restaurantRepo repository.RestaurantRepository,
	commentRepo repository.CommentRepository,
	reviewRepo repository.ReviewRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	snap := r.s.snapshot()
	defer func() {
		// Un panic en fn también deshace sus escrituras antes de propagarse.
		if p := recover(); p != nil {
			r.s.restore(snap)
			panic(p)
		}
	}()
	if err := fn(r.s.Restaurants(), r.s.Comments(), r.s.Reviews()); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// sorted devuelve los valores de m en orden de inserción.
func sorted[T any](m map[string]row[T], keep func(T) bool) []T {
	rows := make([]row[T], 0, len(m))
	for _, r := range m {
		if keep == nil || keep(r.v) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.v
	}
	return out
}

// paginate aplica skip/limit; Limit <= 0 no limita.
func paginate[T any](list []T, p repository.Page) []T {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Skip >= len(list) {
		return nil
	}
	list = list[p.Skip:]
	if p.Limit > 0 && len(list) > p.Limit {
		list = list[:p.Limit]
	}
	return list
}

func cloneRestaurant(r entity.Restaurant) entity.Restaurant {
	r.CommentIDs = append([]string(nil), r.CommentIDs...)
	return r
}

func cloneComment(c entity.Comment) entity.Comment {
	if c.ReviewID != nil {
		id := *c.ReviewID
		c.ReviewID = &id
	}
	return c
}
