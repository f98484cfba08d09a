package reviews_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/application/reviews"
	"github.com/jhoicas/Resenas-api/internal/domain"
	"github.com/jhoicas/Resenas-api/internal/domain/entity"
	"github.com/jhoicas/Resenas-api/internal/infrastructure/memory"
)

type fixture struct {
	store *memory.Store
	uc    *reviews.WorkflowUseCase

	admin, owner, otherOwner, user, otherUser *entity.User
	restaurant                                *entity.Restaurant
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		store: store,
		uc: reviews.NewWorkflowUseCase(
			memory.NewTxRunner(store), store.Users(), store.Restaurants(), store.Comments(), store.Reviews(),
		),
	}
	f.admin = f.addUser(t, entity.RoleAdmin)
	f.owner = f.addUser(t, entity.RoleOwner)
	f.otherOwner = f.addUser(t, entity.RoleOwner)
	f.user = f.addUser(t, entity.RoleUser)
	f.otherUser = f.addUser(t, entity.RoleUser)
	f.restaurant = f.addRestaurant(t, f.owner.ID)
	return f
}

func (f *fixture) addUser(t *testing.T, role entity.Role) *entity.User {
	t.Helper()
	id := uuid.New().String()
	u := &entity.User{ID: id, Name: string(role), Email: id + "@example.com", Role: role, Status: true, CreatedAt: time.Now()}
	require.NoError(t, f.store.Users().Create(context.Background(), u))
	return u
}

func (f *fixture) addRestaurant(t *testing.T, ownerID string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{ID: uuid.New().String(), Name: "La Esquina", OwnerID: ownerID, Status: true, CreatedAt: time.Now()}
	require.NoError(t, f.store.Restaurants().Create(context.Background(), r))
	return r
}

func (f *fixture) comment(t *testing.T, actor *entity.User, rate string) *dto.CommentCreatedResponse {
	t.Helper()
	out, err := f.uc.CreateComment(context.Background(), actor, dto.CreateCommentRequest{
		Restaurant: f.restaurant.ID, Rate: decimal.RequireFromString(rate), Title: "Muy bueno", Owner: actor.ID,
	})
	require.NoError(t, err)
	return out
}

func assertMessage(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	assert.Equal(t, msg, domain.Message(err))
}

func TestCreateComment_UsuarioComentaYSeAgregaAlRestaurante(t *testing.T) {
	f := newFixture(t)
	out := f.comment(t, f.user, "4")

	assert.True(t, out.Comment.Opened)
	assert.True(t, out.Comment.Rate.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, f.user.ID, out.Comment.User)
	assert.Equal(t, []string{out.Comment.ID}, out.Restaurant.Comments)
	assert.True(t, out.Restaurant.Rating.Equal(decimal.NewFromInt(4)))
}

func TestCreateComment_SegundoComentarioDelMismoUsuario(t *testing.T) {
	f := newFixture(t)
	f.comment(t, f.user, "4")

	_, err := f.uc.CreateComment(context.Background(), f.user, dto.CreateCommentRequest{
		Restaurant: f.restaurant.ID, Rate: decimal.NewFromInt(2), Title: "Otra vez", User: f.user.ID,
	})
	assertMessage(t, err, domain.ErrConflict, "You already commented to this restaurant")

	r, err := f.store.Restaurants().GetByID(context.Background(), f.restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, r.CommentIDs, 1)
	assert.True(t, r.Rating.Equal(decimal.NewFromInt(4)))
}

func TestCreateComment_Reglas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		actor *entity.User
		in    dto.CreateCommentRequest
		kind  error
		msg   string
	}{
		{
			name:  "dueño no comenta",
			actor: f.owner,
			in:    dto.CreateCommentRequest{Restaurant: f.restaurant.ID, Rate: decimal.NewFromInt(3), Title: "x", Owner: f.owner.ID},
			kind:  domain.ErrForbidden,
			msg:   "Owner cannot create comments",
		},
		{
			name:  "usuario no comenta por otro",
			actor: f.user,
			in:    dto.CreateCommentRequest{Restaurant: f.restaurant.ID, Rate: decimal.NewFromInt(3), Title: "x", Owner: f.otherUser.ID},
			kind:  domain.ErrForbidden,
			msg:   "You cannot create comments for another users",
		},
		{
			name:  "restaurante inexistente",
			actor: f.user,
			in:    dto.CreateCommentRequest{Restaurant: uuid.New().String(), Rate: decimal.NewFromInt(3), Title: "x", Owner: f.user.ID},
			kind:  domain.ErrNotFound,
			msg:   "The restaurant doesn't exist with specified id",
		},
		{
			name:  "admin con autor inexistente",
			actor: f.admin,
			in:    dto.CreateCommentRequest{Restaurant: f.restaurant.ID, Rate: decimal.NewFromInt(3), Title: "x", Owner: uuid.New().String()},
			kind:  domain.ErrNotFound,
			msg:   "The user doesn't exist with specified id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.CreateComment(ctx, tt.actor, tt.in)
			assertMessage(t, err, tt.kind, tt.msg)
		})
	}

	t.Run("rate fuera de rango", func(t *testing.T) {
		_, err := f.uc.CreateComment(ctx, f.user, dto.CreateCommentRequest{
			Restaurant: f.restaurant.ID, Rate: decimal.NewFromInt(6), Title: "x", Owner: f.user.ID,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("admin comenta en nombre de un usuario", func(t *testing.T) {
		out, err := f.uc.CreateComment(ctx, f.admin, dto.CreateCommentRequest{
			Restaurant: f.restaurant.ID, Rate: decimal.NewFromInt(5), Title: "x", User: f.otherUser.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, f.otherUser.ID, out.Comment.User)
	})

	t.Run("sin usuario autenticado", func(t *testing.T) {
		_, err := f.uc.CreateComment(ctx, nil, dto.CreateCommentRequest{Restaurant: f.restaurant.ID})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCreateComment_ConcurrentesDelMismoUsuario(t *testing.T) {
	f := newFixture(t)
	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.CreateComment(context.Background(), f.user, dto.CreateCommentRequest{
				Restaurant: f.restaurant.ID, Rate: decimal.NewFromInt(3), Title: "x", Owner: f.user.ID,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrConflict), "error inesperado: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	r, err := f.store.Restaurants().GetByID(context.Background(), f.restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, r.CommentIDs, 1)
}

func TestCreateReview_DuenoCierraElComentario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.comment(t, f.user, "4")

	out, err := f.uc.CreateReview(ctx, f.owner, dto.CreateReviewRequest{
		Comment: c.Comment.ID, Description: "Gracias", Owner: f.owner.ID,
	})
	require.NoError(t, err)
	assert.False(t, out.Comment.Opened)
	require.NotNil(t, out.Comment.Review)
	assert.Equal(t, out.Review.ID, *out.Comment.Review)
	assert.Equal(t, c.Comment.ID, out.Review.Comment)
	assert.Equal(t, f.owner.ID, out.Review.Owner)

	_, err = f.uc.CreateReview(ctx, f.owner, dto.CreateReviewRequest{
		Comment: c.Comment.ID, Description: "Otra", Owner: f.owner.ID,
	})
	assertMessage(t, err, domain.ErrConflict, "That comment already reviewed")
}

func TestCreateReview_Reglas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.comment(t, f.user, "3")

	t.Run("usuario normal no reseña", func(t *testing.T) {
		_, err := f.uc.CreateReview(ctx, f.user, dto.CreateReviewRequest{Comment: c.Comment.ID, Description: "x", Owner: f.user.ID})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
	t.Run("dueño no reseña por otro dueño", func(t *testing.T) {
		_, err := f.uc.CreateReview(ctx, f.owner, dto.CreateReviewRequest{Comment: c.Comment.ID, Description: "x", Owner: f.otherOwner.ID})
		assertMessage(t, err, domain.ErrForbidden, "You cannot create reviews for another owners")
	})
	t.Run("dueño de otro restaurante", func(t *testing.T) {
		_, err := f.uc.CreateReview(ctx, f.otherOwner, dto.CreateReviewRequest{Comment: c.Comment.ID, Description: "x", Owner: f.otherOwner.ID})
		assertMessage(t, err, domain.ErrForbidden, "You cannot review comments of another owner's restaurant")
	})
	t.Run("comentario inexistente", func(t *testing.T) {
		_, err := f.uc.CreateReview(ctx, f.owner, dto.CreateReviewRequest{Comment: uuid.New().String(), Description: "x", Owner: f.owner.ID})
		assertMessage(t, err, domain.ErrNotFound, "The comment doesn't exist with specified id")
	})
	t.Run("admin con dueño inexistente", func(t *testing.T) {
		_, err := f.uc.CreateReview(ctx, f.admin, dto.CreateReviewRequest{Comment: c.Comment.ID, Description: "x", Owner: uuid.New().String()})
		assertMessage(t, err, domain.ErrNotFound, "The owner doesn't exist with specified id")
	})
	t.Run("admin a nombre de un usuario normal", func(t *testing.T) {
		_, err := f.uc.CreateReview(ctx, f.admin, dto.CreateReviewRequest{Comment: c.Comment.ID, Description: "x", Owner: f.otherUser.ID})
		assertMessage(t, err, domain.ErrForbidden, "The review owner must be the restaurant owner or an admin")
	})
	t.Run("admin a nombre del dueño de otro restaurante", func(t *testing.T) {
		_, err := f.uc.CreateReview(ctx, f.admin, dto.CreateReviewRequest{Comment: c.Comment.ID, Description: "x", Owner: f.otherOwner.ID})
		assertMessage(t, err, domain.ErrForbidden, "The review owner must be the restaurant owner or an admin")
	})

	comment, err := f.store.Comments().GetByID(ctx, c.Comment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CommentOpen, comment.State(), "los intentos fallidos no cambian el comentario")

	t.Run("admin reseña en nombre del dueño", func(t *testing.T) {
		out, err := f.uc.CreateReview(ctx, f.admin, dto.CreateReviewRequest{Comment: c.Comment.ID, Description: "x", Owner: f.owner.ID})
		require.NoError(t, err)
		assert.Equal(t, f.owner.ID, out.Review.Owner)
	})

	t.Run("admin a nombre de otro admin", func(t *testing.T) {
		other := f.addUser(t, entity.RoleAdmin)
		c2 := f.comment(t, f.otherUser, "4")
		out, err := f.uc.CreateReview(ctx, f.admin, dto.CreateReviewRequest{Comment: c2.Comment.ID, Description: "x", Owner: other.ID})
		require.NoError(t, err)
		assert.Equal(t, other.ID, out.Review.Owner)
		assert.False(t, out.Comment.Opened)
	})
}

func TestCreateReview_ConcurrentesSobreElMismoComentario(t *testing.T) {
	f := newFixture(t)
	c := f.comment(t, f.user, "4")

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.CreateReview(context.Background(), f.owner, dto.CreateReviewRequest{
				Comment: c.Comment.ID, Description: "Gracias", Owner: f.owner.ID,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	assert.Equal(t, 1, succeeded, "solo una reseña gana la transición OPEN -> REVIEWED")

	all, err := f.store.Reviews().ListActive(context.Background(), pageAll)
	require.NoError(t, err)
	assert.Len(t, all, 1, "las reseñas perdedoras se revierten")
}
