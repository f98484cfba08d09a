package dto

import "github.com/jhoicas/Resenas-api/internal/domain/entity"

// NewUserResponse convierte un User a su salida pública. nil si u es nil.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      string(u.Role),
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// NewRestaurantResponse convierte un Restaurant a su salida con referencias.
func NewRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	comments := make([]string, len(r.CommentIDs))
	copy(comments, r.CommentIDs)
	return RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Owner:       r.OwnerID,
		Status:      r.Status,
		Comments:    comments,
		Rating:      r.Rating,
		CreatedAt:   r.CreatedAt,
	}
}

// NewCommentResponse convierte un Comment a su salida con referencias.
func NewCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		Rate:        c.Rate,
		Title:       c.Title,
		Description: c.Description,
		User:        c.UserID,
		Restaurant:  c.RestaurantID,
		Opened:      c.Opened,
		Review:      c.ReviewID,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}

// NewReviewResponse convierte un Review a su salida con referencias.
func NewReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		Description: r.Description,
		Owner:       r.OwnerID,
		Comment:     r.CommentID,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
