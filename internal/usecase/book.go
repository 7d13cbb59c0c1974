package usecase

import (
	"bookjourney/internal/entity"
	"context"
)

// BookPatch carries the mutable fields of a book. Nil means "leave as is".
type BookPatch struct {
	Status  *string
	Rating  *int
	Comment *string
}

// BookRepository is the owner-scoped collection store. Every method takes
// the owner's user ID and must apply it as a query predicate so that one
// user's books can never be read or mutated through another user's calls.
type BookRepository interface {
	Add(ctx context.Context, book *entity.Book) error
	// ListByOwner returns the owner's books in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Book, error)
	// ListRankedByRating returns the owner's books sorted by rating
	// descending; ties keep insertion order.
	ListRankedByRating(ctx context.Context, ownerID string) ([]entity.Book, error)
	// Update applies a partial update. Returns ErrNotFound when the book
	// does not exist or is not owned by ownerID.
	Update(ctx context.Context, ownerID, bookID string, patch BookPatch) (entity.Book, error)
	// Delete removes the book if it exists and is owned by ownerID;
	// deleting an absent or foreign book is a no-op.
	Delete(ctx context.Context, ownerID, bookID string) error
}
