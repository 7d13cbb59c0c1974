package store

import (
	"context"
	"errors"

	"bookjourney/internal/entity"
	"bookjourney/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

var _ usecase.BookRepository = (*BookPG)(nil)

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) Add(ctx context.Context, book *entity.Book) error {
	const query = `
	INSERT INTO books (id, owner_id, google_book_id, title, author, cover_url, status, rating, comment)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		book.OwnerID,
		book.GoogleBookID,
		book.Title,
		book.Author,
		book.CoverURL,
		book.Status,
		book.Rating,
		book.Comment,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
}

func (r *BookPG) ListByOwner(ctx context.Context, ownerID string) ([]entity.Book, error) {
	const query = `
	SELECT id, owner_id, google_book_id, title, author, cover_url, status, rating, comment, created_at, updated_at
	FROM books
	WHERE owner_id = $1
	ORDER BY created_at, id
	`
	return r.queryBooks(ctx, query, ownerID)
}

func (r *BookPG) ListRankedByRating(ctx context.Context, ownerID string) ([]entity.Book, error) {
	// Ties keep insertion order so the ranking is stable.
	const query = `
	SELECT id, owner_id, google_book_id, title, author, cover_url, status, rating, comment, created_at, updated_at
	FROM books
	WHERE owner_id = $1
	ORDER BY rating DESC, created_at, id
	`
	return r.queryBooks(ctx, query, ownerID)
}

func (r *BookPG) Update(ctx context.Context, ownerID, bookID string, patch usecase.BookPatch) (entity.Book, error) {
	// The owner predicate in the WHERE clause makes cross-user updates
	// impossible regardless of what the handler checked.
	const query = `
	UPDATE books
	SET status = COALESCE($3, status),
	    rating = COALESCE($4, rating),
	    comment = COALESCE($5, comment),
	    updated_at = NOW()
	WHERE owner_id = $1 AND id = $2
	RETURNING id, owner_id, google_book_id, title, author, cover_url, status, rating, comment, created_at, updated_at
	`
	var book entity.Book
	err := r.db.QueryRow(ctx, query, ownerID, bookID, patch.Status, patch.Rating, patch.Comment).Scan(
		&book.ID, &book.OwnerID, &book.GoogleBookID, &book.Title, &book.Author, &book.CoverURL,
		&book.Status, &book.Rating, &book.Comment, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return book, nil
}

func (r *BookPG) Delete(ctx context.Context, ownerID, bookID string) error {
	const query = `
	DELETE FROM books
	WHERE owner_id = $1 AND id = $2
	`
	_, err := r.db.Exec(ctx, query, ownerID, bookID)
	if err != nil {
		// Deleting with a malformed id is a no-op, same as an absent row.
		if isInvalidUUID(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *BookPG) queryBooks(ctx context.Context, query, ownerID string) ([]entity.Book, error) {
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var book entity.Book
		if err := rows.Scan(
			&book.ID, &book.OwnerID, &book.GoogleBookID, &book.Title, &book.Author, &book.CoverURL,
			&book.Status, &book.Rating, &book.Comment, &book.CreatedAt, &book.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
