package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
)

const bookColumns = `
	id, isbn, udk, bbk, main_title, parallel_title, additional_title, publisher_id,
	publication_place, publication_year, edition_type_id, language_id, volume_pages,
	volume_copies, dimensions, weight, abstract, keywords, table_of_contents,
	is_electronic, electronic_format, electronic_access_url, electronic_file_size,
	created_at, updated_at
`

var bookSelectColumns = []interface{}{
	"id", "isbn", "udk", "bbk", "main_title", "parallel_title", "additional_title",
	"publisher_id", "publication_place", "publication_year", "edition_type_id",
	"language_id", "volume_pages", "volume_copies", "dimensions", "weight",
	"abstract", "keywords", "table_of_contents", "is_electronic",
	"electronic_format", "electronic_access_url", "electronic_file_size",
	"created_at", "updated_at",
}

type bookRepository struct {
	db *sqlx.DB
}

func NewBookRepository(db *sqlx.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	query := `
		INSERT INTO books (isbn, udk, bbk, main_title, parallel_title, additional_title,
			publisher_id, publication_place, publication_year, edition_type_id, language_id,
			volume_pages, volume_copies, dimensions, weight, abstract, keywords,
			table_of_contents, is_electronic, electronic_format, electronic_access_url,
			electronic_file_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		book.ISBN, book.UDK, book.BBK,
		book.MainTitle, book.ParallelTitle, book.AdditionalTitle,
		book.PublisherID, book.PublicationPlace, book.PublicationYear,
		book.EditionTypeID, book.LanguageID,
		book.VolumePages, book.VolumeCopies, book.Dimensions, book.Weight,
		book.Abstract, book.Keywords, book.TableOfContents,
		book.IsElectronic, book.ElectronicFormat, book.ElectronicURL, book.ElectronicFileSize,
	)

	return row.Scan(&book.ID, &book.CreatedAt)
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var book domain.Book
	if err := r.db.GetContext(ctx, &book, query, id); err != nil {
		return nil, err
	}

	return &book, nil
}

func (r *bookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY main_title`

	var books []*domain.Book
	if err := r.db.SelectContext(ctx, &books, query); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *bookRepository) Search(ctx context.Context, filter domain.BookSearchFilter) ([]*domain.Book, error) {
	ds := pgDialect.From("books").Select(bookSelectColumns...)

	if filter.Title != "" {
		pattern := "%" + filter.Title + "%"
		ds = ds.Where(goqu.Or(
			goqu.C("main_title").ILike(pattern),
			goqu.C("parallel_title").ILike(pattern),
			goqu.C("additional_title").ILike(pattern),
		))
	}
	if filter.AuthorName != "" {
		pattern := "%" + filter.AuthorName + "%"
		authorSubquery := pgDialect.From("book_authors").
			Select("book_id").
			Join(goqu.T("authors"), goqu.On(goqu.Ex{"authors.id": goqu.I("book_authors.author_id")})).
			Where(goqu.Or(
				goqu.I("authors.last_name").ILike(pattern),
				goqu.I("authors.first_name").ILike(pattern),
			))
		ds = ds.Where(goqu.C("id").In(authorSubquery))
	}
	if filter.ISBN != "" {
		ds = ds.Where(goqu.C("isbn").ILike("%" + filter.ISBN + "%"))
	}
	if filter.Year != nil {
		ds = ds.Where(goqu.C("publication_year").Eq(*filter.Year))
	}
	if filter.IsElectronic != nil {
		ds = ds.Where(goqu.C("is_electronic").Eq(*filter.IsElectronic))
	}
	if filter.LanguageID != nil {
		ds = ds.Where(goqu.C("language_id").Eq(*filter.LanguageID))
	}

	query, args, err := ds.Order(goqu.C("main_title").Asc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var books []*domain.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *bookRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateBookRequest) error {
	record := goqu.Record{"updated_at": goqu.L("NOW()")}
	if patch.MainTitle != nil {
		record["main_title"] = *patch.MainTitle
	}
	if patch.EditionTypeID != nil {
		record["edition_type_id"] = *patch.EditionTypeID
	}
	if patch.ISBN != nil {
		record["isbn"] = *patch.ISBN
	}
	if patch.UDK != nil {
		record["udk"] = *patch.UDK
	}
	if patch.BBK != nil {
		record["bbk"] = *patch.BBK
	}
	if patch.ParallelTitle != nil {
		record["parallel_title"] = *patch.ParallelTitle
	}
	if patch.AdditionalTitle != nil {
		record["additional_title"] = *patch.AdditionalTitle
	}
	if patch.PublisherID != nil {
		record["publisher_id"] = *patch.PublisherID
	}
	if patch.PublicationPlace != nil {
		record["publication_place"] = *patch.PublicationPlace
	}
	if patch.PublicationYear != nil {
		record["publication_year"] = *patch.PublicationYear
	}
	if patch.LanguageID != nil {
		record["language_id"] = *patch.LanguageID
	}
	if patch.VolumePages != nil {
		record["volume_pages"] = *patch.VolumePages
	}
	if patch.VolumeCopies != nil {
		record["volume_copies"] = *patch.VolumeCopies
	}
	if patch.Dimensions != nil {
		record["dimensions"] = *patch.Dimensions
	}
	if patch.Weight != nil {
		record["weight"] = *patch.Weight
	}
	if patch.Abstract != nil {
		record["abstract"] = *patch.Abstract
	}
	if patch.Keywords != nil {
		record["keywords"] = *patch.Keywords
	}
	if patch.TableOfContents != nil {
		record["table_of_contents"] = *patch.TableOfContents
	}
	if patch.IsElectronic != nil {
		record["is_electronic"] = *patch.IsElectronic
	}
	if patch.ElectronicFormat != nil {
		record["electronic_format"] = *patch.ElectronicFormat
	}
	if patch.ElectronicURL != nil {
		record["electronic_access_url"] = *patch.ElectronicURL
	}
	if patch.ElectronicFileSize != nil {
		record["electronic_file_size"] = *patch.ElectronicFileSize
	}

	query, args, err := pgDialect.Update("books").Set(record).
		Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return customError.ErrNotFound
	}

	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM books WHERE id = $1`, id)
}

func (r *bookRepository) CreateAuthor(ctx context.Context, author *domain.Author) error {
	query := `
		INSERT INTO authors (last_name, first_name, middle_name, birth_year, death_year, biography)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	row := r.db.QueryRowxContext(ctx, query,
		author.LastName, author.FirstName, author.MiddleName,
		author.BirthYear, author.DeathYear, author.Biography,
	)

	return row.Scan(&author.ID)
}

func (r *bookRepository) GetAuthorByID(ctx context.Context, id int64) (*domain.Author, error) {
	query := `
		SELECT id, last_name, first_name, middle_name, birth_year, death_year, biography
		FROM authors
		WHERE id = $1
	`

	var author domain.Author
	if err := r.db.GetContext(ctx, &author, query, id); err != nil {
		return nil, err
	}

	return &author, nil
}

func (r *bookRepository) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	query := `
		SELECT id, last_name, first_name, middle_name, birth_year, death_year, biography
		FROM authors
		ORDER BY last_name, first_name
	`

	var authors []*domain.Author
	if err := r.db.SelectContext(ctx, &authors, query); err != nil {
		return nil, err
	}

	return authors, nil
}

func (r *bookRepository) UpdateAuthor(ctx context.Context, author *domain.Author) error {
	query := `
		UPDATE authors
		SET last_name = $2, first_name = $3, middle_name = $4,
			birth_year = $5, death_year = $6, biography = $7
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		author.ID,
		author.LastName, author.FirstName, author.MiddleName,
		author.BirthYear, author.DeathYear, author.Biography,
	)
}

func (r *bookRepository) DeleteAuthor(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM authors WHERE id = $1`, id)
}

func (r *bookRepository) CreateBookAuthor(ctx context.Context, link *domain.BookAuthor) error {
	query := `
		INSERT INTO book_authors (book_id, author_id, author_role, author_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	row := r.db.QueryRowxContext(ctx, query,
		link.BookID, link.AuthorID, link.AuthorRole, link.AuthorOrder,
	)

	return row.Scan(&link.ID)
}

func (r *bookRepository) GetBookAuthorByID(ctx context.Context, id int64) (*domain.BookAuthor, error) {
	query := `
		SELECT id, book_id, author_id, author_role, author_order
		FROM book_authors
		WHERE id = $1
	`

	var link domain.BookAuthor
	if err := r.db.GetContext(ctx, &link, query, id); err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *bookRepository) ListBookAuthors(ctx context.Context) ([]*domain.BookAuthor, error) {
	query := `
		SELECT id, book_id, author_id, author_role, author_order
		FROM book_authors
		ORDER BY book_id, author_order
	`

	var links []*domain.BookAuthor
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, err
	}

	return links, nil
}

func (r *bookRepository) UpdateBookAuthor(ctx context.Context, link *domain.BookAuthor) error {
	query := `
		UPDATE book_authors
		SET book_id = $2, author_id = $3, author_role = $4, author_order = $5
		WHERE id = $1
	`

	return execAffectingOne(ctx, r.db, query,
		link.ID, link.BookID, link.AuthorID, link.AuthorRole, link.AuthorOrder,
	)
}

func (r *bookRepository) DeleteBookAuthor(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM book_authors WHERE id = $1`, id)
}

func (r *bookRepository) AuthorBookCounts(ctx context.Context, authorID int64) ([]*domain.AuthorBookCopies, error) {
	query := `
		SELECT b.id AS book_id,
			b.main_title AS title,
			b.isbn,
			b.publication_year,
			COUNT(bc.id) AS total_copies,
			COALESCE(SUM(CASE WHEN bc.current_status_id =
				(SELECT id FROM book_statuses WHERE code = $2) THEN 1 ELSE 0 END), 0) AS available_copies,
			COUNT(bc.id) - COALESCE(SUM(CASE WHEN bc.current_status_id =
				(SELECT id FROM book_statuses WHERE code = $2) THEN 1 ELSE 0 END), 0) AS loaned_copies
		FROM books b
		JOIN book_authors ba ON ba.book_id = b.id
		LEFT JOIN book_copies bc ON bc.book_id = b.id
		WHERE ba.author_id = $1
		GROUP BY b.id, b.main_title, b.isbn, b.publication_year
		ORDER BY b.main_title
	`

	var counts []*domain.AuthorBookCopies
	if err := r.db.SelectContext(ctx, &counts, query, authorID, domain.BookStatusAvailable); err != nil {
		return nil, err
	}

	return counts, nil
}
