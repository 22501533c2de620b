package domain

import "time"

// Book is a bibliographic record; physical units live in BookCopy.
type Book struct {
	ID int64 `json:"id" db:"id"`

	ISBN            *string `json:"isbn,omitempty" db:"isbn"`
	UDK             *string `json:"udk,omitempty" db:"udk"`
	BBK             *string `json:"bbk,omitempty" db:"bbk"`
	MainTitle       string  `json:"main_title" db:"main_title"`
	ParallelTitle   *string `json:"parallel_title,omitempty" db:"parallel_title"`
	AdditionalTitle *string `json:"additional_title,omitempty" db:"additional_title"`

	PublisherID      *int64  `json:"publisher_id,omitempty" db:"publisher_id"`
	PublicationPlace *string `json:"publication_place,omitempty" db:"publication_place"`
	PublicationYear  *int    `json:"publication_year,omitempty" db:"publication_year"`

	EditionTypeID int64    `json:"edition_type_id" db:"edition_type_id"`
	LanguageID    *int64   `json:"language_id,omitempty" db:"language_id"`
	VolumePages   *int     `json:"volume_pages,omitempty" db:"volume_pages"`
	VolumeCopies  int      `json:"volume_copies" db:"volume_copies"`
	Dimensions    *string  `json:"dimensions,omitempty" db:"dimensions"`
	Weight        *float64 `json:"weight,omitempty" db:"weight"`

	Abstract        *string `json:"abstract,omitempty" db:"abstract"`
	Keywords        *string `json:"keywords,omitempty" db:"keywords"`
	TableOfContents *string `json:"table_of_contents,omitempty" db:"table_of_contents"`

	IsElectronic       bool    `json:"is_electronic" db:"is_electronic"`
	ElectronicFormat   *string `json:"electronic_format,omitempty" db:"electronic_format"`
	ElectronicURL      *string `json:"electronic_access_url,omitempty" db:"electronic_access_url"`
	ElectronicFileSize *int64  `json:"electronic_file_size,omitempty" db:"electronic_file_size"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

type Author struct {
	ID         int64   `json:"id" db:"id"`
	LastName   string  `json:"last_name" db:"last_name"`
	FirstName  *string `json:"first_name,omitempty" db:"first_name"`
	MiddleName *string `json:"middle_name,omitempty" db:"middle_name"`
	BirthYear  *int    `json:"birth_year,omitempty" db:"birth_year"`
	DeathYear  *int    `json:"death_year,omitempty" db:"death_year"`
	Biography  *string `json:"biography,omitempty" db:"biography"`
}

// BookAuthor links books and authors many-to-many, with role and ordering.
type BookAuthor struct {
	ID          int64  `json:"id" db:"id"`
	BookID      int64  `json:"book_id" db:"book_id"`
	AuthorID    int64  `json:"author_id" db:"author_id"`
	AuthorRole  string `json:"author_role" db:"author_role"`
	AuthorOrder int    `json:"author_order" db:"author_order"`
}

type CreateBookRequest struct {
	MainTitle          string   `json:"main_title" validate:"required,max=500"`
	EditionTypeID      int64    `json:"edition_type_id" validate:"required,gt=0"`
	ISBN               *string  `json:"isbn" validate:"omitempty,max=17"`
	UDK                *string  `json:"udk" validate:"omitempty,max=50"`
	BBK                *string  `json:"bbk" validate:"omitempty,max=50"`
	ParallelTitle      *string  `json:"parallel_title" validate:"omitempty,max=500"`
	AdditionalTitle    *string  `json:"additional_title" validate:"omitempty,max=500"`
	PublisherID        *int64   `json:"publisher_id" validate:"omitempty,gt=0"`
	PublicationPlace   *string  `json:"publication_place" validate:"omitempty,max=100"`
	PublicationYear    *int     `json:"publication_year"`
	LanguageID         *int64   `json:"language_id" validate:"omitempty,gt=0"`
	VolumePages        *int     `json:"volume_pages" validate:"omitempty,gt=0"`
	VolumeCopies       int      `json:"volume_copies" validate:"omitempty,gte=1"`
	Dimensions         *string  `json:"dimensions" validate:"omitempty,max=50"`
	Weight             *float64 `json:"weight"`
	Abstract           *string  `json:"abstract"`
	Keywords           *string  `json:"keywords"`
	TableOfContents    *string  `json:"table_of_contents"`
	IsElectronic       bool     `json:"is_electronic"`
	ElectronicFormat   *string  `json:"electronic_format" validate:"omitempty,max=50"`
	ElectronicURL      *string  `json:"electronic_access_url"`
	ElectronicFileSize *int64   `json:"electronic_file_size"`
}

type UpdateBookRequest struct {
	MainTitle          *string  `json:"main_title" validate:"omitempty,max=500"`
	EditionTypeID      *int64   `json:"edition_type_id" validate:"omitempty,gt=0"`
	ISBN               *string  `json:"isbn" validate:"omitempty,max=17"`
	UDK                *string  `json:"udk" validate:"omitempty,max=50"`
	BBK                *string  `json:"bbk" validate:"omitempty,max=50"`
	ParallelTitle      *string  `json:"parallel_title" validate:"omitempty,max=500"`
	AdditionalTitle    *string  `json:"additional_title" validate:"omitempty,max=500"`
	PublisherID        *int64   `json:"publisher_id" validate:"omitempty,gt=0"`
	PublicationPlace   *string  `json:"publication_place" validate:"omitempty,max=100"`
	PublicationYear    *int     `json:"publication_year"`
	LanguageID         *int64   `json:"language_id" validate:"omitempty,gt=0"`
	VolumePages        *int     `json:"volume_pages" validate:"omitempty,gt=0"`
	VolumeCopies       *int     `json:"volume_copies" validate:"omitempty,gte=1"`
	Dimensions         *string  `json:"dimensions" validate:"omitempty,max=50"`
	Weight             *float64 `json:"weight"`
	Abstract           *string  `json:"abstract"`
	Keywords           *string  `json:"keywords"`
	TableOfContents    *string  `json:"table_of_contents"`
	IsElectronic       *bool    `json:"is_electronic"`
	ElectronicFormat   *string  `json:"electronic_format" validate:"omitempty,max=50"`
	ElectronicURL      *string  `json:"electronic_access_url"`
	ElectronicFileSize *int64   `json:"electronic_file_size"`
}

type AuthorRequest struct {
	LastName   string  `json:"last_name" validate:"required,max=100"`
	FirstName  *string `json:"first_name" validate:"omitempty,max=100"`
	MiddleName *string `json:"middle_name" validate:"omitempty,max=100"`
	BirthYear  *int    `json:"birth_year"`
	DeathYear  *int    `json:"death_year"`
	Biography  *string `json:"biography"`
}

type BookAuthorRequest struct {
	BookID      int64  `json:"book_id" validate:"required,gt=0"`
	AuthorID    int64  `json:"author_id" validate:"required,gt=0"`
	AuthorRole  string `json:"author_role" validate:"omitempty,max=50"`
	AuthorOrder int    `json:"author_order" validate:"omitempty,gte=1"`
}

// BookSearchFilter mirrors the /search/books query parameters.
type BookSearchFilter struct {
	Title        string
	AuthorName   string
	ISBN         string
	Year         *int
	IsElectronic *bool
	LanguageID   *int64
}

type BookSearchResponse struct {
	Found int     `json:"found"`
	Books []*Book `json:"books"`
}

// AuthorBookCopies is one row of the per-author copy count aggregate.
type AuthorBookCopies struct {
	BookID          int64   `json:"book_id" db:"book_id"`
	Title           string  `json:"title" db:"title"`
	ISBN            *string `json:"isbn,omitempty" db:"isbn"`
	PublicationYear *int    `json:"publication_year,omitempty" db:"publication_year"`
	TotalCopies     int     `json:"total_copies" db:"total_copies"`
	AvailableCopies int     `json:"available_copies" db:"available_copies"`
	LoanedCopies    int     `json:"loaned_copies" db:"loaned_copies"`
}

type AuthorBooksResponse struct {
	Author          *Author             `json:"author"`
	BooksCount      int                 `json:"books_count"`
	TotalCopies     int                 `json:"total_copies"`
	AvailableCopies int                 `json:"available_copies"`
	Books           []*AuthorBookCopies `json:"books"`
}
