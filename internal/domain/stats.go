package domain

import "time"

// Visit is one library visit, physical or remote.
type Visit struct {
	ID              int64     `json:"id" db:"id"`
	ReaderID        *int64    `json:"reader_id,omitempty" db:"reader_id"`
	VisitDate       time.Time `json:"visit_date" db:"visit_date"`
	VisitTime       time.Time `json:"visit_time" db:"visit_time"`
	IsRemote        bool      `json:"is_remote" db:"is_remote"`
	Purpose         *string   `json:"purpose,omitempty" db:"purpose"`
	DurationMinutes *int      `json:"duration_minutes,omitempty" db:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type CreateVisitRequest struct {
	ReaderID        *int64     `json:"reader_id" validate:"omitempty,gt=0"`
	VisitDate       *time.Time `json:"visit_date"`
	IsRemote        bool       `json:"is_remote"`
	Purpose         *string    `json:"purpose" validate:"omitempty,max=100"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gt=0"`
}

type UpdateVisitRequest struct {
	IsRemote        *bool   `json:"is_remote"`
	Purpose         *string `json:"purpose" validate:"omitempty,max=100"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
}

// ReferenceRequest is one librarian-assisted lookup request.
type ReferenceRequest struct {
	ID                    int64     `json:"id" db:"id"`
	ReaderID              *int64    `json:"reader_id,omitempty" db:"reader_id"`
	RequestDate           time.Time `json:"request_date" db:"request_date"`
	RequestType           *string   `json:"request_type,omitempty" db:"request_type"`
	Subject               *string   `json:"subject,omitempty" db:"subject"`
	ComplexityLevel       *string   `json:"complexity_level,omitempty" db:"complexity_level"`
	CompletionTimeMinutes *int      `json:"completion_time_minutes,omitempty" db:"completion_time_minutes"`
	IsCompleted           bool      `json:"is_completed" db:"is_completed"`
	LibrarianNotes        *string   `json:"librarian_notes,omitempty" db:"librarian_notes"`
}

type CreateReferenceRequestRequest struct {
	ReaderID        *int64  `json:"reader_id" validate:"omitempty,gt=0"`
	RequestType     *string `json:"request_type" validate:"omitempty,max=100"`
	Subject         *string `json:"subject" validate:"omitempty,max=500"`
	ComplexityLevel *string `json:"complexity_level" validate:"omitempty,max=50"`
}

type UpdateReferenceRequestRequest struct {
	RequestType           *string `json:"request_type" validate:"omitempty,max=100"`
	Subject               *string `json:"subject" validate:"omitempty,max=500"`
	ComplexityLevel       *string `json:"complexity_level" validate:"omitempty,max=50"`
	CompletionTimeMinutes *int    `json:"completion_time_minutes" validate:"omitempty,gt=0"`
	IsCompleted           *bool   `json:"is_completed"`
	LibrarianNotes        *string `json:"librarian_notes"`
}

// DailyStatistic is one pre-aggregated day of library activity, recomputed
// nightly by the scheduler.
type DailyStatistic struct {
	ID            int64     `json:"id" db:"id"`
	StatisticDate time.Time `json:"statistic_date" db:"statistic_date"`

	TotalVisits    int `json:"total_visits" db:"total_visits"`
	PhysicalVisits int `json:"physical_visits" db:"physical_visits"`
	RemoteVisits   int `json:"remote_visits" db:"remote_visits"`

	NewReaders    int `json:"new_readers" db:"new_readers"`
	ActiveReaders int `json:"active_readers" db:"active_readers"`

	TotalLoans      int `json:"total_loans" db:"total_loans"`
	BookLoans       int `json:"book_loans" db:"book_loans"`
	ElectronicLoans int `json:"electronic_loans" db:"electronic_loans"`
	OverdueLoans    int `json:"overdue_loans" db:"overdue_loans"`

	TotalCopies      int `json:"total_copies" db:"total_copies"`
	NewCopies        int `json:"new_copies" db:"new_copies"`
	WrittenOffCopies int `json:"written_off_copies" db:"written_off_copies"`

	ReferenceRequests int `json:"reference_requests" db:"reference_requests"`
	ComplexRequests   int `json:"complex_requests" db:"complex_requests"`

	CalculatedAt time.Time `json:"calculated_at" db:"calculated_at"`
}

// SummaryCounts is the flat aggregate row behind /statistics/library.
type SummaryCounts struct {
	TotalReaders               int `db:"total_readers"`
	ActiveReaders              int `db:"active_readers"`
	TotalBooks                 int `db:"total_books"`
	ElectronicBooks            int `db:"electronic_books"`
	TotalCopies                int `db:"total_copies"`
	TotalAuthors               int `db:"total_authors"`
	TotalLoans                 int `db:"total_loans"`
	ActiveLoans                int `db:"active_loans"`
	OverdueLoans               int `db:"overdue_loans"`
	VisitsToday                int `db:"visits_today"`
	ReferenceRequestsTotal     int `db:"reference_requests_total"`
	ReferenceRequestsCompleted int `db:"reference_requests_completed"`
}

// LibrarySummary is the response shape for /statistics/library.
type LibrarySummary struct {
	Readers struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Inactive int `json:"inactive"`
	} `json:"readers"`
	Books struct {
		BibliographicRecords int `json:"bibliographic_records"`
		PhysicalCopies       int `json:"physical_copies"`
		ElectronicBooks      int `json:"electronic_books"`
		PhysicalBooks        int `json:"physical_books"`
	} `json:"books"`
	Authors struct {
		Total int `json:"total"`
	} `json:"authors"`
	Loans struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Returned int `json:"returned"`
		Overdue  int `json:"overdue"`
	} `json:"loans"`
	Activity struct {
		VisitsToday                int `json:"visits_today"`
		ReferenceRequestsTotal     int `json:"reference_requests_total"`
		ReferenceRequestsCompleted int `json:"reference_requests_completed"`
	} `json:"activity"`
	CalculatedAt time.Time `json:"calculated_at"`
}

type DailyStatisticsSummary struct {
	DailyStatistics []*DailyStatistic `json:"daily_statistics"`
	TotalDays       int               `json:"total_days"`
	CalculatedAt    time.Time         `json:"calculated_at"`
}
