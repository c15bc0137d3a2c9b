package domain

import (
	"errors"
	"time"

	catalogdomain "catalog-server/internal/catalog/domain"
	"catalog-server/internal/infra/utils"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

// Recognized bulk input columns. Anything else is carried through as a named
// custom field.
const (
	ColumnEAN          = "ean"
	ColumnSerialNumber = "serial_number"
	ColumnIMEI1        = "imei1"
	ColumnIMEI2        = "imei2"
	ColumnCondition    = "condition"
)

var recognizedColumns = map[string]bool{
	ColumnEAN:          true,
	ColumnSerialNumber: true,
	ColumnIMEI1:        true,
	ColumnIMEI2:        true,
	ColumnCondition:    true,
}

// BulkRow is one parsed data row. Index is 1-based so errors and warnings can
// be reported against the operator's view of the file.
type BulkRow struct {
	Index  int
	Values map[string]string
}

func (r BulkRow) Value(column string) string {
	return r.Values[column]
}

func (r BulkRow) EAN() string          { return r.Values[ColumnEAN] }
func (r BulkRow) SerialNumber() string { return r.Values[ColumnSerialNumber] }
func (r BulkRow) IMEI1() string        { return r.Values[ColumnIMEI1] }
func (r BulkRow) IMEI2() string        { return r.Values[ColumnIMEI2] }

// PassThrough returns the columns that are not part of the recognized set.
func (r BulkRow) PassThrough() map[string]string {
	fields := make(map[string]string)
	for column, value := range r.Values {
		if !recognizedColumns[column] {
			fields[column] = value
		}
	}
	return fields
}

// RowValidation is the structural verdict for one row. Errors invalidate the
// row; warnings are informational and never block a commit.
type RowValidation struct {
	Row      int
	Errors   []string
	Warnings []string
}

func (v RowValidation) Valid() bool {
	return len(v.Errors) == 0
}

// RowPreview pairs a row with its resolved base product and the merged field
// set a committed unit would carry.
type RowPreview struct {
	Row         BulkRow
	BaseProduct *catalogdomain.Product
	Merged      map[string]string
	Validation  RowValidation
}

// RowError attributes a commit failure to its input row.
type RowError struct {
	Row     int
	Message string
}

// CommitResult is the running tally of a sequential commit. The With methods
// return updated copies so each fold step is a value, not a mutation.
type CommitResult struct {
	Total   int
	Success int
	Failed  int
	Errors  []RowError
}

func (r CommitResult) WithSuccess() CommitResult {
	r.Total++
	r.Success++
	return r
}

func (r CommitResult) WithFailure(row int, message string) CommitResult {
	r.Total++
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: row, Message: message})
	return r
}

type SessionState string

const (
	SessionParsed     SessionState = "parsed"
	SessionPreviewed  SessionState = "previewed"
	SessionCommitting SessionState = "committing"
	SessionComplete   SessionState = "complete"
)

var ErrInvalidSessionState = errors.New("invalid import session state")

// ImportSession holds the in-memory rows of one bulk import. Sessions are
// ephemeral: they never touch persistence and are discarded after completion
// or cancellation.
type ImportSession struct {
	ID        shareddomain.ID
	TenantID  shareddomain.ID
	State     SessionState
	Rows      []BulkRow
	Previews  []RowPreview
	Result    CommitResult
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarkPreviewed stores the resolved previews. Allowed from parsed and from
// previewed, so a preview can be recomputed before committing.
func (s *ImportSession) MarkPreviewed(previews []RowPreview) error {
	if s.State != SessionParsed && s.State != SessionPreviewed {
		return ErrInvalidSessionState
	}
	s.Previews = previews
	s.State = SessionPreviewed
	s.UpdatedAt = time.Now()
	return nil
}

// BeginCommit transitions to committing. Only a previewed session can commit.
func (s *ImportSession) BeginCommit() error {
	if s.State != SessionPreviewed {
		return ErrInvalidSessionState
	}
	s.State = SessionCommitting
	s.UpdatedAt = time.Now()
	return nil
}

// CompleteCommit records the final tally. Once complete there is no way back.
func (s *ImportSession) CompleteCommit(result CommitResult) error {
	if s.State != SessionCommitting {
		return ErrInvalidSessionState
	}
	s.Result = result
	s.State = SessionComplete
	s.UpdatedAt = time.Now()
	return nil
}

// Cancel discards the previews and returns to parsed. A commit in flight or
// finished cannot be cancelled.
func (s *ImportSession) Cancel() error {
	if s.State == SessionCommitting || s.State == SessionComplete {
		return ErrInvalidSessionState
	}
	s.Previews = nil
	s.State = SessionParsed
	s.UpdatedAt = time.Now()
	return nil
}

func NewImportSessionBuilder() *importSessionBuilder {
	return &importSessionBuilder{}
}

type importSessionBuilder struct {
	actions []importSessionHandler
}

type importSessionHandler func(s *ImportSession) error

func (b *importSessionBuilder) WithTenantID(tenantID shareddomain.ID) *importSessionBuilder {
	b.actions = append(b.actions, func(s *ImportSession) error {
		s.TenantID = tenantID
		return nil
	})
	return b
}

func (b *importSessionBuilder) WithRows(rows []BulkRow) *importSessionBuilder {
	b.actions = append(b.actions, func(s *ImportSession) error {
		s.Rows = rows
		return nil
	})
	return b
}

func (b *importSessionBuilder) Build() (ImportSession, error) {
	now := time.Now()
	result := ImportSession{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		State:     SessionParsed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return ImportSession{}, err
		}
	}

	return result, nil
}
