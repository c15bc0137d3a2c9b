package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	catalogdomain "catalog-server/internal/catalog/domain"
	"catalog-server/internal/infra/async"
	"catalog-server/internal/intake/domain"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

var ErrSessionNotFound = errors.New("import session not found")

// BrokerTopicImportProgress carries one ImportProgress message per attempted
// row plus a final completed event.
const BrokerTopicImportProgress async.BrokerTopicName = "intake.import.progress"

const (
	importProgressRowEvent       = "row"
	importProgressCompletedEvent = "completed"
)

// ImportProgress is the broker payload streamed to progress observers.
type ImportProgress struct {
	SessionID string `json:"session_id"`
	Row       int    `json:"row"`
	Total     int    `json:"total"`
	Success   int    `json:"success"`
	Failed    int    `json:"failed"`
	State     string `json:"state"`
}

func NewImportService(
	products ProductFinder,
	units UnitCreator,
	broker async.InternalBroker,
) *SimpleImportService {
	return &SimpleImportService{
		products: products,
		units:    units,
		broker:   broker,
		sessions: make(map[shareddomain.ID]*domain.ImportSession),
	}
}

var _ ImportService = &SimpleImportService{}

// SimpleImportService keeps sessions in memory only. The mutex guards the
// session map; row processing inside a session is strictly sequential.
type SimpleImportService struct {
	products ProductFinder
	units    UnitCreator
	broker   async.InternalBroker

	mu       sync.RWMutex
	sessions map[shareddomain.ID]*domain.ImportSession
}

func (s *SimpleImportService) CreateSession(ctx context.Context, tenantID shareddomain.ID, input io.Reader) (domain.ImportSession, error) {
	rows, err := ParseRows(input)
	if err != nil {
		return domain.ImportSession{}, fmt.Errorf("parsing bulk input: %w", err)
	}

	session, err := domain.NewImportSessionBuilder().
		WithTenantID(tenantID).
		WithRows(rows).
		Build()
	if err != nil {
		return domain.ImportSession{}, fmt.Errorf("building import session: %w", err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = &session
	s.mu.Unlock()

	slog.Info("import session created",
		slog.String("id", session.ID.String()),
		slog.Int("rows", len(rows)))

	return session, nil
}

func (s *SimpleImportService) GetSession(_ context.Context, id shareddomain.ID) (domain.ImportSession, error) {
	session, err := s.session(id)
	if err != nil {
		return domain.ImportSession{}, err
	}
	return *session, nil
}

// Preview validates every row and resolves its base product. Lookup failures
// abort the whole preview since no partial result is meaningful without the
// collaborator.
func (s *SimpleImportService) Preview(ctx context.Context, id shareddomain.ID) ([]domain.RowPreview, error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	validations := ValidateRows(session.Rows)

	previews := make([]domain.RowPreview, len(session.Rows))
	for i, row := range session.Rows {
		preview := domain.RowPreview{Row: row, Validation: validations[i]}

		if preview.Validation.Valid() {
			products, err := s.products.SearchByEAN(ctx, session.TenantID, row.EAN())
			if err != nil {
				return nil, fmt.Errorf("resolving base product for row %d: %w", row.Index, err)
			}

			if len(products) == 0 {
				preview.Validation.Errors = append(preview.Validation.Errors, "base product not found")
			} else {
				base := products[0]
				preview.BaseProduct = &base
				preview.Merged = mergeRow(base, row)
			}
		}

		previews[i] = preview
	}

	if err := session.MarkPreviewed(previews); err != nil {
		return nil, fmt.Errorf("marking session previewed: %w", err)
	}

	return previews, nil
}

// mergeRow overlays the row's values on the base product's fields. Row values
// win, so per-unit serial and identifier columns always come from the file.
func mergeRow(base catalogdomain.Product, row domain.BulkRow) map[string]string {
	merged := map[string]string{
		"name":  base.Name,
		"brand": base.Brand,
		"model": base.Model,
		"sku":   base.SKU,
		"ean":   base.EAN,
	}
	for key, value := range base.Specs {
		merged[key] = value
	}

	for key, value := range row.Values {
		if value != "" {
			merged[key] = value
		}
	}

	return merged
}

// Commit folds sequentially over the previews. Invalid rows count as failed
// without being attempted; a failing create is captured with its row index
// and the loop continues.
func (s *SimpleImportService) Commit(ctx context.Context, id shareddomain.ID) (domain.CommitResult, error) {
	session, err := s.session(id)
	if err != nil {
		return domain.CommitResult{}, err
	}

	if err := session.BeginCommit(); err != nil {
		return domain.CommitResult{}, err
	}

	result := domain.CommitResult{}
	for _, preview := range session.Previews {
		result = s.commitRow(ctx, session, preview, result)
		s.publishProgress(ctx, session, preview.Row.Index, result, importProgressRowEvent)
	}

	if err := session.CompleteCommit(result); err != nil {
		return domain.CommitResult{}, err
	}
	s.publishProgress(ctx, session, 0, result, importProgressCompletedEvent)

	slog.Info("import committed",
		slog.String("id", session.ID.String()),
		slog.Int("total", result.Total),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed))

	return result, nil
}

func (s *SimpleImportService) commitRow(
	ctx context.Context,
	session *domain.ImportSession,
	preview domain.RowPreview,
	result domain.CommitResult,
) domain.CommitResult {
	if !preview.Validation.Valid() {
		return result.WithFailure(preview.Row.Index, strings.Join(preview.Validation.Errors, "; "))
	}

	unit, err := s.buildUnit(session.TenantID, preview)
	if err != nil {
		return result.WithFailure(preview.Row.Index, err.Error())
	}

	_, err = s.units.CreateUnit(ctx, unit)
	if err != nil {
		slog.Warn("import row failed",
			slog.String("session_id", session.ID.String()),
			slog.Int("row", preview.Row.Index),
			slog.String("error", err.Error()))
		return result.WithFailure(preview.Row.Index, err.Error())
	}

	return result.WithSuccess()
}

func (s *SimpleImportService) buildUnit(tenantID shareddomain.ID, preview domain.RowPreview) (catalogdomain.Unit, error) {
	row := preview.Row

	condition := catalogdomain.Condition(row.Value(domain.ColumnCondition))
	if condition == "" {
		condition = catalogdomain.ConditionNew
	}

	return catalogdomain.NewUnitBuilder().
		WithTenantID(tenantID).
		WithProductID(preview.BaseProduct.ID).
		WithCategoryID(preview.BaseProduct.CategoryID).
		WithCondition(condition).
		WithSerialNumber(row.SerialNumber()).
		WithIMEIs(row.IMEI1(), row.IMEI2()).
		WithFields(row.PassThrough()).
		Build()
}

func (s *SimpleImportService) Cancel(_ context.Context, id shareddomain.ID) error {
	session, err := s.session(id)
	if err != nil {
		return err
	}

	if err := session.Cancel(); err != nil {
		return err
	}

	slog.Info("import session cancelled", slog.String("id", id.String()))
	return nil
}

func (s *SimpleImportService) session(id shareddomain.ID) (*domain.ImportSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *SimpleImportService) publishProgress(
	ctx context.Context,
	session *domain.ImportSession,
	row int,
	result domain.CommitResult,
	event string,
) {
	progress := ImportProgress{
		SessionID: session.ID.String(),
		Row:       row,
		Total:     result.Total,
		Success:   result.Success,
		Failed:    result.Failed,
		State:     string(session.State),
	}

	err := s.broker.Publish(ctx, BrokerTopicImportProgress, async.BrokerMessage{Event: event, Value: progress})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("publishing import progress", slog.String("error", err.Error()))
	}
}

// ExpireSessions drops sessions idle for longer than ttl. Committing sessions
// are kept regardless of age.
func (s *SimpleImportService) ExpireSessions(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, session := range s.sessions {
		if session.State == domain.SessionCommitting {
			continue
		}
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			expired++
		}
	}

	if expired > 0 {
		slog.Info("expired idle import sessions", slog.Int("count", expired))
	}

	return expired
}
