package application

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/usign/mortgage-prequal/internal/storage"
	"github.com/usign/mortgage-prequal/pkg/affordability"
	"github.com/usign/mortgage-prequal/pkg/constants"
	"github.com/usign/mortgage-prequal/pkg/mathutil"
	"go.uber.org/zap"
)

// Store owns the current application record: it hydrates it from the keyed
// store at construction, merges section updates, derives affordability
// figures through the engine, and persists on demand or on the autosave
// timer. All derived outputs are computed from current state on every call;
// nothing is cached.
type Store struct {
	mu      sync.Mutex
	data    Data
	kv      storage.KV
	logger  *zap.Logger
	stopped chan struct{}
	stop    chan struct{}
}

// NewStore hydrates the application record from the keyed store. A missing
// or unparseable stored record falls back to the all-zero default.
func NewStore(logger *zap.Logger, kv storage.KV) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	store := &Store{
		data:   DefaultData(),
		kv:     kv,
		logger: logger,
	}

	raw, err := kv.Get(constants.StorageKeyApplication)
	switch {
	case err == nil:
		var data Data
		if unmarshalErr := json.Unmarshal(raw, &data); unmarshalErr != nil {
			logger.Warn("stored application record is unreadable, starting fresh",
				zap.String("op", "application.NewStore"),
				zap.Error(unmarshalErr),
			)
		} else {
			store.data = data
		}
	case errors.Is(err, storage.ErrNotFound):
		// First visit, nothing saved yet.
	default:
		logger.Warn("failed to load application record, starting fresh",
			zap.String("op", "application.NewStore"),
			zap.Error(err),
		)
	}

	return store
}

// StartAutosave begins periodic persistence on the given interval. It is
// idempotent per store lifetime; call Close to stop the timer.
func (s *Store) StartAutosave(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	if interval <= 0 {
		interval = constants.AutosaveIntervalSeconds * time.Second
	}

	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})

	go func(stop, stopped chan struct{}) {
		defer close(stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.SaveProgress(); err != nil {
					s.logger.Warn("autosave failed",
						zap.String("op", "application.autosave"),
						zap.Error(err),
					)
				}
			case <-stop:
				return
			}
		}
	}(s.stop, s.stopped)
}

// Close stops the autosave timer. It does not flush; a failed final save
// would be indistinguishable from a crash, and the record was saved at most
// one interval ago.
func (s *Store) Close() {
	s.mu.Lock()
	stop, stopped := s.stop, s.stopped
	s.stop, s.stopped = nil, nil
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-stopped
	}
}

// Data returns a snapshot of the current record.
func (s *Store) Data() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// UpdatePersonalInfo merges the given fields into the personal-info section.
func (s *Store) UpdatePersonalInfo(update PersonalInfoUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update.apply(&s.data.PersonalInfo)
}

// UpdateEmployment merges the given fields into the employment section.
func (s *Store) UpdateEmployment(update EmploymentUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update.apply(&s.data.Employment)
}

// UpdateAssets merges the given fields into the assets section.
func (s *Store) UpdateAssets(update AssetsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update.apply(&s.data.Assets)
}

// UpdateDebts merges the given fields into the debts section.
func (s *Store) UpdateDebts(update DebtsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update.apply(&s.data.Debts)
}

// AddDocument records an uploaded document name on the application.
func (s *Store) AddDocument(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Documents = append(s.data.Documents, name)
}

// CalculateDTI returns the back-end DTI for the current record.
func (s *Store) CalculateDTI() float64 {
	data := s.Data()
	return affordability.ComputeDTI(data.GrossMonthlyIncome(), data.Debts.TotalMonthly())
}

// CalculateMaxLoanAmount projects the maximum loan using the simplified
// front-end policy: whatever is left of 28% of gross income after existing
// debts, over a 360-month term with no discounting. Never negative.
func (s *Store) CalculateMaxLoanAmount() float64 {
	data := s.Data()
	availableForMortgage := data.GrossMonthlyIncome() * constants.FrontEndRatio
	maxMonthlyPayment := availableForMortgage - data.Debts.TotalMonthly()
	return mathutil.Max(0, maxMonthlyPayment*constants.ThirtyYearTermMonths)
}

// PrequalSummary builds the results-screen payload from the current record.
func (s *Store) PrequalSummary() affordability.PrequalSummary {
	data := s.Data()
	return affordability.BuildPrequalSummary(affordability.PrequalInput{
		MonthlyIncome:     data.GrossMonthlyIncome(),
		TotalMonthlyDebts: data.Debts.TotalMonthly(),
		MaxLoanAmount:     s.CalculateMaxLoanAmount(),
		DownPayment:       data.Assets.DownPayment,
	})
}

// SaveProgress serializes the record under the mortgageApplication key.
func (s *Store) SaveProgress() error {
	s.mu.Lock()
	raw, err := json.Marshal(s.data)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.kv.Set(constants.StorageKeyApplication, raw)
}

// ClearApplication resets the in-memory record to defaults and deletes the
// persisted copy.
func (s *Store) ClearApplication() error {
	s.mu.Lock()
	s.data = DefaultData()
	s.mu.Unlock()
	return s.kv.Delete(constants.StorageKeyApplication)
}
