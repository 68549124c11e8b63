package intake

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/truethread/storefront/internal/kvstore"
	"github.com/truethread/storefront/pkg/common"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrValidation marks a submission rejected before any persistence attempt.
var ErrValidation = errors.New("intake: missing required fields")

// Notifier attempts delivery of a submission notification. Implementations
// never fail the caller: errors are logged and swallowed inside.
type Notifier interface {
	NotifyPreBooking(ctx context.Context, b PreBooking)
	NotifyPreOrder(ctx context.Context, r PreOrderRequest)
}

// Service accepts pre-booking, pre-order and contact submissions. The stored
// record is the source of truth; notification is a secondary effect whose
// failure never fails the submission.
type Service struct {
	store    kvstore.Store
	notifier Notifier
	validate *validator.Validate
}

func NewService(store kvstore.Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		validate: validator.New(),
	}
}

// SubmitPreBooking validates, persists and then notifies. Returns the new id.
func (s *Service) SubmitPreBooking(ctx context.Context, b PreBooking) (string, error) {
	if err := s.validate.Struct(b); err != nil {
		return "", errors.Wrap(ErrValidation, err.Error())
	}
	b.ID = common.NewRecordID(PreBookingPrefix)
	b.Status = StatusPending
	b.CreatedAt = time.Now().Format(time.RFC3339)

	if err := s.put(ctx, b.ID, b); err != nil {
		return "", err
	}
	s.notifier.NotifyPreBooking(ctx, b)
	return b.ID, nil
}

// SubmitPreOrderRequest validates, persists and then notifies.
func (s *Service) SubmitPreOrderRequest(ctx context.Context, r PreOrderRequest) (string, error) {
	if err := s.validate.Struct(r); err != nil {
		return "", errors.Wrap(ErrValidation, err.Error())
	}
	r.ID = common.NewRecordID(PreOrderPrefix)
	r.Status = StatusPending
	r.CreatedAt = time.Now().Format(time.RFC3339)

	if err := s.put(ctx, r.ID, r); err != nil {
		return "", err
	}
	s.notifier.NotifyPreOrder(ctx, r)
	return r.ID, nil
}

// SubmitContactMessage validates and persists. Contact messages carry no
// notification.
func (s *Service) SubmitContactMessage(ctx context.Context, m ContactMessage) (string, error) {
	if err := s.validate.Struct(m); err != nil {
		return "", errors.Wrap(ErrValidation, err.Error())
	}
	m.ID = common.NewRecordID(ContactPrefix)
	m.Status = StatusUnread
	m.CreatedAt = time.Now().Format(time.RFC3339)

	if err := s.put(ctx, m.ID, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

func (s *Service) ListPreBookings(ctx context.Context) ([]PreBooking, error) {
	var out []PreBooking
	err := scanInto(ctx, s.store, PreBookingPrefix, &out)
	return out, err
}

func (s *Service) ListPreOrderRequests(ctx context.Context) ([]PreOrderRequest, error) {
	var out []PreOrderRequest
	err := scanInto(ctx, s.store, PreOrderPrefix, &out)
	return out, err
}

func (s *Service) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	var out []ContactMessage
	err := scanInto(ctx, s.store, ContactPrefix, &out)
	return out, err
}

func (s *Service) put(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal intake record")
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		return errors.Wrap(err, "store intake record")
	}
	return nil
}

func scanInto[T any](ctx context.Context, store kvstore.Store, prefix string, out *[]T) error {
	recs, err := store.ScanPrefix(ctx, prefix)
	if err != nil {
		return errors.Wrapf(err, "scan %s records", prefix)
	}
	for _, rec := range recs {
		var v T
		if err := json.Unmarshal(rec.Value, &v); err != nil {
			zap.L().Warn("intake: skipping undecodable record",
				zap.String("key", rec.Key), zap.Error(err))
			continue
		}
		*out = append(*out, v)
	}
	return nil
}
