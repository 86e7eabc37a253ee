package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gymspot/internal/auth"
	"gymspot/internal/domain/promotions"
	"gymspot/internal/domain/storage"
	"gymspot/internal/domain/subscriptions"
	"gymspot/internal/domain/users"
	venuereviews "gymspot/internal/domain/venuereview"
	"gymspot/internal/domain/venues"
	"gymspot/internal/notifications"
	"gymspot/internal/payments"
	"gymspot/internal/search"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestApplication(t *testing.T, store *storage.Container) *application {
	t.Helper()

	codes, err := promotions.NewCodec("test-salt")
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()

	var lookup search.Lookup
	if store.Venues != nil {
		lookup = store.Venues
	}

	mm := &mockMailer{}
	mm.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(200, nil).Maybe()

	return &application{
		config: config{
			env:         "test",
			frontendURL: "http://localhost:3000",
			auth: authConfig{
				basic: basicConfig{user: "admin", pass: "secret"},
			},
			mail: mailConfig{resetExp: time.Hour},
		},
		store:         store,
		logger:        logger,
		mailer:        mm,
		authenticator: auth.NewJWTAuthenticator("test-secret", "test-refresh-secret", "GymSpot", "GymSpot", time.Hour, 24*time.Hour),
		search:        search.NewAggregator(lookup, logger),
		payments:      payments.NewPaymentManager(),
		push:          notifications.NoopSender{},
		codes:         codes,
		now:           func() time.Time { return testNow },
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func newJSONRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func bearer(t *testing.T, app *application, user *users.User, req *http.Request) *http.Request {
	t.Helper()
	access, _, err := app.authenticator.GenerateTokens(user.ID, string(user.Role))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+access)
	return req
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

type errorBody struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Status    int               `json:"status"`
	Retryable bool              `json:"retryable"`
	Errors    map[string]string `json:"errors"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(templateFile, username, email string, data any) (int, error) {
	args := m.Called(templateFile, username, email, data)
	return args.Int(0), args.Error(1)
}

// fakeUsers keeps users in memory. Unimplemented methods panic through the
// embedded nil interface.
type fakeUsers struct {
	users.Store
	byID    map[int64]*users.User
	refresh map[int64]string
	resets  map[string]string
	nextID  int64
}

func newFakeUsers(list ...*users.User) *fakeUsers {
	f := &fakeUsers{byID: map[int64]*users.User{}, refresh: map[int64]string{}, resets: map[string]string{}, nextID: 100}
	for _, u := range list {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *users.User) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return users.ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*users.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, users.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*users.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, users.ErrNotFound
}

func (f *fakeUsers) SaveRefreshToken(_ context.Context, id int64, token string) error {
	f.refresh[id] = token
	return nil
}

func (f *fakeUsers) GetRefreshToken(_ context.Context, id int64) (string, error) {
	if tok, ok := f.refresh[id]; ok {
		return tok, nil
	}
	return "", users.ErrNotFound
}

func (f *fakeUsers) DeleteRefreshToken(_ context.Context, id int64) error {
	delete(f.refresh, id)
	return nil
}

func (f *fakeUsers) UpdateResetToken(_ context.Context, email, token string, _ time.Time) error {
	f.resets[email] = token
	return nil
}

func (f *fakeUsers) ResetPassword(_ context.Context, token, _ string) error {
	for email, t := range f.resets {
		if t == token {
			delete(f.resets, email)
			return nil
		}
	}
	return users.ErrInvalidResetToken
}

func (f *fakeUsers) UpdateRole(_ context.Context, id int64, role users.Role) error {
	u, ok := f.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	u.Role = role
	return nil
}

type fakeVenues struct {
	venues.Store
	byID      map[int64]*venues.Venue
	listings  map[venues.Kind][]venues.Listing
	findErr   error
	favorites map[[2]int64]bool
	views     int
}

func newFakeVenues(list ...*venues.Venue) *fakeVenues {
	f := &fakeVenues{
		byID:      map[int64]*venues.Venue{},
		listings:  map[venues.Kind][]venues.Listing{},
		favorites: map[[2]int64]bool{},
	}
	for _, v := range list {
		f.byID[v.ID] = v
	}
	return f
}

func (f *fakeVenues) GetByID(_ context.Context, id int64) (*venues.Venue, error) {
	if v, ok := f.byID[id]; ok {
		return v, nil
	}
	return nil, venues.ErrVenueNotFound
}

func (f *fakeVenues) IncrementViews(context.Context, int64) error {
	f.views++
	return nil
}

func (f *fakeVenues) FavoriteIDs(_ context.Context, userID int64) (map[int64]struct{}, error) {
	ids := map[int64]struct{}{}
	for k, on := range f.favorites {
		if on && k[0] == userID {
			ids[k[1]] = struct{}{}
		}
	}
	return ids, nil
}

func (f *fakeVenues) FindListings(_ context.Context, p venues.Predicate, limit, offset int) ([]venues.Listing, int, error) {
	if f.findErr != nil {
		return nil, 0, f.findErr
	}
	rows := f.listings[p.Kind]
	total := len(rows)
	if offset >= total {
		return nil, total, nil
	}
	end := min(offset+limit, total)
	return rows[offset:end], total, nil
}

func (f *fakeVenues) ToggleFavorite(_ context.Context, userID, venueID int64) (bool, error) {
	if _, ok := f.byID[venueID]; !ok {
		return false, venues.ErrVenueNotFound
	}
	key := [2]int64{userID, venueID}
	f.favorites[key] = !f.favorites[key]
	return f.favorites[key], nil
}

func (f *fakeVenues) UpdateStatus(_ context.Context, id int64, status venues.Status) error {
	v, ok := f.byID[id]
	if !ok {
		return venues.ErrVenueNotFound
	}
	v.Status = status
	return nil
}

type fakeReviews struct {
	venuereviews.Store
	byVenue map[int64][]venuereviews.Review
}

func (f *fakeReviews) GetReviews(_ context.Context, venueID int64) ([]venuereviews.Review, error) {
	return f.byVenue[venueID], nil
}

func (f *fakeReviews) GetReviewStats(_ context.Context, venueID int64) (int, float64, error) {
	list := f.byVenue[venueID]
	if len(list) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, r := range list {
		sum += r.Rating
	}
	return len(list), float64(sum) / float64(len(list)), nil
}

type fakePromotions struct {
	promotions.Store
	byID     map[int64]*promotions.Promotion
	redeemed int
}

func (f *fakePromotions) Redeem(_ context.Context, id int64, now time.Time) (*promotions.Promotion, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, promotions.ErrPromotionNotFound
	}
	if !p.ValidAt(now) {
		return nil, promotions.ErrNotRedeemable
	}
	f.redeemed++
	p.RedemptionCount++
	return p, nil
}

type fakeSubscriptions struct {
	subscriptions.Store
	plans         map[int64]*subscriptions.Plan
	subs          map[int64]*subscriptions.Subscription
	payments      map[string]*subscriptions.Payment
	paymentStatus map[int64]subscriptions.PaymentStatus
}

func newFakeSubscriptions() *fakeSubscriptions {
	return &fakeSubscriptions{
		plans:         map[int64]*subscriptions.Plan{},
		subs:          map[int64]*subscriptions.Subscription{},
		payments:      map[string]*subscriptions.Payment{},
		paymentStatus: map[int64]subscriptions.PaymentStatus{},
	}
}

func (f *fakeSubscriptions) GetPlan(_ context.Context, id int64) (*subscriptions.Plan, error) {
	if p, ok := f.plans[id]; ok {
		return p, nil
	}
	return nil, subscriptions.ErrPlanNotFound
}

func (f *fakeSubscriptions) LiveForUser(_ context.Context, userID int64) (*subscriptions.Subscription, error) {
	for _, s := range f.subs {
		if s.UserID == userID && s.Status.Live() {
			return s, nil
		}
	}
	return nil, subscriptions.ErrSubscriptionNotFound
}

func (f *fakeSubscriptions) PendingForUser(_ context.Context, userID int64) (*subscriptions.Subscription, error) {
	for _, s := range f.subs {
		if s.UserID == userID && s.Status == subscriptions.StatusPending {
			return s, nil
		}
	}
	return nil, subscriptions.ErrSubscriptionNotFound
}

func (f *fakeSubscriptions) Activate(_ context.Context, id int64) error {
	s, ok := f.subs[id]
	if !ok || s.Status != subscriptions.StatusPending {
		return subscriptions.ErrNotPending
	}
	s.Status = subscriptions.StatusActive
	return nil
}

func (f *fakeSubscriptions) Create(_ context.Context, s *subscriptions.Subscription) error {
	s.ID = int64(len(f.subs) + 1)
	f.subs[s.ID] = s
	return nil
}

func (f *fakeSubscriptions) GetByID(_ context.Context, id int64) (*subscriptions.Subscription, error) {
	if s, ok := f.subs[id]; ok {
		return s, nil
	}
	return nil, subscriptions.ErrSubscriptionNotFound
}

func (f *fakeSubscriptions) Cancel(_ context.Context, id int64) error {
	s, ok := f.subs[id]
	if !ok || s.Status == subscriptions.StatusCanceled || s.Status == subscriptions.StatusExpired {
		return subscriptions.ErrNotCancelable
	}
	s.Status = subscriptions.StatusCanceled
	return nil
}

func (f *fakeSubscriptions) GetPaymentByProviderRef(_ context.Context, ref string) (*subscriptions.Payment, error) {
	if p, ok := f.payments[ref]; ok {
		return p, nil
	}
	return nil, subscriptions.ErrPaymentNotFound
}

func (f *fakeSubscriptions) SetPaymentStatus(_ context.Context, id int64, status subscriptions.PaymentStatus) error {
	f.paymentStatus[id] = status
	return nil
}

// fakeGateway returns a canned webhook event.
type fakeGateway struct {
	payments.PaymentGateway
	event payments.WebhookEvent
	err   error
}

func (g *fakeGateway) ParseWebhook([]byte, string) (payments.WebhookEvent, error) {
	return g.event, g.err
}
