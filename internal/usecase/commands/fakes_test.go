//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"chefbook/internal/domain/binding"
	"chefbook/internal/domain/order"
	"chefbook/internal/domain/review"
	"chefbook/internal/domain/tip"
	"chefbook/internal/domain/user"
	"chefbook/internal/infra"
	"chefbook/internal/infra/db"
	"chefbook/internal/infra/notify"
	"chefbook/internal/infra/payment"
	"chefbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the postgres layer. Its guarded
// sections mirror the conditional updates the real repositories issue, so
// idempotency and capacity behavior can be exercised without a database.
type fakeStore struct {
	mu sync.Mutex

	orders        map[uuid.UUID]*order.Order
	ordersByNo    map[int64]uuid.UUID
	reserved      map[string]int32
	bindings      map[uuid.UUID]*binding.Binding
	reviews       []*review.Review
	tips          map[uuid.UUID]*shared.TipSnapshot
	notifications []fakeNotification
	users         map[uuid.UUID]*shared.UserSnapshot
	chefsByCode   map[string]*shared.ChefSnapshot
	dishSpecs     map[uuid.UUID]order.DishSpec
	recalcedDish  []uuid.UUID
	recalcedChef  []uuid.UUID
}

type fakeNotification struct {
	UserID uuid.UUID
	Kind   string
	Title  string
	Body   string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:      make(map[uuid.UUID]*order.Order),
		ordersByNo:  make(map[int64]uuid.UUID),
		reserved:    make(map[string]int32),
		bindings:    make(map[uuid.UUID]*binding.Binding),
		tips:        make(map[uuid.UUID]*shared.TipSnapshot),
		users:       make(map[uuid.UUID]*shared.UserSnapshot),
		chefsByCode: make(map[string]*shared.ChefSnapshot),
		dishSpecs:   make(map[uuid.UUID]order.DishSpec),
	}
}

func ledgerKey(dishID uuid.UUID, date string) string {
	return dishID.String() + "|" + date
}

func (s *fakeStore) reservedFor(dishID uuid.UUID, date string) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserved[ledgerKey(dishID, date)]
}

func (s *fakeStore) putOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = o
	s.ordersByNo[o.OrderNo()] = o.ID()
}

func (s *fakeStore) orderStatus(id uuid.UUID) order.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id].Status()
}

// withStatus rebuilds the stored order with a new status, the way a row
// update would read back.
func withOrderStatus(o *order.Order, status order.Status, reason string, completedAt *time.Time) *order.Order {
	if completedAt == nil {
		completedAt = o.CompletedAt()
	}
	if reason == "" {
		reason = o.CancelReason()
	}
	return order.ReconstructOrder(
		o.ID(), o.OrderNo(), o.FoodieID(), o.ChefID(),
		o.Lines(), o.Total(), o.DeliveryAt(), o.Address(), o.Remark(),
		reason, o.Reviewed(), o.PaymentRef(),
		status, o.CreatedAt(), o.UpdatedAt(), completedAt,
	)
}

func conflictErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindConflict)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// ------------------------------------------------------------------
// unit of work
// ------------------------------------------------------------------

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Orders() shared.OrderRepository                 { return &fakeOrderRepo{store: t.store} }
func (t *fakeTx) Availability() shared.AvailabilityRepository    { return &fakeAvailabilityRepo{store: t.store} }
func (t *fakeTx) Bindings() shared.BindingRepository             { return &fakeBindingRepo{store: t.store} }
func (t *fakeTx) Reviews() shared.ReviewRepository               { return &fakeReviewRepo{store: t.store} }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository      { return &fakeRatingStatsRepo{store: t.store} }
func (t *fakeTx) Tips() shared.TipRepository                     { return &fakeTipRepo{store: t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository   { return &fakeNotificationRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository                   { return &fakeUserRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads                     { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                                    { return nil }

// ------------------------------------------------------------------
// command reads
// ------------------------------------------------------------------

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) BindingByFoodie(_ context.Context, foodieID uuid.UUID) (*shared.BindingSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bindings[foodieID]
	if !ok {
		return nil, notFoundErr("binding not found")
	}
	return &shared.BindingSnapshot{FoodieID: b.FoodieID(), ChefID: b.ChefID(), Code: b.Code()}, nil
}

func (r *fakeReads) ChefByBindingCode(_ context.Context, code string) (*shared.ChefSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.chefsByCode[code]
	if !ok {
		return nil, notFoundErr("chef not found")
	}
	return c, nil
}

func (r *fakeReads) DishSpecs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]order.DishSpec, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make(map[uuid.UUID]order.DishSpec, len(ids))
	for _, id := range ids {
		if spec, ok := r.store.dishSpecs[id]; ok {
			result[id] = spec
		}
	}
	return result, nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, notFoundErr("user not found")
	}
	return u, nil
}

// ------------------------------------------------------------------
// repositories
// ------------------------------------------------------------------

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
	r.store.putOrder(o)
	return o.ID(), nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _ db.DBTX, orderID uuid.UUID, from, to order.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[orderID]
	if !ok || o.Status() != from {
		return conflictErr("order status moved")
	}
	r.store.orders[orderID] = withOrderStatus(o, to, "", nil)
	return nil
}

func (r *fakeOrderRepo) Complete(_ context.Context, _ db.DBTX, orderID uuid.UUID, completedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[orderID]
	if !ok || o.Status() != order.StatusDelivering {
		return conflictErr("order status moved")
	}
	r.store.orders[orderID] = withOrderStatus(o, order.StatusCompleted, "", &completedAt)
	return nil
}

func (r *fakeOrderRepo) Cancel(_ context.Context, _ db.DBTX, orderID uuid.UUID, from order.Status, reason string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[orderID]
	if !ok || o.Status() != from {
		return conflictErr("order status moved")
	}
	r.store.orders[orderID] = withOrderStatus(o, order.StatusCancelled, reason, nil)
	return nil
}

func (r *fakeOrderRepo) SetPaymentRef(_ context.Context, _ db.DBTX, orderID uuid.UUID, ref string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[orderID]
	if !ok {
		return notFoundErr("order not found")
	}
	r.store.orders[orderID] = order.ReconstructOrder(
		o.ID(), o.OrderNo(), o.FoodieID(), o.ChefID(),
		o.Lines(), o.Total(), o.DeliveryAt(), o.Address(), o.Remark(),
		o.CancelReason(), o.Reviewed(), ref,
		o.Status(), o.CreatedAt(), o.UpdatedAt(), o.CompletedAt(),
	)
	return nil
}

func (r *fakeOrderRepo) MarkReviewed(_ context.Context, _ db.DBTX, orderID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[orderID]
	if !ok || o.Reviewed() {
		return conflictErr("already reviewed")
	}
	r.store.orders[orderID] = order.ReconstructOrder(
		o.ID(), o.OrderNo(), o.FoodieID(), o.ChefID(),
		o.Lines(), o.Total(), o.DeliveryAt(), o.Address(), o.Remark(),
		o.CancelReason(), true, o.PaymentRef(),
		o.Status(), o.CreatedAt(), o.UpdatedAt(), o.CompletedAt(),
	)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, _ db.DBTX, orderID uuid.UUID) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.orders[orderID]
	if !ok {
		return nil, notFoundErr("order not found")
	}
	return o, nil
}

func (r *fakeOrderRepo) FindByOrderNo(_ context.Context, _ db.DBTX, orderNo int64) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	id, ok := r.store.ordersByNo[orderNo]
	if !ok {
		return nil, notFoundErr("order not found")
	}
	return r.store.orders[id], nil
}

type fakeAvailabilityRepo struct {
	store *fakeStore
}

func (r *fakeAvailabilityRepo) Reserve(_ context.Context, _ db.DBTX, dishID uuid.UUID, date string, qty, maxUnits int32) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := ledgerKey(dishID, date)
	if r.store.reserved[key]+qty > maxUnits {
		return conflictErr("daily capacity exhausted")
	}
	r.store.reserved[key] += qty
	return nil
}

func (r *fakeAvailabilityRepo) Release(_ context.Context, _ db.DBTX, dishID uuid.UUID, date string, qty int32) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := ledgerKey(dishID, date)
	r.store.reserved[key] -= qty
	if r.store.reserved[key] < 0 {
		r.store.reserved[key] = 0
	}
	return nil
}

func (r *fakeAvailabilityRepo) Reserved(_ context.Context, _ db.DBTX, dishID uuid.UUID, date string) (int32, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.reserved[ledgerKey(dishID, date)], nil
}

type fakeBindingRepo struct {
	store *fakeStore
}

func (r *fakeBindingRepo) TryInsert(_ context.Context, _ db.DBTX, b *binding.Binding) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.bindings[b.FoodieID()]; exists {
		return infra.WrapRepoErr("binding exists", nil, infra.KindDuplicateKey)
	}
	r.store.bindings[b.FoodieID()] = b
	return nil
}

func (r *fakeBindingRepo) Delete(_ context.Context, _ db.DBTX, foodieID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.bindings[foodieID]; !exists {
		return notFoundErr("binding not found")
	}
	delete(r.store.bindings, foodieID)
	return nil
}

func (r *fakeBindingRepo) FindByFoodie(_ context.Context, _ db.DBTX, foodieID uuid.UUID) (*binding.Binding, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bindings[foodieID]
	if !ok {
		return nil, notFoundErr("binding not found")
	}
	return b, nil
}

type fakeReviewRepo struct {
	store *fakeStore
}

func (r *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rv *review.Review) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.reviews = append(r.store.reviews, rv)
	return rv.ID(), nil
}

func (r *fakeReviewRepo) SoftDelete(_ context.Context, _ db.DBTX, reviewID uuid.UUID) error {
	return nil
}

type fakeRatingStatsRepo struct {
	store *fakeStore
}

func (r *fakeRatingStatsRepo) RecalcDishRating(_ context.Context, _ db.DBTX, dishID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.recalcedDish = append(r.store.recalcedDish, dishID)
	return nil
}

func (r *fakeRatingStatsRepo) RecalcChefRating(_ context.Context, _ db.DBTX, chefID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.recalcedChef = append(r.store.recalcedChef, chefID)
	return nil
}

type fakeTipRepo struct {
	store *fakeStore
}

func (r *fakeTipRepo) Create(_ context.Context, _ db.DBTX, t *tip.Tip, paymentRef string) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tips[t.ID()] = &shared.TipSnapshot{
		ID:          t.ID(),
		FoodieID:    t.FoodieID(),
		ChefID:      t.ChefID(),
		OrderID:     t.OrderID(),
		AmountCents: t.AmountCents(),
		Status:      t.Status(),
	}
	return t.ID(), nil
}

func (r *fakeTipRepo) Settle(_ context.Context, _ db.DBTX, tipID uuid.UUID, to tip.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.tips[tipID]
	if !ok || t.Status != tip.StatusPending {
		return conflictErr("tip already settled")
	}
	t.Status = to
	return nil
}

func (r *fakeTipRepo) FindByID(_ context.Context, _ db.DBTX, tipID uuid.UUID) (*shared.TipSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.tips[tipID]
	if !ok {
		return nil, notFoundErr("tip not found")
	}
	snapshot := *t
	return &snapshot, nil
}

type fakeNotificationRepo struct {
	store *fakeStore
}

func (r *fakeNotificationRepo) Create(_ context.Context, _ db.DBTX, userID uuid.UUID, kind, title, body string, _ []byte) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notifications = append(r.store.notifications, fakeNotification{
		UserID: userID, Kind: kind, Title: title, Body: body,
	})
	return nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, _ db.DBTX, _, _ uuid.UUID) error {
	return nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == u.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr("email taken", nil, infra.KindDuplicateKey)
		}
	}
	r.store.users[u.ID()] = &shared.UserSnapshot{
		ID: u.ID(), Email: u.Email().Value(), Role: u.Role(), Nickname: u.Nickname(),
	}
	return u.ID(), nil
}

// ------------------------------------------------------------------
// notifier
// ------------------------------------------------------------------

type fakeNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *fakeNotifier) Publish(_ context.Context, event notify.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *fakeNotifier) eventsFor(userID uuid.UUID) []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var result []notify.Event
	for _, e := range n.events {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result
}

// ------------------------------------------------------------------
// payment gateway
// ------------------------------------------------------------------

type fakeGateway struct {
	verifyErr error
}

func (g *fakeGateway) CreateIntent(reference string, amountCents int64) payment.Intent {
	return payment.Intent{
		Reference:   reference,
		AmountCents: amountCents,
		MerchantID:  "test-merchant",
		Signature:   "sig",
	}
}

func (g *fakeGateway) VerifyNotice(_ payment.Notice) error {
	return g.verifyErr
}
