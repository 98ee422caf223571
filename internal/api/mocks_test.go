package api

import (
	"context"
	"testing"

	"github.com/mrseeker53/swaplap-server/internal/domain"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- function-field mocks over the store interfaces ---

type mockUserStore struct {
	findByEmailFn    func(ctx context.Context, email string) (*domain.User, bool, error)
	allFn            func(ctx context.Context) ([]bson.M, error)
	allByRoleFn      func(ctx context.Context, role string) ([]bson.M, error)
	insertFn         func(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	promoteToAdminFn func(ctx context.Context, id string) (*mongo.UpdateResult, error)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, bool, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, false, nil
}

func (m *mockUserStore) All(ctx context.Context) ([]bson.M, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return []bson.M{}, nil
}

func (m *mockUserStore) AllByRole(ctx context.Context, role string) ([]bson.M, error) {
	if m.allByRoleFn != nil {
		return m.allByRoleFn(ctx, role)
	}
	return []bson.M{}, nil
}

func (m *mockUserStore) Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, doc)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockUserStore) PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	if m.promoteToAdminFn != nil {
		return m.promoteToAdminFn(ctx, id)
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

type mockDocStore struct {
	allFn    func(ctx context.Context) ([]bson.M, error)
	insertFn func(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
}

func (m *mockDocStore) All(ctx context.Context) ([]bson.M, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return []bson.M{}, nil
}

func (m *mockDocStore) Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, doc)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

type mockProductStore struct {
	mockDocStore
	byCategoryFn func(ctx context.Context, id string) ([]bson.M, error)
}

func (m *mockProductStore) ByCategory(ctx context.Context, id string) ([]bson.M, error) {
	if m.byCategoryFn != nil {
		return m.byCategoryFn(ctx, id)
	}
	return []bson.M{}, nil
}

// fakeUsers is a stateful in-memory user store for the end-to-end
// promotion tests. Roles are keyed by document id; lookups go by email.
type fakeUsers struct {
	mockUserStore
	byEmail map[string]*domain.User // Requester lookups
	roles   map[string]string       // Target roles keyed by hex id
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail: map[string]*domain.User{},
		roles:   map[string]string{},
	}
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*domain.User, bool, error) {
	u, ok := f.byEmail[email]
	return u, ok, nil
}

func (f *fakeUsers) PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	res := &mongo.UpdateResult{}
	switch f.roles[id] {
	case "":
		res.UpsertedCount = 1 // Upsert creates the absent target
	case domain.RoleAdmin:
		res.MatchedCount = 1 // Already admin, nothing modified
	default:
		res.MatchedCount = 1
		res.ModifiedCount = 1
	}
	f.roles[id] = domain.RoleAdmin
	return res, nil
}

// newTestRouter registers the full routing table over mock stores
func newTestRouter(t *testing.T, users UserStore, products ProductStore, secret string) *gin.Engine {
	t.Helper()
	if products == nil {
		products = &mockProductStore{}
	}
	r := gin.New()
	routes := Routes(Stores{
		Users:      users,
		Banners:    &mockDocStore{},
		Categories: &mockDocStore{},
		Products:   products,
		Bookings:   &mockDocStore{},
	}, nil, secret)
	Register(r, routes, users, secret)
	return r
}
