package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

type userDocument struct {
	ID       string    `bson:"_id"`
	Email    string    `bson:"email"`
	Password string    `bson:"password"` // bcrypt hash
	Nombre   string    `bson:"nombre"`
	Role     string    `bson:"role"`
	Date     time.Time `bson:"date"`
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Email:        d.Email,
		PasswordHash: d.Password,
		Nombre:       d.Nombre,
		Role:         d.Role,
		Date:         d.Date.Local(),
	}
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Init(ctx context.Context) error {
	return ensureUniqueIndex(ctx, r.coll, "email")
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Date.IsZero() {
		user.Date = time.Now()
	}
	if user.Role == "" {
		user.Role = domain.RoleMember
	}

	_, err := r.coll.InsertOne(ctx, userDocument{
		ID:       user.ID,
		Email:    user.Email,
		Password: user.PasswordHash,
		Nombre:   user.Nombre,
		Role:     user.Role,
		Date:     user.Date.UTC(),
	})
	return translate(err, "insert user")
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, naturalOrder())
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, *doc.toDomain())
	}
	return users, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err, "find user")
	}
	return doc.toDomain(), nil
}
