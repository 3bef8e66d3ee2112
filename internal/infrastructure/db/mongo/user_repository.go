package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/lemonqwest/household-api/internal/core/domain"
)

const userCollection = "users"

// UserRepository persists household members in MongoDB. PINs are stored as
// bcrypt hashes, so a PIN lookup walks the credentialed documents and
// compares hashes; the household user set is small enough that this stays
// cheap. PIN uniqueness across users is enforced at creation time.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type userDoc struct {
	ID            string `bson:"_id"`
	Name          string `bson:"name"`
	Role          string `bson:"role"`
	TokenBalance  int    `bson:"token_balance"`
	DisplayName   string `bson:"display_name,omitempty"`
	AvatarType    string `bson:"avatar_type"`
	AvatarData    string `bson:"avatar_data"`
	FavoriteColor string `bson:"favorite_color,omitempty"`
	IsAdmin       bool   `bson:"is_admin"`
	PINHash       []byte `bson:"pin_hash,omitempty"`
	CreatedAt     int64  `bson:"created_at"`
	UpdatedAt     int64  `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:            d.ID,
		Name:          d.Name,
		Role:          domain.UserRole(d.Role),
		TokenBalance:  d.TokenBalance,
		DisplayName:   d.DisplayName,
		AvatarType:    domain.AvatarType(d.AvatarType),
		AvatarData:    d.AvatarData,
		FavoriteColor: d.FavoriteColor,
		IsAdmin:       d.IsAdmin,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByPIN(ctx context.Context, pin domain.PIN) (*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"pin_hash": bson.M{"$exists": true}})
	if err != nil {
		return nil, fmt.Errorf("find users with pin: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		if bcrypt.CompareHashAndPassword(doc.PINHash, []byte(pin.Value())) == nil {
			return doc.toDomain(), nil
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return nil, nil
}

func (r *UserRepository) FindByRole(ctx context.Context, role domain.UserRole) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"role": string(role)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by role: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User, pin *domain.PIN) (*domain.User, error) {
	now := time.Now().UTC().Unix()
	doc := userDoc{
		ID:            user.ID,
		Name:          user.Name,
		Role:          string(user.Role),
		TokenBalance:  user.TokenBalance,
		DisplayName:   user.DisplayName,
		AvatarType:    string(user.AvatarType),
		AvatarData:    user.AvatarData,
		FavoriteColor: user.FavoriteColor,
		IsAdmin:       user.IsAdmin,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if pin != nil {
		// Reject a PIN already held by another user before hashing; two
		// users matching the same PIN would make FindByPIN ambiguous.
		existing, err := r.FindByPIN(ctx, *pin)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: pin already in use", domain.ErrUserExists)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(pin.Value()), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash pin: %w", err)
		}
		doc.PINHash = hash
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	update := bson.M{"$set": bson.M{
		"name":           user.Name,
		"display_name":   user.DisplayName,
		"avatar_type":    string(user.AvatarType),
		"avatar_data":    user.AvatarData,
		"favorite_color": user.FavoriteColor,
		"updated_at":     time.Now().UTC().Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, user.ID)
}
