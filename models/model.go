package models

import (
	"context"
	"errors"

	serverError "github.com/codewisedev/mongodb-pagination/errors"
	"github.com/codewisedev/mongodb-pagination/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Model[T pagination.Item] interface {
	GetCollectionName() string
	Insert(item T) error
	GetByID(itemID string) (T, error)
	List(opt pagination.Options) (pagination.Page[T], error)
	Update(item T) error
	Delete(itemID string) error
}

// BaseModel binds a collection to the identifier key its items are
// cursor-paginated by.
type BaseModel[T pagination.Item] struct {
	Coll      *mongo.Collection
	ItemIDKey string

	paginator *pagination.Paginator[T]
}

func (m *BaseModel[T]) Inject(coll *mongo.Collection, itemIDKey string) error {

	paginator, err := pagination.New[T](coll, itemIDKey)
	if err != nil {
		return err
	}

	m.Coll = coll
	m.ItemIDKey = itemIDKey
	m.paginator = paginator

	return nil
}

func (m BaseModel[T]) Insert(item T) error {

	_, err := m.Coll.InsertOne(context.Background(), item)
	if err != nil {

		if mongo.IsDuplicateKeyError(err) {
			return serverError.DuplicatedObjectIDError.New(item.GetID())
		}

		return err
	}

	return nil
}

func (m BaseModel[T]) GetByID(itemID string) (item T, err error) {

	result := m.Coll.FindOne(context.Background(), bson.D{{Key: m.ItemIDKey, Value: itemID}})

	err = result.Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = serverError.ObjectIDNotFoundError.New(itemID)
		return
	}

	return
}

// List returns one cursor page of the collection. Prefilter stages in opt run
// before the pagination stages, so Total reflects the prefiltered set.
func (m BaseModel[T]) List(opt pagination.Options) (pagination.Page[T], error) {
	return m.paginator.Paginate(context.Background(), opt)
}

func (m BaseModel[T]) Update(item T) error {

	filter := EqualMatchBson(m.ItemIDKey, item.GetID())

	b, err := bson.Marshal(item)
	if err != nil {
		return err
	}

	var parsedBson bson.D
	err = bson.Unmarshal(b, &parsedBson)
	if err != nil {
		return err
	}

	var updateBson bson.D
	for _, keyValue := range parsedBson {

		if keyValue.Key != m.ItemIDKey {
			updateBson = append(updateBson, keyValue)
		}
	}

	result := m.Coll.FindOneAndUpdate(context.Background(), filter, bson.D{{Key: "$set", Value: updateBson}})
	if err := result.Err(); err != nil {

		if errors.Is(err, mongo.ErrNoDocuments) {
			return serverError.ObjectIDNotFoundError.New(item.GetID())
		}

		return err
	}

	return nil
}

func (m BaseModel[T]) Delete(itemID string) error {

	filter := bson.D{{Key: m.ItemIDKey, Value: itemID}}

	result := m.Coll.FindOneAndDelete(context.Background(), filter)
	if err := result.Err(); err != nil {

		if errors.Is(err, mongo.ErrNoDocuments) {
			return serverError.ObjectIDNotFoundError.New(itemID)
		}

		return err
	}

	return nil
}
