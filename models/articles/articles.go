package articles

import (
	"context"
	"slices"

	"github.com/codewisedev/mongodb-pagination/models"
	"github.com/codewisedev/mongodb-pagination/mongodb"
	"github.com/codewisedev/mongodb-pagination/objects"
	"github.com/codewisedev/mongodb-pagination/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const itemIDKey = "article_id"

// SearchOption narrows and pages the article feed. Cursor and Limit are
// passed through to the paginator; match options become prefilter stages, so
// Total in the returned page counts every article they match.
type SearchOption struct {
	Title  models.MatchOption `json:"title,omitempty"`
	Author models.MatchOption `json:"author,omitempty"`
	Tags   []string           `json:"tags,omitempty"`

	Limit  int                      `json:"limit"`
	Cursor string                   `json:"cursor,omitempty"`
	Sort   pagination.SortDirection `json:"sort,omitempty"`
}

type ArticlesModel struct {
	models.BaseModel[objects.Article]
}

func NewArticlesModel(conn *mongodb.MongoDBConn) (*ArticlesModel, error) {

	articlesModel := ArticlesModel{}

	err := articlesModel.init(conn)
	if err != nil {
		return nil, err
	}

	return &articlesModel, nil
}

func (m ArticlesModel) GetCollectionName() string {
	return "articles_info"
}

func (m *ArticlesModel) init(conn *mongodb.MongoDBConn) error {

	err := m.initCollection(conn)
	if err != nil {
		return err
	}

	err = m.initIndexes(conn)
	if err != nil {
		return err
	}

	coll := conn.GetDatabase().Collection(m.GetCollectionName())
	return m.Inject(coll, itemIDKey)
}

func (m ArticlesModel) initCollection(conn *mongodb.MongoDBConn) error {

	articleDB := conn.GetDatabase()
	collectionName := m.GetCollectionName()

	filter := bson.D{}
	option := options.ListCollections()
	collectionNameList, err := articleDB.ListCollectionNames(context.TODO(), filter, option)
	if err != nil {
		return err
	}

	validator := bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"required": []string{"article_id", "title", "author", "tags"},
				"properties": bson.M{
					"article_id": bson.M{
						"bsonType":    "string",
						"description": "Article ID must not be empty",
					},
					"title": bson.M{
						"bsonType":    "string",
						"description": "Title must not be empty",
					},
					"author": bson.M{
						"bsonType":    "string",
						"description": "Author must not be empty",
					},
					"summary": bson.M{
						"bsonType":    "string",
						"description": "Summary is optional free text",
					},
					"tags": bson.M{
						"bsonType":    "array",
						"uniqueItems": true,
						"items": bson.M{
							"bsonType": "string",
						},
						"description": "Tags must contains unique string elements and not be empty",
					},
				},
			},
		},
	}

	if slices.Contains(collectionNameList, collectionName) {

		cmd := bson.D{
			{Key: "collMod", Value: collectionName},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		option := options.RunCmd()
		result := articleDB.RunCommand(context.TODO(), cmd, option)
		if err := result.Err(); err != nil {
			return err
		}

		return nil
	}

	collectionOption := options.CreateCollection()
	collectionOption.SetValidator(validator)
	collectionOption.SetValidationLevel("strict")

	err = articleDB.CreateCollection(context.TODO(), collectionName, collectionOption)
	if err != nil {
		return err
	}

	return nil
}

func (m ArticlesModel) initIndexes(conn *mongodb.MongoDBConn) error {

	collectionName := m.GetCollectionName()
	coll := conn.GetDatabase().Collection(collectionName)
	cur, err := coll.Indexes().List(context.TODO())
	if err != nil {
		return err
	}

	var articleIDIndexName = "article_id_1"
	var authorIndexName = "author_1_article_id_1"

	var indexes []bson.M
	err = cur.All(context.TODO(), &indexes)
	if err != nil {
		return err
	}

	contains := slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == articleIDIndexName
	})

	if !contains {

		// The cursor key must be unique, or cursor exclusion would skip or
		// repeat items sharing an identifier.
		indexModelOption := options.Index()
		indexModelOption.SetName(articleIDIndexName)
		indexModelOption.SetUnique(true)

		indexModel := mongo.IndexModel{
			Keys: bson.D{
				{Key: "article_id", Value: 1},
			},
			Options: indexModelOption,
		}

		option := options.CreateIndexes()
		_, err = coll.Indexes().CreateOne(context.TODO(), indexModel, option)
		if err != nil {
			return err
		}
	}

	contains = slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == authorIndexName
	})

	if !contains {

		indexModelOption := options.Index()
		indexModelOption.SetName(authorIndexName)

		indexModel := mongo.IndexModel{
			Keys: bson.D{
				{Key: "author", Value: 1},
				{Key: "article_id", Value: 1},
			},
			Options: indexModelOption,
		}

		option := options.CreateIndexes()
		_, err = coll.Indexes().CreateOne(context.TODO(), indexModel, option)
		if err != nil {
			return err
		}
	}

	return nil
}

// Search runs one cursor-paginated feed query with the option's filters as
// pagination prefilter.
func (m ArticlesModel) Search(opt SearchOption) (pagination.Page[objects.Article], error) {

	var empty pagination.Page[objects.Article]

	matchConditions := bson.A{}
	if !opt.Title.IsNil() {

		matchBson, err := models.CreateMatchBson("title", opt.Title.Value, opt.Title.MatchType)
		if err != nil {
			return empty, err
		}

		matchConditions = append(matchConditions, matchBson)
	}

	if !opt.Author.IsNil() {

		matchBson, err := models.CreateMatchBson("author", opt.Author.Value, opt.Author.MatchType)
		if err != nil {
			return empty, err
		}

		matchConditions = append(matchConditions, matchBson)
	}

	if opt.Tags != nil {
		cond := bson.D{{Key: "tags", Value: bson.D{{Key: "$in", Value: opt.Tags}}}}
		matchConditions = append(matchConditions, cond)
	}

	return m.List(pagination.Options{
		Limit:     opt.Limit,
		Cursor:    opt.Cursor,
		Sort:      opt.Sort,
		Prefilter: models.MatchPrefilter(matchConditions),
	})
}
