package articles

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/codewisedev/mongodb-pagination/errors"
	"github.com/codewisedev/mongodb-pagination/models"
	"github.com/codewisedev/mongodb-pagination/mongodb"
	"github.com/codewisedev/mongodb-pagination/objects"
	"github.com/codewisedev/mongodb-pagination/pagination"
)

type ArticlesModelTestSuite struct {
	suite.Suite
	conn            *mongodb.MongoDBConn
	model           *ArticlesModel
	insertedArticle objects.Article
}

func (s *ArticlesModelTestSuite) SetupSuite() {

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		s.T().Skip("MONGODB_URI is not set")
	}

	conn := mongodb.New(uri, "articles_test")
	err := conn.Connect()
	if err != nil {
		s.FailNow("Create MongoDB connection failed", err)
	}

	articlesModel, err := NewArticlesModel(&conn)
	if err != nil {
		defer conn.Disconnect()
		s.FailNow("Setup articles model failed", err)
	}

	s.model = articlesModel
	s.conn = &conn
}

func (s *ArticlesModelTestSuite) BeforeTest(suiteName, testName string) {

	if testName == "TestInsert" || testName == "TestSearch" {
		return
	}

	s.insertedArticle = fakeArticle()
	s.Require().NoError(s.model.Insert(s.insertedArticle), "Setup test failed from inserting article")
}

func (s *ArticlesModelTestSuite) AfterTest(suiteName, testName string) {

	_, err := s.model.Coll.DeleteMany(context.Background(), bson.D{})
	s.Require().NoError(err)
}

func (s *ArticlesModelTestSuite) TearDownSuite() {

	if s.conn == nil {
		return
	}

	s.conn.GetDatabase().Drop(context.Background())
	s.conn.Disconnect()
}

func (s *ArticlesModelTestSuite) TestInsert() {

	s.Run("Should insert valid article properly", func() {

		article := fakeArticle()

		err := s.model.Insert(article)
		s.Require().NoError(err, "Inserting article failed")

		actual, err := s.model.GetByID(article.ArticleID)
		s.Require().NoError(err, "Reading inserted article failed")
		s.Require().EqualValues(article, actual, "Read data is not the same as inserted")
	})

	s.Run("Should throw error when insert article with existed article ID", func() {

		article := fakeArticle()
		s.Require().NoError(s.model.Insert(article), "Inserting article failed")

		newArticle := fakeArticle()
		newArticle.ArticleID = article.ArticleID

		err := s.model.Insert(newArticle)
		s.Require().True(errors.IsError(err, errors.DuplicatedObjectIDError.New(article.ArticleID)))
	})

	s.Run("Should throw error when insert article without required fields", func() {

		invalidArticle := fakeArticle()
		invalidArticle.Title = ""

		s.Require().Error(s.model.Insert(invalidArticle), "Collection schema should reject empty title")
	})
}

func (s *ArticlesModelTestSuite) TestGetByID() {

	s.Run("Should get the article by article_id properly", func() {

		actual, err := s.model.GetByID(s.insertedArticle.ArticleID)
		s.Require().NoError(err, "Getting exist article failed")
		s.Require().EqualValues(s.insertedArticle, actual)
	})

	s.Run("Should throw the error when give non-exist article_id", func() {

		itemID := "non-exist_id"

		actual, err := s.model.GetByID(itemID)
		s.Require().Equal(errors.ObjectIDNotFoundError.New(itemID), err, "Should throw error")
		s.Require().Empty(actual)
	})
}

func (s *ArticlesModelTestSuite) TestSearch() {

	articles := make([]objects.Article, 0, 5)
	for i := 1; i <= 5; i++ {

		author := "Author A"
		if i%2 == 0 {
			author = "Author B"
		}

		articles = append(articles, objects.Article{
			ArticleID: fmt.Sprintf("article_%d", i),
			Title:     fmt.Sprintf("Title %d", i),
			Author:    author,
			Summary:   gofakeit.SentenceSimple(),
			Tags:      []string{"go", fmt.Sprintf("tag_%d", i)},
		})
	}

	for _, article := range articles {
		s.Require().NoError(s.model.Insert(article), "Insert articles before testing failed")
	}

	s.Run("Should walk the whole feed with cursors exactly once", func() {

		var walked []objects.Article
		var cursor string

		for i := 0; i < len(articles)+1; i++ {

			page, err := s.model.Search(SearchOption{Limit: 2, Cursor: cursor})
			s.Require().NoError(err, "Searching articles failed")
			s.Require().Equal(len(articles), page.Total, "Total must be identical on every page")

			if len(page.Items) == 0 {
				s.Require().Empty(page.NextCursor)
				break
			}

			walked = append(walked, page.Items...)
			cursor = page.NextCursor
		}

		expected := []objects.Article{articles[4], articles[3], articles[2], articles[1], articles[0]}
		s.Require().EqualValues(expected, walked)
	})

	s.Run("Should narrow total with author prefilter", func() {

		page, err := s.model.Search(SearchOption{
			Author: models.MatchOption{MatchType: models.EqualMatchType, Value: "Author B"},
			Limit:  10,
		})
		s.Require().NoError(err)
		s.Require().Equal(2, page.Total)
		s.Require().EqualValues([]objects.Article{articles[3], articles[1]}, page.Items)
	})

	s.Run("Should match partial title ascending", func() {

		page, err := s.model.Search(SearchOption{
			Title: models.MatchOption{MatchType: models.PartialMatchType, Value: "title"},
			Sort:  pagination.Ascending,
			Limit: 3,
		})
		s.Require().NoError(err)
		s.Require().Equal(5, page.Total)
		s.Require().EqualValues(articles[:3], page.Items)
	})

	s.Run("Should filter by tags", func() {

		page, err := s.model.Search(SearchOption{Tags: []string{"tag_2", "tag_4"}})
		s.Require().NoError(err)
		s.Require().Equal(2, page.Total)
	})

	s.Run("Should throw error when set invalid or unsupported match type", func() {

		result, err := s.model.Search(SearchOption{
			Title: models.MatchOption{MatchType: 255, Value: "title"},
		})
		s.Require().Error(err, "Should have returned error")
		s.Require().Empty(result.Items)
	})

	s.Run("Should throw error when set negative limit", func() {

		result, err := s.model.Search(SearchOption{Limit: -5})
		s.Require().True(errors.IsError(err, errors.InvalidLimitError.New(-5)))
		s.Require().Empty(result.Items)
	})
}

func (s *ArticlesModelTestSuite) TestUpdate() {

	s.Run("Should update exist article properly", func() {

		articleToUpdate := fakeArticle()
		articleToUpdate.ArticleID = s.insertedArticle.ArticleID

		s.Require().NoError(s.model.Update(articleToUpdate))

		actual, err := s.model.GetByID(articleToUpdate.ArticleID)
		s.Require().NoError(err, "Getting updated article failed")
		s.Require().EqualValues(articleToUpdate, actual)
	})

	s.Run("Should throw error when update non-exist article", func() {

		articleToUpdate := fakeArticle()

		err := s.model.Update(articleToUpdate)
		s.Require().True(errors.IsError(err, errors.ObjectIDNotFoundError.New(articleToUpdate.ArticleID)))
	})
}

func (s *ArticlesModelTestSuite) TestDelete() {

	s.Run("Should delete exist article properly", func() {

		s.Require().NoError(s.model.Delete(s.insertedArticle.ArticleID), "Delete exist article failed")

		actual, err := s.model.GetByID(s.insertedArticle.ArticleID)
		s.Require().Error(err, "Should throw error after getting deleted article")
		s.Require().Empty(actual, "The article should have been empty")
	})

	s.Run("Should throw error when delete non-exist article", func() {

		s.Require().Error(s.model.Delete(s.insertedArticle.ArticleID))
	})
}

func TestArticlesModel(t *testing.T) {
	suite.Run(t, new(ArticlesModelTestSuite))
}

func fakeArticle() objects.Article {

	return objects.Article{
		ArticleID: fmt.Sprintf("article_%s", gofakeit.UUID()),
		Title:     gofakeit.BookTitle(),
		Author:    gofakeit.Name(),
		Summary:   gofakeit.SentenceSimple(),
		Tags:      []string{gofakeit.BookGenre()},
	}
}
