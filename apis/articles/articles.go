package articles

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	serverError "github.com/codewisedev/mongodb-pagination/errors"
	"github.com/codewisedev/mongodb-pagination/models"
	"github.com/codewisedev/mongodb-pagination/models/articles"
	"github.com/codewisedev/mongodb-pagination/mongodb"
	"github.com/codewisedev/mongodb-pagination/objects"
	"github.com/codewisedev/mongodb-pagination/pagination"
)

// listQuery is the feed query surface: cursor paging plus optional filters.
type listQuery struct {
	Limit  int      `form:"limit"`
	Cursor string   `form:"cursor"`
	Sort   string   `form:"sort"`
	Title  string   `form:"title"`
	Author string   `form:"author"`
	Tags   []string `form:"tag"`
}

type ArticlesCrudAPI struct {
	model    *articles.ArticlesModel
	validate *validator.Validate
}

func NewArticlesAPI(conn *mongodb.MongoDBConn) (*ArticlesCrudAPI, error) {

	model, err := articles.NewArticlesModel(conn)
	if err != nil {
		return nil, err
	}

	api := ArticlesCrudAPI{
		model:    model,
		validate: validator.New(),
	}

	return &api, nil
}

func (api ArticlesCrudAPI) Insert(ctx *gin.Context) error {

	var article objects.Article
	err := ctx.BindJSON(&article)
	if err != nil {
		return err
	}

	if article.ArticleID == "" {
		article.ArticleID = uuid.NewString()
	}

	err = api.validate.Struct(article)
	if err != nil {
		return err
	}

	return api.model.Insert(article)
}

func (api ArticlesCrudAPI) ReadOne(itemID string, ctx *gin.Context) (*objects.Article, error) {

	article, err := api.model.GetByID(itemID)
	if err != nil {
		return nil, err
	}

	return &article, nil
}

func (api ArticlesCrudAPI) Read(ctx *gin.Context) (*pagination.Page[objects.Article], error) {

	var query listQuery
	err := ctx.BindQuery(&query)
	if err != nil {
		return nil, err
	}

	sort, err := parseSortDirection(query.Sort)
	if err != nil {
		return nil, err
	}

	opt := articles.SearchOption{
		Limit:  query.Limit,
		Cursor: query.Cursor,
		Sort:   sort,
		Tags:   query.Tags,
	}

	if query.Title != "" {
		opt.Title = models.MatchOption{MatchType: models.PartialMatchType, Value: query.Title}
	}

	if query.Author != "" {
		opt.Author = models.MatchOption{MatchType: models.EqualMatchType, Value: query.Author}
	}

	page, err := api.model.Search(opt)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (api ArticlesCrudAPI) Update(ctx *gin.Context) error {

	var article objects.Article
	err := ctx.BindJSON(&article)
	if err != nil {
		return err
	}

	return api.model.Update(article)
}

func (api ArticlesCrudAPI) Delete(itemID string, ctx *gin.Context) error {
	return api.model.Delete(itemID)
}

func parseSortDirection(sort string) (pagination.SortDirection, error) {

	switch sort {
	case "", "desc":
		return pagination.Descending, nil
	case "asc":
		return pagination.Ascending, nil
	default:
		return 0, serverError.InvalidSortDirectionError.New(sort)
	}
}
