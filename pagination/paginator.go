// Package pagination pages through MongoDB aggregation results with a cursor
// (the identifier of the last returned item) instead of page offsets, so that
// pages stay stable under concurrent inserts and deletes.
package pagination

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	serverError "github.com/codewisedev/mongodb-pagination/errors"
)

// DefaultLimit is the page size used when Options.Limit is left zero.
const DefaultLimit = 10

// Item is any document shape exposing the unique, totally ordered identifier
// used as the pagination key.
type Item interface {
	GetID() string
}

// SortDirection is the identifier sort order, using MongoDB sort values.
type SortDirection int

const (
	Ascending  SortDirection = 1
	Descending SortDirection = -1
)

// Page is one slice of a larger result set. Total counts every document that
// matched the prefilter, not just the documents on this page, and is the same
// on every page of a walk. NextCursor carries the identifier of the last item
// and is empty when Items is empty.
type Page[T Item] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// Options control a single Paginate call.
type Options struct {
	// Limit is the maximum number of items on the page. Zero selects
	// DefaultLimit; a negative value fails with InvalidLimitError.
	Limit int

	// Cursor is the NextCursor of the previous page, or empty for the first
	// page.
	Cursor string

	// Prefilter stages run before any pagination stage, unchanged. Total is
	// computed after them.
	Prefilter mongo.Pipeline

	// Sort is the identifier order. Zero selects Descending.
	Sort SortDirection
}

// Aggregator is the single collection capability the paginator consumes.
// *mongo.Collection satisfies it.
type Aggregator interface {
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

type Paginator[T Item] struct {
	coll      Aggregator
	itemIDKey string
}

type aggregatedPage[T any] struct {
	Total int `bson:"total"`
	Items []T `bson:"items"`
}

// New binds a paginator to a collection and the BSON key of the identifier
// field documents are ordered by.
func New[T Item](coll Aggregator, itemIDKey string) (*Paginator[T], error) {

	if coll == nil {
		return nil, fmt.Errorf("collection can not be nil")
	}

	if itemIDKey == "" {
		return nil, fmt.Errorf("item ID key can not be empty")
	}

	return &Paginator[T]{coll: coll, itemIDKey: itemIDKey}, nil
}

// Paginate runs one page query and returns the page together with the total
// count of prefiltered documents. Each call is independent; the cursor is a
// value, not a server-side session. Driver failures propagate unchanged.
func (p *Paginator[T]) Paginate(ctx context.Context, opt Options) (page Page[T], err error) {

	pipeline, err := p.buildPipeline(opt)
	if err != nil {
		return
	}

	cur, err := p.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return
	}

	var aggResultList []aggregatedPage[T]
	err = cur.All(ctx, &aggResultList)
	if err != nil {
		return
	}

	page.Items = []T{}
	if len(aggResultList) == 0 {
		return
	}

	aggResult := aggResultList[0]
	page.Total = aggResult.Total

	if len(aggResult.Items) == 0 {
		return
	}

	page.Items = aggResult.Items
	page.NextCursor = EncodeCursor(page.Items[len(page.Items)-1].GetID())

	return
}

func (p *Paginator[T]) buildPipeline(opt Options) (mongo.Pipeline, error) {

	limit := opt.Limit
	if limit == 0 {
		limit = DefaultLimit
	} else if limit < 0 {
		return nil, serverError.InvalidLimitError.New(limit)
	}

	sort := opt.Sort
	switch sort {
	case 0:
		sort = Descending
	case Ascending, Descending:
	default:
		return nil, serverError.InvalidSortDirectionError.New(int(sort))
	}

	pageQuery := bson.A{}
	if opt.Cursor != "" {

		lastItemID, err := DecodeCursor(opt.Cursor)
		if err != nil {
			return nil, err
		}

		// Strict inequality: the item at the cursor was already returned.
		exclusionOp := "$lt"
		if sort == Ascending {
			exclusionOp = "$gt"
		}

		cursorMatchStage := bson.D{
			{
				Key: "$match", Value: bson.D{
					{Key: p.itemIDKey, Value: bson.D{{Key: exclusionOp, Value: lastItemID}}},
				},
			},
		}

		pageQuery = append(pageQuery, cursorMatchStage)
	}

	pageQuery = append(pageQuery, bson.D{{Key: "$limit", Value: limit}})

	totalQuery := bson.A{
		bson.D{{Key: "$count", Value: "total"}},
	}

	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: p.itemIDKey, Value: int(sort)}}}}

	facetStage := bson.D{
		{
			Key: "$facet", Value: bson.D{
				{Key: "page_result", Value: pageQuery},
				{Key: "total_result", Value: totalQuery},
			},
		},
	}

	projectStage := bson.D{
		{
			Key: "$project", Value: bson.D{
				{Key: "items", Value: "$page_result"},
				{Key: "total", Value: bson.D{{Key: "$first", Value: "$total_result.total"}}},
			},
		},
	}

	pipeline := make(mongo.Pipeline, 0, len(opt.Prefilter)+3)
	pipeline = append(pipeline, opt.Prefilter...)
	pipeline = append(pipeline, sortStage, facetStage, projectStage)

	return pipeline, nil
}
