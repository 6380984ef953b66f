package apis

import (
	"github.com/codewisedev/mongodb-pagination/errors"
	"github.com/codewisedev/mongodb-pagination/pagination"
	"github.com/gin-gonic/gin"
)

type CRUDResponse struct {
	Result any               `json:"result,omitempty"`
	Error  *errors.BaseError `json:"error,omitempty"`
}

type CrudAPI[Item pagination.Item] interface {
	Insert(ctx *gin.Context) error
	ReadOne(itemID string, ctx *gin.Context) (*Item, error)
	Read(ctx *gin.Context) (*pagination.Page[Item], error)
	Update(ctx *gin.Context) error
	Delete(itemID string, ctx *gin.Context) error
}

var OKResponse = CRUDResponse{Result: map[string]any{"status": "OK"}}
