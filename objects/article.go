package objects

import "reflect"

type Article struct {
	ArticleID string   `json:"article_id" bson:"article_id,omitempty"`
	Title     string   `json:"title" bson:"title,omitempty" validate:"required"`
	Author    string   `json:"author" bson:"author,omitempty" validate:"required"`
	Summary   string   `json:"summary" bson:"summary,omitempty"`
	Tags      []string `json:"tags" bson:"tags" validate:"required,unique"`
}

func (a Article) GetID() string {
	return a.ArticleID
}

func (a Article) IsNil() bool {
	return reflect.ValueOf(a).IsZero()
}
