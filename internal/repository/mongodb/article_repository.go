package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

type headerImageDocument struct {
	URL string `bson:"url"`
	Alt string `bson:"alt"`
}

type articleDocument struct {
	ID          string              `bson:"_id"`
	Title       string              `bson:"title"`
	Date        time.Time           `bson:"date"`
	HeaderImage headerImageDocument `bson:"headerImage"`
	Excerpt     string              `bson:"excerpt"`
	Category    string              `bson:"category"`
	Content     string              `bson:"content"`
}

func (d articleDocument) toDomain() *domain.Article {
	return &domain.Article{
		ID:          d.ID,
		Title:       d.Title,
		Date:        d.Date.Local(),
		HeaderImage: domain.HeaderImage{URL: d.HeaderImage.URL, Alt: d.HeaderImage.Alt},
		Excerpt:     d.Excerpt,
		Category:    d.Category,
		Content:     d.Content,
	}
}

type ArticleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) repository.ArticleRepository {
	return &ArticleRepository{coll: db.Collection(articlesCollection)}
}

func (r *ArticleRepository) Init(ctx context.Context) error {
	return ensureUniqueIndex(ctx, r.coll, "title")
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.Date.IsZero() {
		article.Date = time.Now()
	}

	doc := articleDocument{
		ID:          article.ID,
		Title:       article.Title,
		Date:        article.Date.UTC(),
		HeaderImage: headerImageDocument{URL: article.HeaderImage.URL, Alt: article.HeaderImage.Alt},
		Excerpt:     article.Excerpt,
		Category:    article.Category,
		Content:     article.Content,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return translate(err, "insert article")
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, naturalOrder())
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	var docs []articleDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(docs))
	for _, doc := range docs {
		articles = append(articles, *doc.toDomain())
	}
	return articles, nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ArticleRepository) GetByTitle(ctx context.Context, title string) (*domain.Article, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *ArticleRepository) findOne(ctx context.Context, filter bson.M) (*domain.Article, error) {
	var doc articleDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err, "find article")
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	set := patchDocument(patch)

	var doc articleDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translate(err, "update article")
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) (*domain.Article, error) {
	var doc articleDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "delete article")
	}
	return doc.toDomain(), nil
}

func patchDocument(p domain.ArticlePatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Date != nil {
		set["date"] = p.Date.UTC()
	}
	if p.HeaderImageURL != nil {
		set["headerImage.url"] = *p.HeaderImageURL
	}
	if p.HeaderImageAlt != nil {
		set["headerImage.alt"] = *p.HeaderImageAlt
	}
	if p.Excerpt != nil {
		set["excerpt"] = *p.Excerpt
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	return set
}
