package db

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"

	"github.com/olivere/elastic/v7"

	"restapi/models"
)

// ElasticLibraryManager stores books as documents in a single index. Document
// ids are the integer book ids, assigned from a counter seeded with the
// largest id already stored, so deleting a book never frees its id.
type ElasticLibraryManager struct {
	IndexName     string
	ElasticClient *elastic.Client

	nextID int64
}

func CreateElasticLibrary(indexName string, elasticClient *elastic.Client) (*ElasticLibraryManager, error) {
	library := &ElasticLibraryManager{IndexName: indexName, ElasticClient: elasticClient}

	exists, err := elasticClient.IndexExists(indexName).Do(context.Background())
	if err != nil {
		return nil, err
	}
	if exists {
		maxID, err := library.maxStoredID(context.Background())
		if err != nil {
			return nil, err
		}
		library.nextID = maxID
	}

	return library, nil
}

func (library *ElasticLibraryManager) maxStoredID(ctx context.Context) (int64, error) {
	result, err := library.ElasticClient.Search().
		Index(library.IndexName).
		Aggregation("max_id", elastic.NewMaxAggregation().Field("id")).
		Size(0).
		Do(ctx)

	if err != nil {
		return 0, err
	}

	maxID, found := result.Aggregations.Max("max_id")
	if !found || maxID.Value == nil {
		return 0, nil
	}
	return int64(*maxID.Value), nil
}

func (library *ElasticLibraryManager) Create(ctx context.Context, book *models.Book) (int, error) {
	book.ID = int(atomic.AddInt64(&library.nextID, 1))

	_, err := library.ElasticClient.Index().
		Index(library.IndexName).
		Id(strconv.Itoa(book.ID)).
		BodyJson(book).
		Do(ctx)

	return book.ID, err
}

func (library *ElasticLibraryManager) GetById(ctx context.Context, id int) (*models.Book, error) {
	doc, err := library.ElasticClient.Get().
		Index(library.IndexName).
		Id(strconv.Itoa(id)).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	if !doc.Found {
		return nil, ErrBookNotFound
	}

	var book models.Book
	if err := json.Unmarshal(doc.Source, &book); err != nil {
		return nil, err
	}

	return &book, nil
}

func (library *ElasticLibraryManager) GetAll(ctx context.Context) ([]*models.Book, error) {
	result, err := library.ElasticClient.Search().
		Index(library.IndexName).
		Query(elastic.NewMatchAllQuery()).
		Sort("id", true).
		Size(10000).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return []*models.Book{}, nil
	}
	if err != nil {
		return nil, err
	}

	return decodeBookHits(result)
}

func (library *ElasticLibraryManager) Update(ctx context.Context, book *models.Book) error {
	exists, err := library.ElasticClient.Exists().
		Index(library.IndexName).
		Id(strconv.Itoa(book.ID)).
		Do(ctx)

	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}

	// full replacement of the stored document
	_, err = library.ElasticClient.Index().
		Index(library.IndexName).
		Id(strconv.Itoa(book.ID)).
		BodyJson(book).
		Do(ctx)

	return err
}

func (library *ElasticLibraryManager) Delete(ctx context.Context, id int) error {
	_, err := library.ElasticClient.Delete().
		Index(library.IndexName).
		Id(strconv.Itoa(id)).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return ErrBookNotFound
	}
	return err
}

func (library *ElasticLibraryManager) Search(ctx context.Context, title, author, minPrice, maxPrice string) ([]*models.Book, error) {
	bounds, err := parsePriceBounds(minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	boolQuery := elastic.NewBoolQuery()
	if title != "" {
		boolQuery.Must(elastic.NewTermQuery("title.keyword", title))
	}
	if author != "" {
		boolQuery.Must(elastic.NewMatchQuery("author", author))
	}
	if bounds.hasMin || bounds.hasMax {
		priceRangeQuery := elastic.NewRangeQuery("price")
		if bounds.hasMin {
			priceRangeQuery = priceRangeQuery.Gte(bounds.min)
		}
		if bounds.hasMax {
			priceRangeQuery = priceRangeQuery.Lte(bounds.max)
		}
		boolQuery.Must(priceRangeQuery)
	}

	result, err := library.ElasticClient.Search().
		Index(library.IndexName).
		Pretty(false).
		Size(10000).
		Sort("id", true).
		Query(boolQuery).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return []*models.Book{}, nil
	}
	if err != nil {
		return nil, err
	}

	return decodeBookHits(result)
}

func (library *ElasticLibraryManager) Store(ctx context.Context) (*models.StoreSummary, error) {
	booksAggregation := elastic.NewCardinalityAggregation().Field("_id")
	authorsAggregation := elastic.NewCardinalityAggregation().Field("author.keyword")

	results, err := library.ElasticClient.Search().
		Index(library.IndexName).
		Aggregation("number_of_books", booksAggregation).
		Aggregation("number_of_authors", authorsAggregation).
		Size(0).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return &models.StoreSummary{}, nil
	}
	if err != nil {
		return nil, err
	}

	summary := &models.StoreSummary{}
	if numberOfBooks, ok := results.Aggregations.Cardinality("number_of_books"); ok && numberOfBooks.Value != nil {
		summary.NumberOfBooks = int64(*numberOfBooks.Value)
	}
	if numberOfAuthors, ok := results.Aggregations.Cardinality("number_of_authors"); ok && numberOfAuthors.Value != nil {
		summary.NumberOfAuthors = int64(*numberOfAuthors.Value)
	}

	return summary, nil
}

func decodeBookHits(result *elastic.SearchResult) ([]*models.Book, error) {
	books := make([]*models.Book, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var book models.Book
		if err := json.Unmarshal(hit.Source, &book); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	return books, nil
}
