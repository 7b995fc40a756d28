package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beka-birhanu/mazeprint-api/domain"
)

// ErrJobNotFound is returned when no print job matches the given ID.
var ErrJobNotFound = errors.New("print job not found")

// PrintJobRepo handles the persistence of print jobs.
type PrintJobRepo struct {
	collection *mongo.Collection
}

// NewPrintJobRepo creates a new PrintJobRepo with the given MongoDB client,
// database name, and collection name.
func NewPrintJobRepo(client *mongo.Client, dbName, collectionName string) *PrintJobRepo {
	return &PrintJobRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts or updates a print job, refreshing its UpdatedAt stamp.
func (r *PrintJobRepo) Save(job *domain.PrintJob) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	job.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": job.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":      job.OwnerID,
			"cols":         job.Cols,
			"rows":         job.Rows,
			"wallWidthMm":  job.WallWidthMM,
			"pathWidthMm":  job.PathWidthMM,
			"dpi":          job.DPI,
			"pageWidthCm":  job.PageWidthCM,
			"pageHeightCm": job.PageHeightCM,
			"seed":         job.Seed,
			"status":       job.Status,
			"error":        job.Error,
			"pagesX":       job.PagesX,
			"pagesY":       job.PagesY,
			"pages":        job.Pages,
			"createdAt":    job.CreatedAt,
			"updatedAt":    job.UpdatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a print job by its ID.
func (r *PrintJobRepo) ByID(id uuid.UUID) (*domain.PrintJob, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var job domain.PrintJob
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrJobNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &job, nil
}

// ByOwner retrieves all print jobs of a user, newest first.
func (r *PrintJobRepo) ByOwner(ownerID uuid.UUID) ([]*domain.PrintJob, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	var jobs []*domain.PrintJob
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return jobs, nil
}
