// Package catalog reads venue package definitions from the catalog's
// document store.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/domain/money"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/config"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func Connect(ctx context.Context, cfg config.CatalogConfig) (*mongo.Client, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("cannot connect to the catalog: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("catalog is not available: %w", err)
	}
	return client, client.Disconnect, nil
}

type venueDocument struct {
	ID       string            `bson:"_id"`
	Packages []packageDocument `bson:"packages"`
}

type packageDocument struct {
	ID         string            `bson:"id"`
	Name       string            `bson:"name"`
	PriceType  string            `bson:"price_type"`
	Price      int64             `bson:"price"`
	Sections   []sectionDocument `bson:"sections"`
	Inclusions []string          `bson:"inclusions"`
}

type sectionDocument struct {
	Name           string   `bson:"name"`
	PricePerPerson int64    `bson:"price_per_person"`
	Items          []string `bson:"items"`
}

type Reader struct {
	venues  *mongo.Collection
	timeout time.Duration
}

func NewReader(client *mongo.Client, cfg config.CatalogConfig) *Reader {
	return &Reader{
		venues:  client.Database(cfg.Database).Collection(cfg.VenueCollection),
		timeout: cfg.Timeout,
	}
}

// GetVenuePackageTemplate projects only the matching package of the venue.
func (r *Reader) GetVenuePackageTemplate(ctx context.Context, venueID uuid.UUID, packageID string) (*pricing.Template, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	filter := bson.D{
		{Key: "_id", Value: venueID.String()},
		{Key: "packages.id", Value: packageID},
	}
	opts := options.FindOne().SetProjection(bson.D{{Key: "packages.$", Value: 1}})

	var doc venueDocument
	if err := r.venues.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("package not found in catalog", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read catalog", err, infra.KindDBFailure)
	}
	if len(doc.Packages) == 0 {
		return nil, infra.NewRepoErr(infra.KindNotFound, "package not found in catalog")
	}
	tpl := toTemplate(doc.Packages[0])
	return &tpl, nil
}

func toTemplate(doc packageDocument) pricing.Template {
	sections := make([]pricing.Section, len(doc.Sections))
	for i, s := range doc.Sections {
		sections[i] = pricing.Section{
			Name:           s.Name,
			PricePerPerson: money.New(s.PricePerPerson),
			Items:          s.Items,
		}
	}
	return pricing.Template{
		ID:         doc.ID,
		Name:       doc.Name,
		PriceType:  pricing.PriceType(doc.PriceType),
		Price:      money.New(doc.Price),
		Sections:   sections,
		Inclusions: doc.Inclusions,
	}
}
