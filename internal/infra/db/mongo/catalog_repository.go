package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"venuedesk/internal/domain/catalog"
)

// CatalogRepository reads the inventory collections. The collections are
// maintained outside this service.
type CatalogRepository struct {
	venues *mongo.Collection
	items  *mongo.Collection
	staff  *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		venues: db.Collection("venues"),
		items:  db.Collection("items"),
		staff:  db.Collection("staff"),
	}
}

func (r *CatalogRepository) Venues(ctx context.Context) ([]catalog.Venue, error) {
	cursor, err := r.venues.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []catalog.Venue
	for cursor.Next(ctx) {
		var doc venueDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toVenue())
	}
	return out, cursor.Err()
}

func (r *CatalogRepository) VenueByID(ctx context.Context, id string) (catalog.Venue, error) {
	var doc venueDocument
	if err := r.venues.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return catalog.Venue{}, catalog.ErrVenueNotFound
		}
		return catalog.Venue{}, err
	}
	return doc.toVenue(), nil
}

func (r *CatalogRepository) Items(ctx context.Context) ([]catalog.Item, error) {
	cursor, err := r.items.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []catalog.Item
	for cursor.Next(ctx) {
		var doc itemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toItem())
	}
	return out, cursor.Err()
}

func (r *CatalogRepository) Staff(ctx context.Context) ([]catalog.StaffMember, error) {
	cursor, err := r.staff.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []catalog.StaffMember
	for cursor.Next(ctx) {
		var doc staffDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, catalog.StaffMember(doc))
	}
	return out, cursor.Err()
}

type venueDocument struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Capacity    int    `bson:"capacity"`
	Description string `bson:"description"`
}

func (d venueDocument) toVenue() catalog.Venue {
	return catalog.Venue{ID: d.ID, Name: d.Name, Capacity: d.Capacity, Description: d.Description}
}

type itemDocument struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Description  string `bson:"description"`
	SerialNumber string `bson:"serial_number"`
	Status       string `bson:"status"`
	Category     string `bson:"category"`
}

func (d itemDocument) toItem() catalog.Item {
	return catalog.Item{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		SerialNumber: d.SerialNumber,
		Status:       catalog.ItemStatus(d.Status),
		Category:     d.Category,
	}
}

type staffDocument struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Role      string `bson:"role"`
	ContactNo string `bson:"contact_no"`
}
