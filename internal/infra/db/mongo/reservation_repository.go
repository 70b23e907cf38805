package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainreservation "venuedesk/internal/domain/reservation"
	"venuedesk/internal/domain/schedule"
)

// storeOrder is the ordering every reservation listing uses: start date,
// then start time.
var storeOrder = bson.D{{Key: "start_date", Value: 1}, {Key: "start_time", Value: 1}}

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection("reservations")}
}

func (r *ReservationRepository) ByID(ctx context.Context, id string) (*domainreservation.Reservation, error) {
	var doc reservationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainreservation.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *ReservationRepository) ByVenue(ctx context.Context, venueID string) ([]*domainreservation.Reservation, error) {
	return r.find(ctx, bson.M{"venue_id": venueID})
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domainreservation.Reservation, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReservationRepository) ListToday(ctx context.Context, today schedule.Date) ([]*domainreservation.Reservation, error) {
	return r.find(ctx, bson.M{
		"start_date": bson.M{"$lte": string(today)},
		"end_date":   bson.M{"$gte": string(today)},
	})
}

func (r *ReservationRepository) ListUpcoming(ctx context.Context, today schedule.Date) ([]*domainreservation.Reservation, error) {
	return r.find(ctx, bson.M{"start_date": bson.M{"$gt": string(today)}})
}

func (r *ReservationRepository) Create(ctx context.Context, rec *domainreservation.Reservation) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Version = 1
	_, err := r.col.InsertOne(ctx, newReservationDocument(rec))
	return err
}

func (r *ReservationRepository) Update(ctx context.Context, rec *domainreservation.Reservation) error {
	rec.UpdatedAt = time.Now().UTC()
	doc := newReservationDocument(rec)
	filter := bson.M{"_id": doc.ID, "version": rec.Version}
	doc.Version = rec.Version + 1
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": doc})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainreservation.ErrVersionConflict
	}
	rec.Version = doc.Version
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainreservation.ErrNotFound
	}
	return nil
}

func (r *ReservationRepository) find(ctx context.Context, filter bson.M) ([]*domainreservation.Reservation, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(storeOrder))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []*domainreservation.Reservation
	for cursor.Next(ctx) {
		var doc reservationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cursor.Err()
}

type reservationDocument struct {
	ID         string `bson:"_id"`
	VenueID    string `bson:"venue_id"`
	VenueName  string `bson:"venue_name"`
	Department string `bson:"department"`
	EventTitle string `bson:"event_title"`
	ReservedBy string `bson:"reserved_by"`
	ContactNo  string `bson:"contact_no"`
	StartDate  string `bson:"start_date"`
	EndDate    string `bson:"end_date"`
	StartTime  string `bson:"start_time"`
	EndTime    string `bson:"end_time"`
	Status     string `bson:"status"`
	ReceivedBy string `bson:"received_by"`
	Notes      string `bson:"notes"`
	CreatedAt  int64  `bson:"created_at"`
	UpdatedAt  int64  `bson:"updated_at"`
	Version    int64  `bson:"version"`
}

func newReservationDocument(r *domainreservation.Reservation) reservationDocument {
	return reservationDocument{
		ID:         r.ID,
		VenueID:    r.VenueID,
		VenueName:  r.VenueName,
		Department: r.Department,
		EventTitle: r.EventTitle,
		ReservedBy: r.ReservedBy,
		ContactNo:  r.ContactNo,
		StartDate:  string(r.StartDate),
		EndDate:    string(r.EndDate),
		StartTime:  string(r.StartTime),
		EndTime:    string(r.EndTime),
		Status:     string(r.Status),
		ReceivedBy: r.ReceivedBy,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.UnixMilli(),
		UpdatedAt:  r.UpdatedAt.UnixMilli(),
		Version:    r.Version,
	}
}

func (d reservationDocument) toAggregate() *domainreservation.Reservation {
	return &domainreservation.Reservation{
		ID:         d.ID,
		VenueID:    d.VenueID,
		VenueName:  d.VenueName,
		Department: d.Department,
		EventTitle: d.EventTitle,
		ReservedBy: d.ReservedBy,
		ContactNo:  d.ContactNo,
		StartDate:  schedule.Date(d.StartDate),
		EndDate:    schedule.Date(d.EndDate),
		StartTime:  schedule.Clock(d.StartTime),
		EndTime:    schedule.Clock(d.EndTime),
		Status:     domainreservation.Status(d.Status),
		ReceivedBy: d.ReceivedBy,
		Notes:      d.Notes,
		CreatedAt:  timestampToTime(d.CreatedAt),
		UpdatedAt:  timestampToTime(d.UpdatedAt),
		Version:    d.Version,
	}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
