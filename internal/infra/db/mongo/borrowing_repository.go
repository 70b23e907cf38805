package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainborrowing "venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/schedule"
)

var borrowingOrder = bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}

type BorrowingRepository struct {
	col *mongo.Collection
}

func NewBorrowingRepository(db *mongo.Database) *BorrowingRepository {
	return &BorrowingRepository{col: db.Collection("item_borrowings")}
}

func (r *BorrowingRepository) ByID(ctx context.Context, id string) (*domainborrowing.Borrowing, error) {
	var doc borrowingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainborrowing.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *BorrowingRepository) ByDate(ctx context.Context, date schedule.Date) ([]*domainborrowing.Borrowing, error) {
	return r.find(ctx, bson.M{"date": string(date)})
}

func (r *BorrowingRepository) List(ctx context.Context) ([]*domainborrowing.Borrowing, error) {
	return r.find(ctx, bson.M{})
}

func (r *BorrowingRepository) Create(ctx context.Context, rec *domainborrowing.Borrowing) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Version = 1
	_, err := r.col.InsertOne(ctx, newBorrowingDocument(rec))
	return err
}

func (r *BorrowingRepository) Update(ctx context.Context, rec *domainborrowing.Borrowing) error {
	rec.UpdatedAt = time.Now().UTC()
	doc := newBorrowingDocument(rec)
	filter := bson.M{"_id": doc.ID, "version": rec.Version}
	doc.Version = rec.Version + 1
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": doc})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainborrowing.ErrVersionConflict
	}
	rec.Version = doc.Version
	return nil
}

func (r *BorrowingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainborrowing.ErrNotFound
	}
	return nil
}

func (r *BorrowingRepository) find(ctx context.Context, filter bson.M) ([]*domainborrowing.Borrowing, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(borrowingOrder))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []*domainborrowing.Borrowing
	for cursor.Next(ctx) {
		var doc borrowingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cursor.Err()
}

type borrowingDocument struct {
	ID             string   `bson:"_id"`
	BorrowerName   string   `bson:"borrower_name"`
	TeacherAdviser string   `bson:"teacher_adviser"`
	Department     string   `bson:"department"`
	ItemIDs        []string `bson:"item_ids"`
	Date           string   `bson:"date"`
	StartTime      string   `bson:"start_time"`
	EndTime        string   `bson:"end_time"`
	RoomLocation   string   `bson:"room_location"`
	ReceivedBy     string   `bson:"received_by"`
	Status         string   `bson:"status"`
	BookedOn       int64    `bson:"booked_on"`
	CreatedAt      int64    `bson:"created_at"`
	UpdatedAt      int64    `bson:"updated_at"`
	Version        int64    `bson:"version"`
}

func newBorrowingDocument(b *domainborrowing.Borrowing) borrowingDocument {
	return borrowingDocument{
		ID:             b.ID,
		BorrowerName:   b.BorrowerName,
		TeacherAdviser: b.TeacherAdviser,
		Department:     b.Department,
		ItemIDs:        append([]string(nil), b.ItemIDs...),
		Date:           string(b.Date),
		StartTime:      string(b.StartTime),
		EndTime:        string(b.EndTime),
		RoomLocation:   b.RoomLocation,
		ReceivedBy:     b.ReceivedBy,
		Status:         string(b.Status),
		BookedOn:       b.BookedOn.UnixMilli(),
		CreatedAt:      b.CreatedAt.UnixMilli(),
		UpdatedAt:      b.UpdatedAt.UnixMilli(),
		Version:        b.Version,
	}
}

func (d borrowingDocument) toAggregate() *domainborrowing.Borrowing {
	return &domainborrowing.Borrowing{
		ID:             d.ID,
		BorrowerName:   d.BorrowerName,
		TeacherAdviser: d.TeacherAdviser,
		Department:     d.Department,
		ItemIDs:        append([]string(nil), d.ItemIDs...),
		Date:           schedule.Date(d.Date),
		StartTime:      schedule.Clock(d.StartTime),
		EndTime:        schedule.Clock(d.EndTime),
		RoomLocation:   d.RoomLocation,
		ReceivedBy:     d.ReceivedBy,
		Status:         domainborrowing.Status(d.Status),
		BookedOn:       timestampToTime(d.BookedOn),
		CreatedAt:      timestampToTime(d.CreatedAt),
		UpdatedAt:      timestampToTime(d.UpdatedAt),
		Version:        d.Version,
	}
}
