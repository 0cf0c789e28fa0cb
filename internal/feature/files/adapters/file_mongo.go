// Package adapters はfilesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/domain/entity"
	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/files/usecase"
)

// listPageSize is the fixed page size for file listings.
const listPageSize = 20

// fileDocument is the persistence model for files in the document store.
type fileDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	Name      string        `bson:"name"`
	Type      string        `bson:"type"`
	IsPublic  bool          `bson:"is_public"`
	ParentID  string        `bson:"parent_id"`
	LocalPath string        `bson:"local_path"`
	CreatedAt time.Time     `bson:"created_at"`
}

// toEntity converts a document to a domain entity.
func (d *fileDocument) toEntity() *entity.File {
	return &entity.File{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Name:      d.Name,
		Type:      d.Type,
		IsPublic:  d.IsPublic,
		ParentID:  d.ParentID,
		LocalPath: d.LocalPath,
		CreatedAt: d.CreatedAt,
	}
}

// fileMongo はFileRepositoryインターフェースのMongoDB実装です。
type fileMongo struct {
	coll *mongo.Collection
}

// fileMongoがFileRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.FileRepository = (*fileMongo)(nil)

// NewFileMongo は指定されたデータベースのfilesコレクションを使う
// fileMongoの新しいインスタンスを生成します。
func NewFileMongo(db *mongo.Database) *fileMongo {
	return &fileMongo{coll: db.Collection("files")}
}

// Insert はファイルドキュメントを追加し、生成されたIDをエンティティに書き戻します。
func (r *fileMongo) Insert(ctx context.Context, f *entity.File) error {
	doc := fileDocument{
		UserID:    f.UserID,
		Name:      f.Name,
		Type:      f.Type,
		IsPublic:  f.IsPublic,
		ParentID:  f.ParentID,
		LocalPath: f.LocalPath,
		CreatedAt: f.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	f.ID = oid.Hex()
	return nil
}

// findOne runs a FindOne with the given filter and maps driver errors.
func (r *fileMongo) findOne(ctx context.Context, filter bson.M) (*entity.File, error) {
	var doc fileDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to find file: %w", err)
	}
	return doc.toEntity(), nil
}

// FindByID はIDでファイルを取得します。所有者は問いません。
// IDが不正な形式の場合もusecase.ErrFileNotFoundを返します。
func (r *fileMongo) FindByID(ctx context.Context, id string) (*entity.File, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrFileNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByIDAndUser は所有者スコープでファイルを取得します。
// 他人のファイルは存在しないのと区別がつきません。
func (r *fileMongo) FindByIDAndUser(ctx context.Context, id, userID string) (*entity.File, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrFileNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "user_id": userID})
}

// ListByUser はユーザーのファイルを1ページ（20件）返します。
func (r *fileMongo) ListByUser(ctx context.Context, userID, parentID string, page int64) ([]*entity.File, error) {
	filter := bson.M{"user_id": userID}
	if parentID != "" {
		filter["parent_id"] = parentID
	}

	opts := options.Find().
		SetSkip(page * listPageSize).
		SetLimit(listPageSize).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var docs []fileDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode files: %w", err)
	}

	files := make([]*entity.File, 0, len(docs))
	for i := range docs {
		files = append(files, docs[i].toEntity())
	}
	return files, nil
}

// SetPublic は所有者スコープでisPublicを更新し、更新後のドキュメントを返します。
func (r *fileMongo) SetPublic(ctx context.Context, id, userID string, public bool) (*entity.File, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrFileNotFound
	}

	var doc fileDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{"is_public": public}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to update file visibility: %w", err)
	}
	return doc.toEntity(), nil
}

// Count は登録ファイル数を返します。
func (r *fileMongo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return n, nil
}
