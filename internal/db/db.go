package db

import (
	"context"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eduboost/eduboost-back/internal/models"
)

var DB *gorm.DB

func InitDB(dsn string) {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// AutoMigrate will create/update tables automatically
	err = DB.AutoMigrate(&models.User{}, &models.RecordBlob{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	fmt.Println("✅ Database connected and migrated")
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func SaveOrUpdateUser(ctx context.Context, u models.User) error {
	var existing models.User
	if err := DB.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return DB.WithContext(ctx).Create(&u).Error
		}
		return err
	}

	return DB.WithContext(ctx).Model(&existing).Updates(u).Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ListUserEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := DB.WithContext(ctx).Model(&models.User{}).Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// BlobStore is the gorm-backed record store. It satisfies records.Store.
type BlobStore struct{}

func NewBlobStore() *BlobStore { return &BlobStore{} }

// LoadBlob returns the stored snapshot for (owner, key), or nil when absent.
func (s *BlobStore) LoadBlob(ctx context.Context, owner, key string) ([]byte, error) {
	var blob models.RecordBlob
	err := DB.WithContext(ctx).Where("owner = ? AND key = ?", owner, key).First(&blob).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob.Value, nil
}

// SaveBlob overwrites the snapshot for (owner, key) in full.
func (s *BlobStore) SaveBlob(ctx context.Context, owner, key string, value []byte) error {
	blob := models.RecordBlob{Owner: owner, Key: key, Value: value}
	return DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&blob).Error
}
