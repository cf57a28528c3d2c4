package services

import (
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"insurai_backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// recorderBroadcaster captures pushes instead of delivering them.
type recorderBroadcaster struct {
	mu    sync.Mutex
	sends []recordedSend
}

type recordedSend struct {
	UserID  string
	Type    string
	Payload any
}

func (r *recorderBroadcaster) SendToUser(userID, messageType string, payload any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sends = append(r.sends, recordedSend{UserID: userID, Type: messageType, Payload: payload})
	return true
}

func (r *recorderBroadcaster) Broadcast(messageType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sends = append(r.sends, recordedSend{Type: messageType, Payload: payload})
}

func (r *recorderBroadcaster) sentTo(userID string) []recordedSend {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []recordedSend
	for _, s := range r.sends {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out
}
