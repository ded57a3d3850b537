package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platefull/backend/internal/model"
)

// setupTestDB opens an in-memory database with the full schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.User{}, &model.Recipe{}, &model.Category{}, &model.Favorite{})
	require.NoError(t, err)

	return db
}

// chatResponse wraps content in the chat-completions response shape.
func chatResponse(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(body)
}

// fakeLLM is a scripted chat-completions server that counts requests.
type fakeLLM struct {
	server *httptest.Server
	calls  int
	reply  string
}

func newFakeLLM(t *testing.T, content string) *fakeLLM {
	t.Helper()

	f := &fakeLLM{reply: content}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatResponse(f.reply))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeLLM) service() *LLMService {
	return &LLMService{
		apiKey: "test-key",
		apiURL: f.server.URL,
		model:  "test-model",
		client: f.server.Client(),
		log:    zap.NewNop(),
	}
}

// newFakeImageService returns an ImageService backed by a server that
// always responds with the given image URL.
func newFakeImageService(t *testing.T, imageURL string) *ImageService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"imageUrl": %q}`, imageURL)
	}))
	t.Cleanup(server.Close)

	return imageServiceForURL(server.URL)
}

// newFailingImageService returns an ImageService whose backend always
// responds with a server error.
func newFailingImageService(t *testing.T) *ImageService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	return imageServiceForURL(server.URL)
}

func imageServiceForURL(url string) *ImageService {
	return &ImageService{
		client: resty.New().SetBaseURL(url).SetHeader("Content-Type", "application/json"),
		log:    zap.NewNop(),
	}
}
