package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedRepo "github.com/yfnsimba23/Founder-Funder-Hub/internal/feed/repository"
	feedUC "github.com/yfnsimba23/Founder-Funder-Hub/internal/feed/usecase"
	identityRepo "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/repository"
	identityUC "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/usecase"
	messagingRepo "github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/repository"
	messagingUC "github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/usecase"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/logger"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	profiles := identityRepo.NewProfileRepository(logger.Logger{})
	identity := identityUC.NewIdentityUsecase(profiles, logger.Logger{})
	feed := feedUC.NewFeedUsecase(feedRepo.NewPostRepository(), logger.Logger{})
	messaging := messagingUC.NewMessagingUsecase(messagingRepo.NewMessageRepository(), profiles, logger.Logger{})

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/signup", SignUpHandler(identity))
	api.POST("/auth/signin", SignInHandler(identity))
	api.POST("/auth/signout", SignOutHandler(identity))
	api.GET("/auth/me", CurrentUserHandler(identity))
	api.GET("/profiles", ListProfilesHandler(identity))
	api.GET("/posts", ListPostsHandler(feed))
	api.POST("/posts", CreatePostHandler(feed, identity))
	api.GET("/conversations", ListConversationsHandler(messaging, identity))
	api.GET("/conversations/lookup", LookupConversationHandler(messaging, identity))
	api.POST("/messages/:id", SendMessageHandler(messaging, identity))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthFlow(t *testing.T) {
	r := newRouter()

	w := do(t, r, http.MethodPost, "/api/auth/signup", `{"email":"f@x.com","password":"pw","role":"Founder"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Founder", profile["role"])
	assert.NotEmpty(t, profile["uid"])

	// duplicate email
	w = do(t, r, http.MethodPost, "/api/auth/signup", `{"email":"f@x.com","password":"pw","role":"Funder"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// session is live
	w = do(t, r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/signout", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the mock accepts any password
	w = do(t, r, http.MethodPost, "/api/auth/signin", `{"email":"f@x.com","password":"whatever"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/signin", `{"email":"ghost@x.com"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostFlow(t *testing.T) {
	r := newRouter()

	// posting without a session
	w := do(t, r, http.MethodPost, "/api/posts", `{"content":"Hello"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/signup", `{"email":"f@x.com","role":"Founder"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/api/posts", `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/posts", `{"content":"Hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, w.Code)

	var posts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	author := posts[0]["author"].(map[string]any)
	assert.Equal(t, "Founder", author["role"])
}

func TestMessagingFlow(t *testing.T) {
	r := newRouter()

	w := do(t, r, http.MethodPost, "/api/auth/signup", `{"email":"g@x.com","role":"Funder"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var funder map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &funder))

	w = do(t, r, http.MethodPost, "/api/auth/signup", `{"email":"f@x.com","role":"Founder"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// founder is now the active session; look up the funder
	w = do(t, r, http.MethodGet, "/api/conversations/lookup?uid="+funder["uid"].(string), "")
	require.Equal(t, http.StatusOK, w.Code)
	var conv map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conv))
	assert.Equal(t, "transient", conv["state"])

	convID := conv["id"].(string)
	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/messages/%s", convID), `{"text":"Hi there"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/conversations", "")
	require.Equal(t, http.StatusOK, w.Code)
	var conversations []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conversations))
	require.Len(t, conversations, 1)
	assert.Equal(t, "persisted", conversations[0]["state"])
	last := conversations[0]["lastMessage"].(map[string]any)
	assert.Equal(t, "Hi there", last["text"])
}
