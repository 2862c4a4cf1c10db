package cms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	events []RequestEvent
}

func (h *recordingHook) BeforeRequest(ctx context.Context, event *RequestEvent) context.Context {
	return ctx
}

func (h *recordingHook) AfterRequest(ctx context.Context, event *RequestEvent) {
	h.events = append(h.events, *event)
}

func TestClient_Contents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contents/3/7", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = io.WriteString(w, `{
			"success": true,
			"data": [{"id": 42, "heading": "<b>Hi</b>", "tags": ["news", ""], "category_id": 3, "subcategory_id": 7}],
			"meta": {"current_page": 2, "per_page": 5, "total": 8, "last_page": 2}
		}`)
	}))
	defer srv.Close()

	hook := &recordingHook{}
	client := NewClient(srv.URL+"/", WithHook(hook))

	listing, err := client.Contents(context.Background(), "3", "7", 2)
	require.NoError(t, err)
	require.Len(t, listing.Items, 1)
	assert.Equal(t, 42, listing.Items[0].ID)
	assert.Equal(t, []string{"news", ""}, listing.Items[0].Tags)
	assert.Equal(t, 2, listing.Meta.Page())
	assert.Equal(t, 2, listing.Meta.LastPage())

	require.Len(t, hook.events, 1)
	assert.Equal(t, http.MethodGet, hook.events[0].Method)
	assert.Equal(t, "/contents/3/7", hook.events[0].Path)
	assert.Equal(t, http.StatusOK, hook.events[0].Status)
	assert.NoError(t, hook.events[0].Err)
}

func TestClient_Home_TotalPagesMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/home", r.URL.Path)
		_, _ = io.WriteString(w, `{"success": true, "data": [], "meta": {"page": 1, "total_pages": 4}}`)
	}))
	defer srv.Close()

	listing, err := NewClient(srv.URL).Home(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, listing.Items)
	assert.Equal(t, 1, listing.Meta.Page())
	assert.Equal(t, 4, listing.Meta.LastPage())
}

func TestClient_PathEscaping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/show-tags/rock%20roll", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"success": true, "data": []}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ShowTags(context.Background(), "rock roll", 1)
	require.NoError(t, err)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCode  int
		wantMsg   string
		unsuccess bool
		notFound  bool
	}{
		{
			name:      "unsuccessful envelope",
			status:    http.StatusOK,
			body:      `{"success": false, "message": "category missing"}`,
			wantCode:  http.StatusOK,
			wantMsg:   "category missing",
			unsuccess: true,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"success": false, "message": "no such content"}`,
			wantCode: http.StatusNotFound,
			wantMsg:  "no such content",
			notFound: true,
		},
		{
			name:     "server error without body",
			status:   http.StatusBadGateway,
			body:     ``,
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Contents(context.Background(), "1", "2", 1)
			require.Error(t, err)

			var cmsErr *Error
			require.True(t, errors.As(err, &cmsErr))
			assert.Equal(t, tt.wantCode, cmsErr.StatusCode())
			assert.Equal(t, tt.wantMsg, cmsErr.Message)
			assert.Equal(t, tt.unsuccess, errors.Is(err, ErrUnsuccessful))
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}
}

func TestClient_StatusEnvelopeAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/contents/9/status", r.URL.Path)

		var form StatusForm
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		if form.Status == "archived" {
			_, _ = io.WriteString(w, `{"status": false, "message": "not allowed"}`)
			return
		}
		_, _ = io.WriteString(w, `{"status": true, "message": "updated"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL).WithToken("secret")

	require.NoError(t, client.UpdateContentStatus(context.Background(), 9, "published"))

	err := client.UpdateContentStatus(context.Background(), 9, "archived")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsuccessful)
}

func TestClient_WithTokenDoesNotMutateOriginal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"success": true, "data": []}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_ = client.WithToken("secret")

	_, err := client.Categories(context.Background())
	require.NoError(t, err)
}

func TestRequestHook_Logs(t *testing.T) {
	hook := NewRequestHook(slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &RequestEvent{Method: http.MethodGet, Path: "/home"}

	ctx := hook.BeforeRequest(context.Background(), event)
	hook.AfterRequest(ctx, event)
	event.Err = errors.New("boom")
	hook.AfterRequest(ctx, event)
}
