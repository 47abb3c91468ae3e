package thread

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"hospital-ops/client/api"
	"hospital-ops/client/models"
)

// threadBackend fakes the comment and attachment endpoints of one ticket.
type threadBackend struct {
	requests atomic.Int32
	comments []models.Comment
}

func (b *threadBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ticket/7/comment", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		var body struct {
			Comment string `json:"comment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.comments = append(b.comments, models.Comment{ID: len(b.comments) + 1, Comment: body.Comment})
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /ticket/7/comments", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		json.NewEncoder(w).Encode(b.comments)
	})
	mux.HandleFunc("POST /ticket/7/attachment", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		if _, _, err := r.FormFile("file"); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /ticket/7", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          7,
			"comments":    b.comments,
			"attachments": []models.Attachment{{ID: 1, Filename: "photo.jpg"}},
		})
	})
	return mux
}

func newTestThread(t *testing.T) (*Thread, *threadBackend) {
	t.Helper()
	backend := &threadBackend{}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL)
	th := New(client, "/ticket/7/comment", "/ticket/7/comments", "/ticket/7/attachment", "/ticket/7")
	return th, backend
}

func TestAddCommentRefetchesList(t *testing.T) {
	th, backend := newTestThread(t)

	if err := th.AddComment(context.Background(), "checked the valve"); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	got := th.Comments()
	if len(got) != 1 || got[0].Comment != "checked the valve" {
		t.Errorf("Comments() = %v, want the one posted comment", got)
	}
	// One POST plus one refetch GET.
	if n := backend.requests.Load(); n != 2 {
		t.Errorf("backend saw %d requests, want 2", n)
	}
}

func TestAddCommentRejectsWhitespace(t *testing.T) {
	th, backend := newTestThread(t)

	for _, text := range []string{"", "   ", "\n\t "} {
		err := th.AddComment(context.Background(), text)
		if !errors.Is(err, models.ErrEmptyComment) {
			t.Errorf("AddComment(%q) = %v, want ErrEmptyComment", text, err)
		}
	}

	if n := backend.requests.Load(); n != 0 {
		t.Errorf("rejected comments must not reach the network, backend saw %d requests", n)
	}
}

func TestUploadAttachmentRejectsOversizeFile(t *testing.T) {
	th, backend := newTestThread(t)

	oversize := int64(api.MaxUploadSize + 1)
	err := th.UploadAttachment(context.Background(), "scan.pdf", strings.NewReader("x"), oversize)
	if !errors.Is(err, models.ErrFileTooLarge) {
		t.Fatalf("UploadAttachment = %v, want ErrFileTooLarge", err)
	}
	if n := backend.requests.Load(); n != 0 {
		t.Errorf("oversize upload must not reach the network, backend saw %d requests", n)
	}
}

func TestUploadAttachmentRefetchesList(t *testing.T) {
	th, _ := newTestThread(t)

	content := "fake image bytes"
	err := th.UploadAttachment(context.Background(), "photo.jpg", strings.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	got := th.Attachments()
	if len(got) != 1 || got[0].Filename != "photo.jpg" {
		t.Errorf("Attachments() = %v, want the refetched list", got)
	}
}

func TestReloadCommentsFallsBackToDetail(t *testing.T) {
	backend := &threadBackend{comments: []models.Comment{{ID: 1, Comment: "embedded"}}}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	client := api.NewClient(srv.URL)
	// No dedicated comments endpoint; comments come from the detail record.
	th := New(client, "/ticket/7/comment", "", "/ticket/7/attachment", "/ticket/7")

	if err := th.ReloadComments(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := th.Comments()
	if len(got) != 1 || got[0].Comment != "embedded" {
		t.Errorf("Comments() = %v, want the embedded comment", got)
	}
}
