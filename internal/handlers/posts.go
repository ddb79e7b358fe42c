package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/db"
	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/models"
)

// PostStore is the persistence surface the handlers need. *db.Store
// satisfies it; tests inject a fake.
type PostStore interface {
	ListPosts(ctx context.Context, limit int) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, title, content string, imageURL *string) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type PostsHandler struct {
	store PostStore
}

func NewPostsHandler(store PostStore) *PostsHandler {
	return &PostsHandler{store: store}
}

// CreatePostRequest uses pointers so a missing or null field is
// distinguishable from an empty string. Empty strings are accepted.
type CreatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parsePositiveInt(r.URL.Query().Get("limit"))

	posts, err := h.store.ListPosts(r.Context(), limit)
	if err != nil {
		log.Printf("list posts: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid post id")
		return
	}

	post, err := h.store.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("get post: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.Title == nil || req.Content == nil {
		respondError(w, http.StatusUnprocessableEntity, "title and content are required")
		return
	}

	created, err := h.store.CreatePost(r.Context(), *req.Title, *req.Content, req.ImageURL)
	if err != nil {
		log.Printf("create post: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	respondJSON(w, http.StatusOK, created)
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid post id")
		return
	}

	if err := h.store.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("delete post: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

func parsePositiveInt(value string) int {
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"detail": message})
}
