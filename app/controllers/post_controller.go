package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blogpress/app/images"
	"blogpress/app/models"
	"blogpress/app/repositories"
	"blogpress/app/services"
	"blogpress/log"

	"github.com/gorilla/mux"
)

// maxUploadMemory bounds how much of a multipart body is held in RAM
// before the parser spills to disk buffers.
const maxUploadMemory = 32 << 20

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	processor   *images.Processor
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, processor *images.Processor) *PostController {
	return &PostController{
		postService: postService,
		processor:   processor,
	}
}

// Root handles the hello route
func (pc *PostController) Root(w http.ResponseWriter, r *http.Request) {
	pc.sendJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		pc.sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	pc.sendJSON(w, http.StatusOK, posts)
}

// Create handles creating a new post from a multipart form
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		pc.sendError(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	input := &models.CreatePost{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Author:      r.FormValue("author"),
	}

	encoded, err := pc.processor.Ingest(r.MultipartForm.File["images"])
	if err != nil {
		pc.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	input.Images = encoded

	post, err := pc.postService.CreatePost(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			pc.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		pc.sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pc.sendJSON(w, http.StatusCreated, post)
}

// Update handles replacing the mutable fields of a post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	var input models.UpdatePost
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(id, &input)
	if err != nil {
		pc.mapError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		pc.mapError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Like handles like/unlike counter adjustments
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	var req models.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pc.sendError(w, "Invalid action", http.StatusBadRequest)
		return
	}

	likes, err := pc.postService.Like(id, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAction) {
			pc.sendError(w, "Invalid action", http.StatusBadRequest)
			return
		}
		pc.mapError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

// postID extracts the path id. Anything that does not name a stored
// post, including unparseable ids, reads as not found.
func (pc *PostController) postID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["postId"])
	if err != nil {
		pc.sendError(w, "Post not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// mapError translates service/store errors to HTTP status codes
func (pc *PostController) mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		pc.sendError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidInput):
		pc.sendError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error.Printf("request failed: %v", err)
		pc.sendError(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Helper methods for consistent response handling

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendError(w http.ResponseWriter, message string, status int) {
	pc.sendJSON(w, status, map[string]string{"message": message})
}
