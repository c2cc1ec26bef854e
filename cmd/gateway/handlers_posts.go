package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/feedworks/social_layer/internal/app/services/posts"
	"github.com/feedworks/social_layer/internal/httputil"
)

// =============================================================================
// Post Handlers
// =============================================================================

func listPostsHandler(svc *posts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := svc.List(r.Context())
		if err != nil {
			httputil.InternalError(w, "failed to list posts")
			return
		}
		httputil.WriteJSON(w, http.StatusOK, views)
	}
}

func getPostHandler(svc *posts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			// missing post responds 404 with an empty body
			httputil.WriteServiceError(w, err, true)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, p)
	}
}

func createPostHandler(svc *posts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := httputil.RequireUserID(w, r)
		if !ok {
			return
		}

		var payload struct {
			Content string `json:"content"`
		}
		if !httputil.DecodeJSON(w, r, &payload) {
			return
		}

		created, err := svc.Create(r.Context(), userID, payload.Content)
		if err != nil {
			httputil.WriteServiceError(w, err, false)
			return
		}
		httputil.WriteJSON(w, http.StatusCreated, created)
	}
}

func likePostHandler(svc *posts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := httputil.RequireUserID(w, r)
		if !ok {
			return
		}

		if err := svc.Like(r.Context(), mux.Vars(r)["id"], userID); err != nil {
			httputil.WriteServiceError(w, err, true)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func deletePostHandler(svc *posts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := httputil.RequireUserID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
			httputil.WriteServiceError(w, err, true)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}
