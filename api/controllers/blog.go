package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/internal/blog"
)

func ListBlogPosts(svc blog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, posts)
	}
}

func GetBlogPost(svc blog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := svc.Get(r.Context(), chi.URLParam(r, "postID"))
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, post)
	}
}
