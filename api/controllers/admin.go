package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/api/validators"
	"github.com/techstore/storefront-backend/internal/accounts"
	"github.com/techstore/storefront-backend/internal/admin"
	"github.com/techstore/storefront-backend/internal/blog"
	"github.com/techstore/storefront-backend/internal/catalog"
	"github.com/techstore/storefront-backend/internal/contact"
	"github.com/techstore/storefront-backend/internal/newsletter"
	"github.com/techstore/storefront-backend/internal/orders"
)

func AdminDashboard(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, dashboard)
	}
}

func AdminListOrders(svc orders.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, list)
	}
}

func AdminUpdateOrderStatus(svc orders.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input orders.UpdateStatusInput
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		order, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "orderID"), input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, order)
	}
}

func AdminListUsers(svc accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, users)
	}
}

func AdminCreateProduct(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input catalog.CreateProductInput
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusCreated, product)
	}
}

func AdminCreateCategory(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input catalog.CreateCategoryInput
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		category, err := svc.CreateCategory(r.Context(), input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusCreated, category)
	}
}

func AdminCreateBlogPost(svc blog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input blog.CreateInput
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		post, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusCreated, post)
	}
}

func AdminListSubscribers(svc newsletter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscribers, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, subscribers)
	}
}

func AdminListMessages(svc contact.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, messages)
	}
}

func AdminGetMessage(svc contact.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		message, err := svc.Get(r.Context(), chi.URLParam(r, "messageID"))
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, message)
	}
}
