package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"collegeblog/internal/apperror"
	"collegeblog/internal/middleware"
)

// NewRouter registers every route. Collection paths answer with and without
// the trailing slash. authLimit guards the credential endpoints.
func (h *Handlers) NewRouter(authLimit middleware.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, apperror.NewNotFound("Not Found", nil))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, apperror.ErrorResponse{Code: "method_not_allowed", Detail: "Method Not Allowed"}, http.StatusMethodNotAllowed)
	})
	if authLimit == nil {
		authLimit = func(next http.Handler) http.Handler { return next }
	}

	r.HandleFunc("/", HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	collection(r, "/users", authLimit(http.HandlerFunc(h.Register)), http.MethodPost)
	r.HandleFunc("/users/me", h.GetCurrentUser).Methods(http.MethodGet)
	r.HandleFunc("/users/me/username", h.UpdateUsername).Methods(http.MethodPut)

	collection(r, "/auth/token", authLimit(http.HandlerFunc(h.Login)), http.MethodPost)
	r.HandleFunc("/auth/verify-email", h.VerifyEmail).Methods(http.MethodGet)

	collection(r, "/uploadfile", http.HandlerFunc(h.UploadFile), http.MethodPost)

	collection(r, "/posts", http.HandlerFunc(h.CreatePost), http.MethodPost)
	collection(r, "/posts", http.HandlerFunc(h.GetPosts), http.MethodGet)
	r.HandleFunc("/posts/{post_id}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/posts/{post_id}", h.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/posts/{post_id}", h.DeletePost).Methods(http.MethodDelete)

	collection(r, "/resources", http.HandlerFunc(h.CreateResource), http.MethodPost)
	collection(r, "/resources", http.HandlerFunc(h.GetResources), http.MethodGet)
	r.HandleFunc("/resources/{resource_id}", h.GetResource).Methods(http.MethodGet)
	r.HandleFunc("/resources/{resource_id}", h.UpdateResource).Methods(http.MethodPut)
	r.HandleFunc("/resources/{resource_id}", h.DeleteResource).Methods(http.MethodDelete)

	collection(r, "/clubs", http.HandlerFunc(h.CreateClub), http.MethodPost)
	collection(r, "/clubs", http.HandlerFunc(h.GetClubs), http.MethodGet)
	r.HandleFunc("/clubs/{club_id}", h.GetClub).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{club_id}", h.UpdateClub).Methods(http.MethodPut)
	r.HandleFunc("/clubs/{club_id}", h.DeleteClub).Methods(http.MethodDelete)

	categories(r, "/post-categories", h.PostCategories())
	categories(r, "/resource-categories", h.ResourceCategories())
	categories(r, "/club-categories", h.ClubCategories())

	collection(r, "/bookmarks", http.HandlerFunc(h.CreateBookmark), http.MethodPost)
	collection(r, "/bookmarks", http.HandlerFunc(h.GetBookmarks), http.MethodGet)
	r.HandleFunc("/bookmarks/{bookmark_id}", h.DeleteBookmark).Methods(http.MethodDelete)

	static := http.StripPrefix("/static/", noDirListing(http.FileServer(http.Dir(h.Cfg.Storage.StaticDir))))
	r.PathPrefix("/static/").Handler(static).Methods(http.MethodGet, http.MethodHead)

	return r
}

func collection(r *mux.Router, path string, handler http.Handler, method string) {
	r.Handle(path, handler).Methods(method)
	r.Handle(path+"/", handler).Methods(method)
}

func categories(r *mux.Router, path string, c *CategoryHandler) {
	collection(r, path, http.HandlerFunc(c.Create), http.MethodPost)
	collection(r, path, http.HandlerFunc(c.List), http.MethodGet)
	r.HandleFunc(path+"/{category_id}", c.Get).Methods(http.MethodGet)
	r.HandleFunc(path+"/{category_id}", c.Update).Methods(http.MethodPut)
	r.HandleFunc(path+"/{category_id}", c.Delete).Methods(http.MethodDelete)
}

// noDirListing answers 404 for directory paths.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			writeError(w, apperror.NewNotFound("Not Found", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
